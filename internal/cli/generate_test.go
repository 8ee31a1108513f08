package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cv.txt")
	output := filepath.Join(dir, "cv.pdf")
	src := "Jane Doe\nEngineer\n\nExperience\n- kept the lights on\n"
	if err := os.WriteFile(input, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opts := &generateOpts{input: input, output: output, configPath: filepath.Join(dir, "resumekit.toml")}
	err := runGenerate(context.Background(), &out, opts)
	if err == nil {
		t.Fatal("explicit missing config path should fail")
	}

	cfg := `
[contact]
email = "jane@example.com"
linkedin = "linkedin.com/in/jane"
location = "Berlin"
`
	if err := os.WriteFile(opts.configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runGenerate(context.Background(), &out, opts); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Fatal("output is not a PDF")
	}
	if !strings.Contains(out.String(), "1 page") {
		t.Fatalf("summary missing page count: %q", out.String())
	}
}

func TestRunGenerateMarkdownInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cv.md")
	output := filepath.Join(dir, "cv.pdf")
	src := "# Jane Doe\n\nEngineer\n\n## Experience\n\n- kept the lights on\n"
	if err := os.WriteFile(input, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opts := &generateOpts{input: input, output: output, configPath: "resumekit.toml"}
	if err := runGenerate(context.Background(), &out, opts); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunGenerateMissingInput(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	opts := &generateOpts{
		input:      filepath.Join(dir, "absent.txt"),
		output:     filepath.Join(dir, "cv.pdf"),
		configPath: "resumekit.toml",
	}
	if err := runGenerate(context.Background(), &out, opts); err == nil {
		t.Fatal("expected error for a missing input file")
	}
	if _, err := os.Stat(opts.output); !os.IsNotExist(err) {
		t.Fatal("no output file may be produced on input failure")
	}
}
