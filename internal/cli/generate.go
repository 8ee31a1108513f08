package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wudi/resumekit/config"
	"github.com/wudi/resumekit/layout"
	"github.com/wudi/resumekit/resume"
	"github.com/wudi/resumekit/writer"
)

// generateOpts holds the command-line flags for the generate command.
// Flags override values from the configuration file.
type generateOpts struct {
	input      string // résumé source path
	output     string // destination PDF path
	configPath string // TOML configuration file
	markdown   bool   // treat the input as markdown regardless of extension
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the themed PDF from a résumé file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "résumé source file (default from config, cv.txt)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default from config, cv.pdf)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "configuration file")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "treat the input as markdown")

	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	// The default config path is optional; an explicitly given one is not.
	cfg, err := config.Load(opts.configPath, opts.configPath == config.DefaultPath)
	if err != nil {
		return err
	}
	if opts.input != "" {
		cfg.Input = opts.input
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.markdown {
		cfg.Markdown = true
	}

	th, err := cfg.BuildTheme()
	if err != nil {
		return err
	}

	p := newProgress(logger)
	rec, err := loadResume(cfg)
	if err != nil {
		return err
	}
	logger.Debug("parsed résumé", "input", cfg.Input, "body_lines", len(rec.Lines))

	engineOpts := []layout.Option{layout.WithTheme(th)}
	if !cfg.Contact.IsZero() {
		engineOpts = append(engineOpts, layout.WithContact(cfg.Contact.Line()))
	}
	if len(cfg.Metrics) > 0 {
		metrics := make([]layout.Metric, len(cfg.Metrics))
		for i, m := range cfg.Metrics {
			metrics[i] = layout.Metric{Value: m.Value, Label: m.Label}
		}
		engineOpts = append(engineOpts, layout.WithMetrics(metrics))
	}

	doc := layout.NewEngine(engineOpts...).Render(rec)
	logger.Debug("layout finished", "pages", doc.PageCount())

	n, err := writer.WriteFile(cfg.Output, doc)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d page(s) to %s", doc.PageCount(), cfg.Output))
	fmt.Fprintln(out, successLine(cfg.Output, doc.PageCount(), n))
	return nil
}

func loadResume(cfg config.Config) (*resume.Resume, error) {
	if cfg.Markdown || strings.HasSuffix(strings.ToLower(cfg.Input), ".md") {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("read résumé: %w", err)
		}
		return resume.ParseMarkdown(data), nil
	}
	return resume.Load(cfg.Input, resume.NewClassifier(cfg.ExtraHeadings...))
}
