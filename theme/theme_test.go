package theme

import (
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default theme invalid: %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	th := Default()
	th.Accent.G = 1.2
	err := th.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "accent") {
		t.Fatalf("error does not name the offending color: %v", err)
	}

	th = Default()
	th.Background.R = -0.1
	if th.Validate() == nil {
		t.Fatal("negative component accepted")
	}
}
