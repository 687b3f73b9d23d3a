package manifest

import (
	"testing"

	"github.com/matzehuels/webmanifest/pkg/errors"
)

func TestDirectionTokens(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{LeftToRight, "ltr"},
		{RightToLeft, "rtl"},
		{Auto, "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			text, err := tt.dir.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error: %v", err)
			}
			if string(text) != tt.want {
				t.Errorf("MarshalText() = %q, want %q", text, tt.want)
			}
			parsed, err := ParseDirection(tt.want)
			if err != nil {
				t.Fatalf("ParseDirection(%q) error: %v", tt.want, err)
			}
			if parsed != tt.dir {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.want, parsed, tt.dir)
			}
		})
	}
}

func TestDisplayModeTokens(t *testing.T) {
	tests := []struct {
		mode DisplayMode
		want string
	}{
		{FullScreen, "full-screen"},
		{Standalone, "standalone"},
		{MinimalUI, "minimal-ui"},
		{Browser, "browser"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			text, err := tt.mode.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error: %v", err)
			}
			if string(text) != tt.want {
				t.Errorf("MarshalText() = %q, want %q", text, tt.want)
			}
			parsed, err := ParseDisplayMode(tt.want)
			if err != nil {
				t.Fatalf("ParseDisplayMode(%q) error: %v", tt.want, err)
			}
			if parsed != tt.mode {
				t.Errorf("ParseDisplayMode(%q) = %v, want %v", tt.want, parsed, tt.mode)
			}
		})
	}
}

func TestOrientationTokens(t *testing.T) {
	tests := []struct {
		orientation Orientation
		want        string
	}{
		{Any, "any"},
		{Natural, "natural"},
		{Landscape, "landscape"},
		{LandscapePrimary, "landscape-primary"},
		{LandscapeSecondary, "landscape-secondary"},
		{Portrait, "portrait"},
		{PortraitPrimary, "portrait-primary"},
		{PortraitSecondary, "portrait-secondary"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			text, err := tt.orientation.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error: %v", err)
			}
			if string(text) != tt.want {
				t.Errorf("MarshalText() = %q, want %q", text, tt.want)
			}
			parsed, err := ParseOrientation(tt.want)
			if err != nil {
				t.Fatalf("ParseOrientation(%q) error: %v", tt.want, err)
			}
			if parsed != tt.orientation {
				t.Errorf("ParseOrientation(%q) = %v, want %v", tt.want, parsed, tt.orientation)
			}
		})
	}
}

func TestEnumValuesCoverTables(t *testing.T) {
	if got := len(Directions()); got != 3 {
		t.Errorf("len(Directions()) = %d, want 3", got)
	}
	if got := len(DisplayModes()); got != 4 {
		t.Errorf("len(DisplayModes()) = %d, want 4", got)
	}
	if got := len(Orientations()); got != 8 {
		t.Errorf("len(Orientations()) = %d, want 8", got)
	}
	if Orientations()[0] != Any || Orientations()[7] != PortraitSecondary {
		t.Errorf("Orientations() out of declaration order: %v", Orientations())
	}
}

func TestEnumInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		marshal  func() ([]byte, error)
		str      string
		wantText string
	}{
		{"zero direction", Direction(0).MarshalText, Direction(0).String(), "Direction(0)"},
		{"negative display", DisplayMode(-1).MarshalText, DisplayMode(-1).String(), "DisplayMode(-1)"},
		{"past the end orientation", Orientation(9).MarshalText, Orientation(9).String(), "Orientation(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.marshal(); !errors.Is(err, errors.ErrCodeInvalidEnum) {
				t.Errorf("MarshalText() error = %v, want code %s", err, errors.ErrCodeInvalidEnum)
			}
			if tt.str != tt.wantText {
				t.Errorf("String() = %q, want %q", tt.str, tt.wantText)
			}
		})
	}
}

func TestParseUnknownTokens(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		input string
	}{
		{"direction empty", func(s string) error { _, err := ParseDirection(s); return err }, ""},
		{"direction case", func(s string) error { _, err := ParseDirection(s); return err }, "LTR"},
		{"display programmatic name", func(s string) error { _, err := ParseDisplayMode(s); return err }, "FullScreen"},
		{"display underscore", func(s string) error { _, err := ParseDisplayMode(s); return err }, "minimal_ui"},
		{"orientation typo", func(s string) error { _, err := ParseOrientation(s); return err }, "landscap-primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parse(tt.input); !errors.Is(err, errors.ErrCodeInvalidEnum) {
				t.Errorf("parse(%q) error = %v, want code %s", tt.input, err, errors.ErrCodeInvalidEnum)
			}
		})
	}
}
