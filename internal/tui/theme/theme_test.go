package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load macchiato theme", themeName: "macchiato", wantName: "macchiato"},
		{name: "load frappe theme", themeName: "frappe", wantName: "frappe"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "load light theme", themeName: "light", wantName: "light"},
		{name: "case insensitive", themeName: "Latte", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_AllColorsSet(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			theme, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", name, err)
			}
			colors := map[string]string{
				"bg":           theme.Bg,
				"bg_highlight": theme.BgHighlight,
				"fg":           theme.Fg,
				"fg_muted":     theme.FgMuted,
				"accent":       theme.Accent,
				"range":        theme.Range,
				"knob":         theme.Knob,
				"warning":      theme.Warning,
			}
			for field, value := range colors {
				if len(value) != 7 || value[0] != '#' {
					t.Errorf("%s.%s = %q, want #rrggbb", name, field, value)
				}
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	theme := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff00ff"}
	theme.applyDefaults()

	if theme.BgHighlight != "#000000" {
		t.Errorf("BgHighlight = %q, want bg", theme.BgHighlight)
	}
	if theme.Range != "#ff00ff" {
		t.Errorf("Range = %q, want accent", theme.Range)
	}
	if theme.Knob != "#ffffff" {
		t.Errorf("Knob = %q, want fg", theme.Knob)
	}
	if theme.Warning != "#ff00ff" {
		t.Errorf("Warning = %q, want accent", theme.Warning)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"mocha", true},
		{"MOCHA", true},
		{"light", true},
		{"solarized", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAvailable(tt.name); got != tt.want {
			t.Errorf("IsAvailable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
