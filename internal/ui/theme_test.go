package ui

import "testing"

func TestThemeNames_AllRegistered(t *testing.T) {
	for _, name := range ThemeNames() {
		if _, ok := BuiltinThemes[name]; !ok {
			t.Errorf("Theme %q listed but not registered", name)
		}
		if !IsKnownTheme(string(name)) {
			t.Errorf("IsKnownTheme(%q) = false", name)
		}
	}
	if len(ThemeNames()) != len(BuiltinThemes) {
		t.Errorf("ThemeNames() has %d entries, BuiltinThemes has %d", len(ThemeNames()), len(BuiltinThemes))
	}
}

func TestIsKnownTheme_Unknown(t *testing.T) {
	if IsKnownTheme("no-such-theme") {
		t.Error("IsKnownTheme should reject unknown names")
	}
	if IsKnownTheme("") {
		t.Error("IsKnownTheme should reject the empty name")
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("CurrentThemeName() = %q, want %q", CurrentThemeName(), ThemeNord)
	}
	if CurrentTheme().Name != BuiltinThemes[ThemeNord].Name {
		t.Errorf("CurrentTheme() = %q", CurrentTheme().Name)
	}
	if codeStyleName != BuiltinThemes[ThemeNord].CodeStyle {
		t.Errorf("codeStyleName = %q, want %q", codeStyleName, BuiltinThemes[ThemeNord].CodeStyle)
	}
}

func TestSetTheme_UnknownFallsBack(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	SetTheme(ThemeDracula)
	SetTheme("bogus")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("Unknown theme should select %q, got %q", DefaultTheme, CurrentThemeName())
	}
}

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	SetThemeByName("gruvbox")
	if CurrentThemeName() != ThemeGruvbox {
		t.Errorf("CurrentThemeName() = %q, want %q", CurrentThemeName(), ThemeGruvbox)
	}

	SetThemeByName("")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("Empty name should select the default, got %q", CurrentThemeName())
	}
}

func TestTheme_Defaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" {
		t.Errorf("GetBgSelected() = %q, want Primary", th.GetBgSelected())
	}
	if th.GetBorderFocus() != "#111111" {
		t.Errorf("GetBorderFocus() = %q, want Primary", th.GetBorderFocus())
	}

	th.BgSelected = "#222222"
	th.BorderFocus = "#333333"
	if th.GetBgSelected() != "#222222" || th.GetBorderFocus() != "#333333" {
		t.Error("Explicit colors should win over Primary")
	}
}
