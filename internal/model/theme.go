package model

// Theme selects which prompt template and tone is used
type Theme string

const (
	ThemeLovelines  Theme = "lovelines"
	ThemeMoodverse  Theme = "moodverse"
	ThemeSoulscript Theme = "soulscript"
)

var ValidThemes = []Theme{
	ThemeLovelines, ThemeMoodverse, ThemeSoulscript,
}

// ResolveTheme maps an arbitrary theme string to a known theme.
// Unknown or missing themes fall back to moodverse; the fallback is a
// documented part of the contract, not an error.
func ResolveTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLovelines, ThemeMoodverse, ThemeSoulscript:
		return Theme(s)
	default:
		return ThemeMoodverse
	}
}
