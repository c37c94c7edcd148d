package domain

// UserSettings holds the reader's display preferences, persisted as a single
// row. The front end owns the interpretation of these values; the backend
// only stores and returns them.
type UserSettings struct {
	Theme          string
	FontFamily     string
	FontSize       int
	LineHeight     float64
	LetterSpacing  float64
	WordsPerPage   int
	PageMargin     string
	JustifyText    bool
	Hyphenation    bool
	AnimationSpeed string
	PageCurl       bool
}

// DefaultUserSettings returns settings with sensible defaults, used when no
// row has been saved yet.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:          "light",
		FontFamily:     "georgia",
		FontSize:       18,
		LineHeight:     1.6,
		LetterSpacing:  0.0,
		WordsPerPage:   400,
		PageMargin:     "normal",
		JustifyText:    true,
		Hyphenation:    true,
		AnimationSpeed: "normal",
		PageCurl:       true,
	}
}
