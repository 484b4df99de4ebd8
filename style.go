package logscreen

// Style holds the SGR attributes in effect for a run of text.
// The zero value is the default style: no colors, no flags.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
	Inverted   bool
}

// IsDefault returns true if no color or flag is set.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// apply folds a style-setting action into the style.
// Actions that do not affect style return the style unchanged.
func (s Style) apply(action Action) Style {
	switch a := action.(type) {
	case SetForeground:
		s.Foreground = a.Color
	case SetBackground:
		s.Background = a.Color
	case SetBold:
		s.Bold = a.On
	case SetFaint:
		s.Faint = a.On
	case SetItalic:
		s.Italic = a.On
	case SetUnderline:
		s.Underline = a.On
	case SetInverted:
		s.Inverted = a.On
	}
	return s
}
