package logscreen

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how the screen is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Palette is the 16-color palette. If nil, uses Palette.
	Palette *[16]color.RGBA

	// DefaultFG is the default foreground color. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG is the default background color. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA

	// MinCols is the minimum image width in columns. If zero, the width of
	// the widest line is used.
	MinCols int
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// Screenshot renders the screen to an RGBA image using default settings
// (basicfont, default palette).
func (s *Screen) Screenshot() *image.RGBA {
	return s.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the screen to an RGBA image with custom font
// and color settings. Bold text is drawn in the bright palette, matching the
// HTML projection; inverted chunks swap foreground and background.
func (s *Screen) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 || cellHeight == 0 {
		metrics := face.Metrics()
		if cellWidth == 0 {
			adv, _ := face.GlyphAdvance('M')
			cellWidth = adv.Ceil()
			if cellWidth == 0 {
				cellWidth = 7 // fallback for basicfont
			}
		}
		if cellHeight == 0 {
			cellHeight = metrics.Height.Ceil()
		}
	}

	palette := cfg.Palette
	if palette == nil {
		palette = &Palette
	}

	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}

	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}

	cols := cfg.MinCols
	for _, line := range s.lines {
		if w := line.Width(); w > cols {
			cols = w
		}
	}
	rows := len(s.lines)

	imgWidth := cols * cellWidth
	imgHeight := rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	// Fill background
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, *defaultBG)
		}
	}

	metrics := face.Metrics()
	for row, line := range s.lines {
		col := 0
		for _, chunk := range line {
			fg, bg := chunkColors(chunk.Style, palette, defaultFG, defaultBG)

			for _, ch := range chunk.Text {
				x := col * cellWidth
				y := row * cellHeight
				col++

				// Fill cell background
				for py := 0; py < cellHeight; py++ {
					for px := 0; px < cellWidth; px++ {
						img.Set(x+px, y+py, bg)
					}
				}

				baseline := y + metrics.Ascent.Ceil()

				if ch != ' ' {
					d := &font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(fg),
						Face: face,
						Dot:  fixed.P(x, baseline),
					}
					d.DrawString(string(ch))
				}

				if chunk.Style.Underline {
					underlineY := baseline + 2
					for px := 0; px < cellWidth; px++ {
						if underlineY < imgHeight {
							img.Set(x+px, underlineY, fg)
						}
					}
				}
			}
		}
	}

	return img
}

// chunkColors resolves a style to concrete foreground and background colors.
func chunkColors(st Style, palette *[16]color.RGBA, defaultFG, defaultBG *color.RGBA) (fg, bg color.RGBA) {
	fgColor, bgColor := st.Foreground, st.Background
	if st.Inverted {
		fgColor, bgColor = bgColor, fgColor
	}
	if st.Bold {
		fgColor = fgColor.Bright()
	}

	fg = paletteColor(fgColor, true, palette, defaultFG, defaultBG)
	bg = paletteColor(bgColor, false, palette, defaultFG, defaultBG)

	if st.Faint {
		fg = color.RGBA{
			R: uint8(float64(fg.R) * 0.66),
			G: uint8(float64(fg.G) * 0.66),
			B: uint8(float64(fg.B) * 0.66),
			A: fg.A,
		}
	}
	return fg, bg
}

// paletteColor resolves a palette color using custom defaults.
func paletteColor(c Color, fg bool, palette *[16]color.RGBA, defaultFG, defaultBG *color.RGBA) color.RGBA {
	if c == ColorNone {
		if fg {
			return *defaultFG
		}
		return *defaultBG
	}
	return palette[c-ColorBlack]
}
