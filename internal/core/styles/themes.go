package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps the semantic color tokens used by every style.
type Palette struct {
	Dark bool // selects the dark glamour base style

	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color // body text
	Muted      color.Color // secondary text, borders at rest
	Background color.Color
	Surface    color.Color // raised elements: buttons, header bars
	Info       color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color // the danger variant
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes. The dash themes use the indigo,
// slate, crimson, amber and teal Radix scales.
var themes = map[string]Palette{
	"dash-light": {
		Primary:    lipgloss.Color("#3e63dd"), // indigo9
		Secondary:  lipgloss.Color("#8b8d98"), // slate9
		Foreground: lipgloss.Color("#1c2024"), // slate12
		Muted:      lipgloss.Color("#60646c"), // slate11
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f0f0f3"), // slate3
		Info:       lipgloss.Color("#3358d4"), // indigo10
		Success:    lipgloss.Color("#0d9b8a"), // teal10
		Warning:    lipgloss.Color("#ab6400"), // amber11
		Error:      lipgloss.Color("#d31e66"), // crimson10
	},
	"dash-dark": {
		Dark:       true,
		Primary:    lipgloss.Color("#3e63dd"), // indigo9
		Secondary:  lipgloss.Color("#696e77"), // slate9
		Foreground: lipgloss.Color("#edeef0"), // slate12
		Muted:      lipgloss.Color("#b0b4ba"), // slate11
		Background: lipgloss.Color("#111113"), // slate1
		Surface:    lipgloss.Color("#212225"), // slate3
		Info:       lipgloss.Color("#9eb1ff"), // indigo11
		Success:    lipgloss.Color("#0eb39e"), // teal10
		Warning:    lipgloss.Color("#ffca16"), // amber10
		Error:      lipgloss.Color("#f4549b"), // crimson10
	},
	"tokyo-night": {
		Dark:       true,
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#bb9af7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#292e42"),
		Info:       lipgloss.Color("#7dcfff"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// NextTheme returns the theme after name in ThemeNames order, wrapping
// around. Unknown names return the first theme.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Hex returns the #rrggbb form of c, or "" when c is nil.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cc.Hex()
}

func colorHexPtr(c color.Color) *string {
	hex := Hex(c)
	if hex == "" {
		return nil
	}
	return &hex
}

// GlamourStyle returns a glamour style config for the active palette, based
// on the light or dark builtin style.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.LightStyleConfig
	if CurrentPalette.Dark {
		cfg = glamourstyles.DarkStyleConfig
	}

	var (
		text    = colorHexPtr(ColorForeground)
		primary = colorHexPtr(ColorPrimary)
		info    = colorHexPtr(ColorInfo)
		muted   = colorHexPtr(ColorMuted)
		surface = colorHexPtr(ColorSurface)
	)

	cfg.Document.Color = text
	cfg.Paragraph.Color = text
	cfg.Table.Color = text
	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.Link.Color = info
	cfg.LinkText.Color = info
	cfg.Code.Color = info
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	return cfg
}
