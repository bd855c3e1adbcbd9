package styles

import (
	"image/color"

	"github.com/charmbracelet/huh"
	lipglossv1 "github.com/charmbracelet/lipgloss"
)

// v1 converts a palette color for huh, which is still built on lipgloss v1.
func v1(c color.Color) lipglossv1.TerminalColor {
	hex := Hex(c)
	if hex == "" {
		return lipglossv1.NoColor{}
	}
	return lipglossv1.Color(hex)
}

// FormTheme returns a huh theme derived from the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	var (
		primary   = v1(ColorPrimary)
		secondary = v1(ColorSecondary)
		fg        = v1(ColorForeground)
		muted     = v1(ColorMuted)
		bg        = v1(ColorBackground)
		surface   = v1(ColorSurface)
		danger    = v1(ColorError)
	)

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(danger)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(danger)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(secondary)
	t.Focused.Option = t.Focused.Option.Foreground(fg)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(bg).Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(muted).Background(surface)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(fg)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipglossv1.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)
	t.Blurred.NextIndicator = lipglossv1.NewStyle()
	t.Blurred.PrevIndicator = lipglossv1.NewStyle()

	t.Help.ShortKey = t.Help.ShortKey.Foreground(muted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(muted)

	return t
}
