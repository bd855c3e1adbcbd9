// Package printer writes styled, human oriented CLI output.
package printer

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inkwell/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines to an io.Writer.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon != "" {
		msg = style.Render(icon) + " " + msg
	}
	_, _ = lipgloss.Fprintln(p.w, msg)
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = lipgloss.Fprintln(p.w, fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorPrimary), styles.IconNotifyInfo, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorSuccess), styles.IconNotifySuccess, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorWarning), styles.IconNotifyWarning, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorError), styles.IconNotifyDanger, format, args...)
}

// Section prints a header followed by a divider.
func (p *Printer) Section(title string) {
	_, _ = lipgloss.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
	_, _ = lipgloss.Fprintln(p.w, styles.DividerStyle.Render(divider(lipgloss.Width(title))))
}

// CheckItem prints an indented passing item.
func (p *Printer) CheckItem(label, detail string) {
	p.item(styles.ColorSuccess, styles.IconCheck, label, detail)
}

// FailItem prints an indented failing item.
func (p *Printer) FailItem(label, detail string) {
	p.item(styles.ColorError, styles.IconCross, label, detail)
}

func (p *Printer) item(c color.Color, icon, label, detail string) {
	line := "  " + lipgloss.NewStyle().Foreground(c).Render(icon) + " " + label
	if detail != "" {
		line += " " + styles.DividerStyle.Render(detail)
	}
	_, _ = lipgloss.Fprintln(p.w, line)
}

func divider(n int) string {
	b := make([]rune, max(n, 3))
	for i := range b {
		b[i] = '─'
	}
	return string(b)
}
