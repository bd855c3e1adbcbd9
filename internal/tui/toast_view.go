package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/inkwell/internal/core/notify"
	"github.com/colonyops/inkwell/internal/core/styles"
)

// toastTop is the row of the first toast in the overlay.
const toastTop = 1

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	rendered := v.render()
	if len(rendered) == 0 {
		return ""
	}
	return strings.Join(rendered, "\n")
}

func (v *ToastView) render() []string {
	toasts := v.controller.Toasts()
	out := make([]string, 0, len(toasts))
	for _, t := range toasts {
		out = append(out, renderToast(t, t.ID == v.controller.Focused()))
	}
	return out
}

func renderToast(n notify.Notification, focused bool) string {
	icon, style := variantStyle(n.Variant)
	if focused {
		style = style.Border(styles.ToastFocusedStyle.GetBorderStyle())
	}

	inner := toastWidth - style.GetHorizontalFrameSize()

	head := icon
	if n.Subject != "" {
		head += " " + styles.ToastSubjectStyle.Render(n.Subject)
	} else {
		head += " " + n.Message
	}
	if n.Paused {
		head += " " + styles.IconPause
	}

	lines := []string{ansi.Truncate(head, inner, "…")}
	if n.Subject != "" && n.Message != "" {
		lines = append(lines, ansi.Truncate(n.Message, inner, "…"))
	}

	return style.Width(toastWidth).Render(strings.Join(lines, "\n"))
}

func variantStyle(v notify.Variant) (string, lipgloss.Style) {
	switch v {
	case notify.VariantSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	case notify.VariantWarn:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.VariantDanger:
		return styles.IconNotifyDanger, styles.ToastDangerStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

// Overlay composites the toast stack over background in the top-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	rightX := max(width-toastW-1, 0)

	toastLayer.X(rightX).Y(min(toastTop, max(height-1, 0))).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}

// ToastAt returns the id of the toast drawn at cell (x, y) by Overlay for a
// screen of the given width, or "" when the cell is not covered by a toast.
func (v *ToastView) ToastAt(x, y, width int) string {
	rendered := v.render()
	if len(rendered) == 0 {
		return ""
	}

	toastW := 0
	for _, r := range rendered {
		toastW = max(toastW, lipgloss.Width(r))
	}
	left := max(width-toastW-1, 0)
	if x < left || x >= left+toastW {
		return ""
	}

	top := toastTop
	toasts := v.controller.Toasts()
	for i, r := range rendered {
		h := lipgloss.Height(r)
		if y >= top && y < top+h {
			return toasts[i].ID
		}
		top += h
	}
	return ""
}
