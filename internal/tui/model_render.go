package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inkwell/internal/core/routes"
	"github.com/colonyops/inkwell/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render draws the current screen with its overlays.
func (m Model) render() string {
	if m.quitting {
		return ""
	}

	w, h := m.screenWidth(), m.screenHeight()

	page := m.state
	if page == stateHelp {
		page = m.prev
	}

	body := styles.ModalStyle.Render(m.form.View())
	if page == stateAccount {
		body = m.renderAccount()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(w),
		"",
		body,
		"",
		m.help.ShortHelpView(m.footerBindings()),
	)
	content = lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(content)

	if m.state == stateHelp {
		content = m.helpDialog().Overlay(content, w, h)
	}
	if m.toasts.HasToasts() {
		content = m.toastsUI.Overlay(content, w, h)
	}
	return content
}

// renderHeader renders the title and the navigation tabs for the current
// route.
func (m Model) renderHeader(width int) string {
	var tabs []routes.Tab
	if m.profile.DisplayName == "" {
		for _, r := range []struct{ label, href string }{
			{"Sign up", routes.SignUp()},
			{"Log in", routes.LogIn()},
			{"Forgot password", routes.ForgotPassword()},
		} {
			tabs = append(tabs, routes.Tab{Label: r.label, Href: r.href, Active: routes.Active(m.path, r.href)})
		}
	} else {
		tabs = routes.AccountNav(m.profile.DisplayName, m.path)
	}

	parts := []string{styles.CommandHeaderStyle.Render("inkwell") + " "}
	for _, t := range tabs {
		style := styles.TabStyle
		if t.Active {
			style = styles.TabActiveStyle
		}
		parts = append(parts, style.Render(t.Label))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	divider := styles.DividerStyle.Render(strings.Repeat("─", max(width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, header, divider)
}

func (m Model) renderAccount() string {
	name := "unknown"
	if r, ok := routes.Resolve(m.path); ok {
		name = r.Name
	}

	lines := []string{
		styles.ModalTitleStyle.Render(styles.IconProfile + " @" + m.profile.DisplayName),
		"",
		styles.CommandStyle.Render(styles.IconLink + " " + m.path),
		styles.DividerStyle.Render("route: " + name),
	}
	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) footerBindings() []key.Binding {
	bindings := []key.Binding{helpKey, quitKey}
	if m.state == stateAccount {
		bindings = append(bindings, tabKeys)
	}
	return append(bindings, m.handler.Bindings()...)
}
