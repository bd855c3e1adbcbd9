// Package tui implements the inkwell Bubble Tea demo: a sign-up form driven
// by the validation gate with toast notifications layered on top.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/inkwell/internal/core/config"
	"github.com/colonyops/inkwell/internal/core/logging"
	"github.com/colonyops/inkwell/internal/core/notify"
	"github.com/colonyops/inkwell/internal/core/routes"
	"github.com/colonyops/inkwell/internal/core/styles"
	"github.com/colonyops/inkwell/internal/tui/components"
	"github.com/colonyops/inkwell/internal/tui/components/form"
	tuinotify "github.com/colonyops/inkwell/internal/tui/notify"
)

// UIState represents the current state of the demo.
type UIState int

const (
	stateSignUp UIState = iota
	stateAccount
	stateHelp
)

// Form keys handled by form.Dialog, listed in the help dialog.
var formBindings = []key.Binding{
	key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "validate field")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
}

var (
	helpKey = key.NewBinding(key.WithKeys("f1", "?"), key.WithHelp("f1/?", "help"))
	quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	tabKeys = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "switch tab"))
)

// Options configures the demo model.
type Options struct {
	Config  *config.Config
	Bus     *tuinotify.Bus
	Watcher *ConfigWatcher // optional; reloads theme and keybindings
}

// Model is the main Bubble Tea model for the demo.
type Model struct {
	cfg      *config.Config
	bus      *tuinotify.Bus
	watcher  *ConfigWatcher
	signal   *ChangeSignal
	handler  *KeybindingHandler
	toasts   *ToastController
	toastsUI *ToastView
	form     *form.Dialog
	help     help.Model

	state    UIState
	prev     UIState // state to return to when help closes
	profile  routes.Profile
	path     string
	width    int
	height   int
	samples  int
	quitting bool
}

// New creates a demo model. The bus must be backed by a store.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	toasts := NewToastController(opts.Bus.Store())

	return Model{
		cfg:      cfg,
		bus:      opts.Bus,
		watcher:  opts.Watcher,
		signal:   NewChangeSignal(opts.Bus),
		handler:  NewKeybindingHandler(cfg.Keybindings),
		toasts:   toasts,
		toastsUI: NewToastView(toasts),
		form:     newSignUpDialog(cfg.Validation),
		help:     help.New(),
		state:    stateSignUp,
		path:     routes.SignUp(),
	}
}

// Init starts listening for store changes and focuses the form.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init(), m.signal.WaitForSignal()}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Start())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil
	case storeChangedMsg:
		m.toasts.Sync()
		return m, m.signal.WaitForSignal()
	case configReloadedMsg:
		return m.handleConfigReloaded(msg)
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.toasts.Hover(m.toastsUI.ToastAt(mouse.X, mouse.Y, m.screenWidth()))
		return m, nil
	case form.SubmittedMsg:
		return m.handleSubmitted(msg)
	case form.CancelledMsg:
		return m.quit()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, quitKey) {
		return m.quit()
	}

	if action, ok := m.handler.Resolve(msg); ok {
		m.runAction(action)
		return m, nil
	}

	// Escape first releases a focused toast.
	if msg.String() == "esc" && m.toasts.Focused() != "" {
		m.toasts.Blur()
		return m, nil
	}

	switch m.state {
	case stateSignUp:
		// "?" is typed into the form; only f1 opens help here.
		if msg.String() == "f1" {
			m.openHelp()
			return m, nil
		}
	case stateHelp:
		if msg.String() == "esc" || key.Matches(msg, helpKey) {
			m.state = m.prev
		}
		return m, nil
	case stateAccount:
		switch {
		case key.Matches(msg, helpKey):
			m.openHelp()
		case msg.String() == "left":
			m.switchTab(-1)
		case msg.String() == "right":
			m.switchTab(1)
		case msg.String() == "esc", msg.String() == "q":
			return m.quit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *Model) openHelp() {
	m.prev = m.state
	m.state = stateHelp
}

// runAction executes a configured keybinding action.
func (m *Model) runAction(action string) {
	log := logging.Component("tui")
	log.Debug().Str("action", action).Msg("keybinding action")

	switch action {
	case config.ActionToastSuccess:
		m.publishSample(notify.VariantSuccess, "Saved", "Your changes were saved")
	case config.ActionToastInfo:
		m.publishSample(notify.VariantInfo, "Heads up", "A new version is available")
	case config.ActionToastWarn:
		m.publishSample(notify.VariantWarn, "Storage", "You are close to your storage limit")
	case config.ActionToastDanger:
		m.publishSample(notify.VariantDanger, "Sync failed", "Could not reach the server")
	case config.ActionFocusToast:
		m.toasts.FocusNext()
	case config.ActionDismissToast:
		m.toasts.Dismiss()
	case config.ActionDismissAll:
		m.toasts.DismissAll()
	case config.ActionNextTheme:
		name := styles.NextTheme(styles.Theme())
		styles.SetThemeByName(name)
		m.bus.Infof("Theme: %s", name)
	default:
		log.Warn().Str("action", action).Msg("unknown keybinding action")
	}
}

func (m *Model) publishSample(variant notify.Variant, subject, message string) {
	m.samples++
	role := notify.RoleLog
	if variant == notify.VariantDanger {
		role = notify.RoleAlert
	}
	m.bus.Publish(notify.Options{
		Variant: variant,
		Role:    role,
		Subject: subject,
		Message: fmt.Sprintf("%s (#%d)", message, m.samples),
	})
}

func (m Model) handleSubmitted(msg form.SubmittedMsg) (tea.Model, tea.Cmd) {
	name, _ := msg.Values[fieldDisplayName].(string)
	m.profile = routes.Profile{DisplayName: strings.TrimSpace(name)}
	m.path = routes.AccountPath(routes.Account{Profile: m.profile})
	m.state = stateAccount

	log := logging.Component("tui")
	log.Info().
		Str("form", msg.Form).
		Str("path", m.path).
		Msg("sign up submitted")

	m.bus.Publish(notify.Options{
		Variant: notify.VariantSuccess,
		Role:    notify.RoleLog,
		Subject: "Welcome, " + m.profile.DisplayName,
		Message: "Your account was created",
	})
	return m, nil
}

// handleConfigReloaded applies the theme and keybindings of a reloaded
// config. Toast TTL and limits are fixed for the life of the store.
func (m Model) handleConfigReloaded(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.watcher != nil {
		cmd = m.watcher.Start()
	}

	if msg.err != nil {
		log := logging.Component("tui")
		log.Warn().Err(msg.err).Msg("config reload failed")
		m.bus.Dangerf("Config not reloaded: %v", msg.err)
		return m, cmd
	}

	m.cfg = msg.cfg
	m.handler = NewKeybindingHandler(msg.cfg.Keybindings)
	styles.SetThemeByName(msg.cfg.Theme)
	m.bus.Infof("Config reloaded")
	return m, cmd
}

// switchTab moves between the account settings tabs.
func (m *Model) switchTab(delta int) {
	tabs := routes.AccountNav(m.profile.DisplayName, m.path)
	current := 0
	for i, t := range tabs {
		if t.Active {
			current = i
			break
		}
	}
	next := (current + delta + len(tabs)) % len(tabs)
	m.path = tabs[next].Href
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.signal.Close()
	return m, tea.Quit
}

func (m Model) screenWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width
}

func (m Model) screenHeight() int {
	if m.height == 0 {
		return 24
	}
	return m.height
}

func (m Model) helpDialog() *components.HelpDialog {
	return components.NewHelpDialog("Keyboard shortcuts",
		components.HelpDialogSection{Title: "Form", Bindings: formBindings},
		components.HelpDialogSection{Title: "Account", Bindings: []key.Binding{tabKeys}},
		components.HelpDialogSection{Title: "Toasts", Bindings: m.handler.Bindings()},
		components.HelpDialogSection{Title: "General", Bindings: []key.Binding{helpKey, quitKey}},
	)
}
