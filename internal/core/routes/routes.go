// Package routes builds application paths and decides which navigation
// entries are active for a given path.
package routes

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Profile identifies a user.
type Profile struct {
	DisplayName string
}

// Workspace identifies a workspace owned by a user.
type Workspace struct {
	Profile
	Workspace string
	Settings  bool // link to the workspace settings page
}

// Notebook identifies a notebook inside a workspace.
type Notebook struct {
	Workspace
	Notebook string
}

// AccountTab is a page of the account settings.
type AccountTab string

const (
	TabProfile     AccountTab = "profile"
	TabPreferences AccountTab = "preferences"
	TabAuth        AccountTab = "auth"
)

// AccountTabs lists the account tabs in display order.
var AccountTabs = []AccountTab{TabProfile, TabPreferences, TabAuth}

// ParseAccountTab converts s to an AccountTab. An empty string is the
// profile tab.
func ParseAccountTab(s string) (AccountTab, error) {
	if s == "" {
		return TabProfile, nil
	}
	for _, t := range AccountTabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account tab %q", s)
}

// Account identifies a page of a user's account settings.
type Account struct {
	Profile
	Tab AccountTab // defaults to TabProfile
}

func user(name string) string { return "/@" + url.PathEscape(name) }

// Home is the user's profile when a display name is known and "/" otherwise.
func Home(p Profile) string {
	if p.DisplayName == "" {
		return "/"
	}
	return user(p.DisplayName)
}

func SignUp() string         { return "/sign-up" }
func LogIn() string          { return "/log-in" }
func ForgotPassword() string { return "/forgot-password" }

func ProfilePath(p Profile) string { return user(p.DisplayName) }

func WorkspacePath(w Workspace) string {
	path := user(w.DisplayName) + "/" + url.PathEscape(w.Workspace)
	if w.Settings {
		path += "/settings"
	}
	return path
}

func NotebookPath(n Notebook) string {
	path := user(n.DisplayName) + "/" + url.PathEscape(n.Workspace.Workspace) + "/" + url.PathEscape(n.Notebook)
	if n.Settings {
		path += "/settings"
	}
	return path
}

func AccountPath(a Account) string {
	tab := a.Tab
	if tab == "" {
		tab = TabProfile
	}
	return user(a.DisplayName) + "/account/" + url.PathEscape(string(tab))
}

// Route describes a named route and the glob pattern its paths match.
type Route struct {
	Name    string
	Pattern string
}

// Table lists every route. Patterns are doublestar globs; more specific
// routes come first, so a notebook named "settings" resolves as the
// workspace settings page.
var Table = []Route{
	{Name: "sign-up", Pattern: "/sign-up"},
	{Name: "log-in", Pattern: "/log-in"},
	{Name: "forgot-password", Pattern: "/forgot-password"},
	{Name: "account", Pattern: "/@*/account/*"},
	{Name: "workspace-settings", Pattern: "/@*/*/settings"},
	{Name: "notebook-settings", Pattern: "/@*/*/*/settings"},
	{Name: "notebook", Pattern: "/@*/*/*"},
	{Name: "workspace", Pattern: "/@*/*"},
	{Name: "profile", Pattern: "/@*"},
	{Name: "home", Pattern: "/"},
}

// Match reports whether path matches the glob pattern. A trailing slash on
// path is ignored.
func Match(pattern, path string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("invalid route pattern %q", pattern)
	}
	return doublestar.Match(pattern, normalize(path))
}

// Active reports whether path matches any of patterns. Invalid patterns
// never match.
func Active(path string, patterns ...string) bool {
	for _, p := range patterns {
		if ok, err := Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Resolve returns the first route in Table that matches path.
func Resolve(path string) (Route, bool) {
	for _, r := range Table {
		if Active(path, r.Pattern) {
			return r, true
		}
	}
	return Route{}, false
}

var globMeta = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `{`, `\{`, `}`, `\}`)

// escapeMeta quotes the doublestar metacharacters in s so it matches only
// itself.
func escapeMeta(s string) string { return globMeta.Replace(s) }

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Tab is a navigation entry with its active state.
type Tab struct {
	Label  string
	Href   string
	Active bool
}

// AccountNav builds the account settings tabs for name, marking the tab that
// matches current.
func AccountNav(name, current string) []Tab {
	tabs := make([]Tab, 0, len(AccountTabs))
	for _, t := range AccountTabs {
		href := AccountPath(Account{Profile: Profile{DisplayName: name}, Tab: t})
		tabs = append(tabs, Tab{
			Label:  strings.ToUpper(string(t[:1])) + string(t[1:]),
			Href:   href,
			Active: Active(current, escapeMeta(href), escapeMeta(href)+"/**"),
		})
	}
	return tabs
}
