package tui

import (
	"slices"

	"github.com/colonyops/inkwell/internal/core/notify"
)

const toastWidth = 48

// ToastController tracks keyboard focus and mouse hover over the visible
// toasts. A toast is paused while it is focused or hovered and resumes once
// it is neither.
type ToastController struct {
	store   *notify.Store
	toasts  []notify.Notification
	focused string
	hovered string
}

func NewToastController(store *notify.Store) *ToastController {
	c := &ToastController{store: store}
	c.Sync()
	return c
}

// Sync refreshes the snapshot from the store and forgets focus or hover on
// toasts that are gone.
func (c *ToastController) Sync() {
	c.toasts = c.store.Items()
	if c.index(c.focused) == -1 {
		c.focused = ""
	}
	if c.index(c.hovered) == -1 {
		c.hovered = ""
	}
}

// Toasts returns the snapshot taken by the last Sync, oldest first.
func (c *ToastController) Toasts() []notify.Notification {
	return c.toasts
}

// HasToasts returns true if there are any visible toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Focused returns the id of the focused toast, or "".
func (c *ToastController) Focused() string { return c.focused }

// Hovered returns the id of the toast under the mouse, or "".
func (c *ToastController) Hovered() string { return c.hovered }

// FocusNext moves focus to the next older toast, starting from the newest
// and wrapping around.
func (c *ToastController) FocusNext() {
	c.Sync()
	if len(c.toasts) == 0 {
		return
	}

	next := len(c.toasts) - 1
	if i := c.index(c.focused); i != -1 {
		next = (i - 1 + len(c.toasts)) % len(c.toasts)
	}

	prev := c.focused
	c.focused = c.toasts[next].ID
	c.store.PauseTimeout(c.focused)
	c.release(prev)
	c.Sync()
}

// Blur drops keyboard focus.
func (c *ToastController) Blur() {
	prev := c.focused
	c.focused = ""
	c.release(prev)
	c.Sync()
}

// Hover records the toast under the mouse. An empty id means the pointer
// left all toasts.
func (c *ToastController) Hover(id string) {
	if id == c.hovered {
		return
	}
	prev := c.hovered
	c.hovered = id
	if id != "" {
		c.store.PauseTimeout(id)
	}
	c.release(prev)
	c.Sync()
}

// Dismiss removes the focused toast, or the newest one when none is focused.
func (c *ToastController) Dismiss() {
	c.Sync()
	target := c.focused
	if target == "" && len(c.toasts) > 0 {
		target = c.toasts[len(c.toasts)-1].ID
	}
	if target == "" {
		return
	}
	c.store.Remove(target)
	c.Sync()
}

// DismissAll removes every toast.
func (c *ToastController) DismissAll() {
	c.store.Clear()
	c.Sync()
}

// release resumes id unless it is still focused or hovered.
func (c *ToastController) release(id string) {
	if id == "" || id == c.focused || id == c.hovered {
		return
	}
	c.store.ResumeTimeout(id)
}

func (c *ToastController) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(c.toasts, func(n notify.Notification) bool { return n.ID == id })
}
