package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inkwell/internal/core/validate"
	"github.com/colonyops/inkwell/pkg/tuitest"
)

// settle runs cmd and feeds every resulting message back into f.
func settle(f Field, cmd tea.Cmd) Field {
	for _, msg := range tuitest.Run(cmd) {
		f, _ = f.Update(msg)
	}
	return f
}

func typeInto(f Field, s string) Field {
	for _, msg := range tuitest.Type(s) {
		var cmd tea.Cmd
		f, cmd = f.Update(msg)
		f = settle(f, cmd)
	}
	return f
}

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("name", "Name")
		assert.Equal(t, "name", f.Name())
		assert.Equal(t, "Name", f.Label())
		assert.Equal(t, "", f.Value())
		assert.False(t, f.Focused())
		assert.False(t, f.Dirty())
		assert.False(t, f.Touched())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("name", "Name", WithDefault("hello"))
		assert.Equal(t, "hello", f.Value())
		assert.False(t, f.Dirty())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("name", "Name")
		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
		assert.True(t, f.Touched())
	})

	t.Run("blur without focus does not touch", func(t *testing.T) {
		f := NewTextField("name", "Name")
		assert.Nil(t, f.Blur())
		assert.False(t, f.Touched())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("name", "Name")
		field, cmd := f.Update(tuitest.KeyPress('a'))
		assert.Nil(t, cmd)
		assert.Equal(t, "", field.Value())
	})

	t.Run("typing marks dirty", func(t *testing.T) {
		f := NewTextField("name", "Name")
		f.Focus()
		typeInto(f, "ab")
		assert.Equal(t, "ab", f.Value())
		assert.True(t, f.Dirty())
	})

	t.Run("typing back to the default stays dirty", func(t *testing.T) {
		f := NewTextField("name", "Name", WithDefault("a"))
		f.Focus()
		typeInto(f, "b")
		f.SetValue("a")
		assert.True(t, f.Dirty())
	})

	t.Run("no validator produces no commands", func(t *testing.T) {
		f := NewTextField("name", "Name")
		assert.Nil(t, f.Validate(validate.EventSubmit))
	})

	t.Run("view shows label and placeholder", func(t *testing.T) {
		f := NewTextField("name", "Name", WithPlaceholder("your name"))
		view := tuitest.StripANSI(f.View())
		assert.Contains(t, view, "Name")
		assert.Contains(t, view, "your name")
	})

	t.Run("masked input hides value", func(t *testing.T) {
		f := NewTextField("password", "Password", WithMasked())
		f.Focus()
		typeInto(f, "secret")
		assert.Equal(t, "secret", f.Value())
		assert.NotContains(t, tuitest.StripANSI(f.View()), "secret")
	})

	t.Run("text trims whitespace", func(t *testing.T) {
		f := NewTextField("name", "Name", WithDefault("  padded "))
		assert.Equal(t, "padded", f.Text())
	})
}

func TestTextFieldValidation(t *testing.T) {
	emailOnBlur := validate.OnBlur(validate.Static(validate.Email), validate.OrConfig{})
	emailOnChange := validate.OnChange(validate.Static(validate.Email), validate.OrConfig{})

	t.Run("on blur waits for the field to be touched", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnBlur))
		f.Focus()
		typeInto(f, "bad")
		assert.Empty(t, f.Errors(), "change before blur is not evaluated")

		settle(f, f.Blur())
		require.Len(t, f.Errors(), 1)
		assert.Contains(t, tuitest.StripANSI(f.View()), "Enter a valid email address.")
	})

	t.Run("on blur keeps errors while typing", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnBlur))
		f.Focus()
		typeInto(f, "bad")
		settle(f, f.Blur())
		require.Len(t, f.Errors(), 1)

		f.Focus()
		typeInto(f, "@example.com")
		assert.Len(t, f.Errors(), 1, "change events are not validated")

		settle(f, f.Blur())
		assert.Empty(t, f.Errors())
	})

	t.Run("on change revalidates touched fields", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnChange))
		f.Focus()
		typeInto(f, "a@")
		settle(f, f.Blur())
		require.Len(t, f.Errors(), 1)

		f.Focus()
		typeInto(f, "b.io")
		assert.Empty(t, f.Errors())
	})

	t.Run("submit validates untouched fields", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnBlur), WithDefault("nope"))
		settle(f, f.Validate(validate.EventSubmit))
		assert.Len(t, f.Errors(), 1)
	})

	t.Run("stale results are dropped", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnBlur), WithDefault("nope"))
		first := f.Validate(validate.EventSubmit)
		f.SetValue("ok@example.com")
		second := f.Validate(validate.EventSubmit)

		settle(f, second)
		assert.Empty(t, f.Errors())

		settle(f, first)
		assert.Empty(t, f.Errors(), "older run must not overwrite the newer result")
	})

	t.Run("reset drops runs in flight", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnBlur), WithDefault("nope"))
		cmd := f.Validate(validate.EventSubmit)
		f.Reset()
		settle(f, cmd)
		assert.Empty(t, f.Errors())
		assert.False(t, f.Dirty())
	})

	t.Run("messages for other fields are ignored", func(t *testing.T) {
		f := NewTextField("email", "Email", WithValidator(emailOnBlur), WithDefault("nope"))
		msgs := tuitest.Run(f.Validate(validate.EventSubmit))
		require.Len(t, msgs, 1)

		vm := msgs[0].(ValidatedMsg)
		vm.Field = "other"
		f.Update(vm)
		assert.Empty(t, f.Errors())
	})

	t.Run("run errors are shown on the field", func(t *testing.T) {
		broken := validate.New(validate.ResolverFunc(func(validate.Getter) (validate.Schema, error) {
			return nil, assert.AnError
		}), validate.Config{})
		f := NewTextField("name", "Name", WithValidator(broken))
		settle(f, f.Validate(validate.EventUser))
		assert.Equal(t, []string{assert.AnError.Error()}, f.Errors())
	})
}
