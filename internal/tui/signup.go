package tui

import (
	"context"

	"github.com/colonyops/inkwell/internal/core/config"
	"github.com/colonyops/inkwell/internal/core/validate"
	"github.com/colonyops/inkwell/internal/tui/components/form"
)

const signUpForm = "Sign up"

// Sign-up field names.
const (
	fieldDisplayName = "displayName"
	fieldEmail       = "email"
	fieldPassword    = "password"
	fieldConfirm     = "confirmPassword"
	fieldWebsite     = "website"
)

// presetFor returns the preset constructor selected by a validation mode.
// Unknown modes fall back to OnBlur; Load rejects them before they get here.
func presetFor(mode string) func(validate.Source, validate.OrConfig) validate.Validator {
	preset, err := validate.ForMode(mode)
	if err != nil {
		return validate.OnBlur
	}
	return preset
}

// confirmPassword resolves to a schema that requires the value to equal the
// current password field.
func confirmPassword() validate.Source {
	return validate.ResolverFunc(func(get validate.Getter) (validate.Schema, error) {
		var want any
		if get != nil {
			want, _ = get(fieldPassword)
		}
		return validate.Func(func(_ context.Context, value any) error {
			if value != want {
				return validate.Fail(fieldConfirm, "Passwords do not match")
			}
			return nil
		}), nil
	})
}

// newSignUpDialog builds the sign-up form validated according to cfg.
func newSignUpDialog(cfg config.ValidationConfig) *form.Dialog {
	preset := presetFor(cfg.Mode)
	gate := func(s validate.Source) form.TextFieldOption {
		return form.WithValidator(preset(s, validate.OrConfig{}).WithAbortEarly(cfg.AbortEarly))
	}

	return form.NewDialog(signUpForm,
		form.NewTextField(fieldDisplayName, "Display name",
			form.WithPlaceholder("octocat"),
			gate(validate.Static(validate.DisplayName)),
		),
		form.NewTextField(fieldEmail, "Email",
			form.WithPlaceholder("you@example.com"),
			gate(validate.Static(validate.Email.Label("Email").Required(nil))),
		),
		form.NewTextField(fieldPassword, "Password",
			form.WithMasked(),
			gate(validate.Static(validate.Password.Label("Password").Required(nil))),
		),
		form.NewTextField(fieldConfirm, "Confirm password",
			form.WithMasked(),
			gate(confirmPassword()),
		),
		form.NewTextField(fieldWebsite, "Website",
			form.WithPlaceholder("https://"),
			gate(validate.Static(validate.URL)),
		),
	)
}
