package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "valid", value: "jane_doe"},
		{name: "valid with dots", value: "j.doe-42"},
		{name: "empty", value: "", want: []string{"required", "matches", "min"}},
		{name: "bad start", value: ".jane", want: []string{"matches"}},
		{name: "illegal chars", value: "jane doe!", want: []string{"matches"}},
		{name: "too short", value: "j", want: []string{"min"}},
		{name: "too long", value: "abcdefghijabcdefghijabcdefghijabcdefghij", want: []string{"max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DisplayName.Validate(context.Background(), tt.value, Options{Strict: true, Path: "displayName"})
			assert.Equal(t, tt.want, checkTypes(t, err))
		})
	}
}

func TestDisplayName_IllegalCharsMessage(t *testing.T) {
	err := DisplayName.Validate(context.Background(), "ja ne!! x", Options{Strict: true})
	fe, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, fe, 1)
	assert.Equal(t, "Your display name contains illegal characters:  !", fe[0].Err.Error())
}

func TestPassword_JSONMessage(t *testing.T) {
	err := Password.Validate(context.Background(), "short", Options{Strict: true, Path: "password"})
	fe, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, fe, 1)

	d, ok := ParseDetail(fe[0].Err.Error())
	require.True(t, ok)
	assert.Equal(t, MessageDetail{
		Type:          "min",
		Min:           10,
		Path:          "password",
		OriginalValue: "short",
		AriaLabel:     "The minimum number of characters required by this field is: 10. The current value contains 5 characters.",
	}, d)
}

func TestMsgURLFor(t *testing.T) {
	d, ok := ParseDetail(MsgURLFor("website")(MessageParams{Path: "other", OriginalValue: "x"}))
	require.True(t, ok)
	assert.Equal(t, "url", d.Type)
	assert.Equal(t, "website", d.Path)
}

func TestDefault(t *testing.T) {
	v := Default(Email, OrConfig{})

	res, err := v.Validate(context.Background(), FieldState{Name: "email", Value: "nope", Event: EventChange})
	require.NoError(t, err)
	assert.False(t, res.Evaluated)

	for _, ev := range DefaultOn {
		res, err = v.Validate(context.Background(), FieldState{Name: "email", Value: "nope", Event: ev})
		require.NoError(t, err)
		require.Len(t, res.Errors, 1)

		issues, err := ParseErrors(res.Errors)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "email", issues[0].Type)
		assert.Equal(t, "email", issues[0].Path)

		d, ok := issues[0].Detail()
		require.True(t, ok)
		assert.Equal(t, "nope", d.OriginalValue)
		assert.Equal(t, "Enter a valid email address.", issues[0].Text())
	}
}

func TestDefault_OverridesOn(t *testing.T) {
	v := Default(Email, OrConfig{On: []Event{EventBlur}})

	res, err := v.Validate(context.Background(), FieldState{Value: "nope", Event: EventSubmit})
	require.NoError(t, err)
	assert.False(t, res.Evaluated)

	res, err = v.Validate(context.Background(), FieldState{Value: "nope", Event: EventBlur})
	require.NoError(t, err)
	assert.True(t, res.Evaluated)
}

func TestOnBlurOnChange(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		event   Event
		touched bool
		want    bool
	}{
		{name: "blur touched", v: OnBlur(URL, OrConfig{}), event: EventBlur, touched: true, want: true},
		{name: "blur untouched", v: OnBlur(URL, OrConfig{}), event: EventBlur, want: false},
		{name: "blur ignores change", v: OnBlur(URL, OrConfig{}), event: EventChange, touched: true, want: false},
		{name: "blur submit", v: OnBlur(URL, OrConfig{}), event: EventSubmit, want: true},
		{name: "change touched", v: OnChange(URL, OrConfig{}), event: EventChange, touched: true, want: true},
		{name: "change blur touched", v: OnChange(URL, OrConfig{}), event: EventBlur, touched: true, want: true},
		{name: "change untouched", v: OnChange(URL, OrConfig{}), event: EventChange, want: false},
		{name: "change override touched", v: OnChange(URL, OrConfig{IfTouched: No}), event: EventChange, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.v.Validate(context.Background(), FieldState{
				Value:   "not a url",
				Event:   tt.event,
				Touched: tt.touched,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Evaluated)
			if tt.want {
				assert.Len(t, res.Errors, 1)
			}
		})
	}
}

func TestParseErrors_Invalid(t *testing.T) {
	_, err := ParseErrors([]string{`{"message":"ok"}`, "not json"})
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Required", want: "Required"},
		{name: "issue with plain message", in: `{"type":"required","message":"Required"}`, want: "Required"},
		{name: "bare detail", in: MsgMax(MessageParams{Max: 2, OriginalValue: "abc"}), want: "The maximum number of characters allowed for this field is: 2. The current value contains 3 characters."},
		{name: "broken json", in: "{nope", want: "{nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.in))
		})
	}
}

func TestTextFunc(t *testing.T) {
	fn := TextFunc(Default(Password, OrConfig{}), EventUser)

	require.NoError(t, fn("correct horse battery"))

	err := fn("short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum number of characters required by this field is: 10")

	// filtered out: nothing to report
	require.NoError(t, TextFunc(Default(Password, OrConfig{}), EventChange)("short"))
}

func TestLookupPreset(t *testing.T) {
	assert.Equal(t, []string{"display-name", "email", "password", "url"}, PresetNames())

	for _, name := range PresetNames() {
		_, ok := LookupPreset(name)
		assert.True(t, ok, name)
	}
	_, ok := LookupPreset("phone")
	assert.False(t, ok)
}

func TestForMode(t *testing.T) {
	tests := []struct {
		mode    string
		alts    int
		wantErr bool
	}{
		{mode: ModeSubmit, alts: 0},
		{mode: ModeBlur, alts: 1},
		{mode: ModeChange, alts: 1},
		{mode: "hover", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			preset, err := ForMode(tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.alts, preset(Static(Email), OrConfig{}).Alternatives())
		})
	}
}
