package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("phone")
	require.NoError(t, err)
	assert.Equal(t, ModePhone, m)

	_, err = ParseMode("fax")
	assert.Error(t, err)
}

func TestValidateIdentifier_Email(t *testing.T) {
	v := NewValidator(ModeEmail, false)

	for _, ok := range []string{"arian@gmail.com", "a@b.com", "first.last+tag@mail-host.co.uk", "x_y-z@d.io"} {
		assert.NoError(t, v.ValidateIdentifier(ok), ok)
	}

	for _, bad := range []string{"arian", "", "a@b", "@b.com", "a b@c.com", "a@b_c.com", "09123231976"} {
		err := v.ValidateIdentifier(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, common.ErrInvalidIdentifier), bad)

		var ve *common.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "identifier", ve.Field)
	}
}

func TestValidateIdentifier_Phone(t *testing.T) {
	v := NewValidator(ModePhone, false)

	assert.NoError(t, v.ValidateIdentifier("09123231976"))

	for _, bad := range []string{"0922", "", "091232319761", "0912323197a", "+9123231976", "arian@gmail.com", "٠٩١٢٣٢٣١٩٧٦"} {
		assert.ErrorIs(t, v.ValidateIdentifier(bad), common.ErrInvalidIdentifier, bad)
	}
}

func TestValidateName(t *testing.T) {
	lenient := NewValidator(ModeEmail, false)
	strict := NewValidator(ModeEmail, true)

	tests := []struct {
		name      string
		in        string
		lenientOK bool
		strictOK  bool
	}{
		{"plain", "arian", true, true},
		{"digits", "user42", true, true},
		{"min bound", "abc", true, true},
		{"max bound", strings.Repeat("a", 16), true, true},
		{"too short", "ab", true, false},
		{"too long", strings.Repeat("a", 17), true, false},
		{"empty", "", true, false},
		{"space", "ari an", false, false},
		{"underscore", "ari_an", false, false},
		{"non ascii", "arián", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lenientOK {
				assert.NoError(t, lenient.ValidateName(tt.in))
			} else {
				assert.ErrorIs(t, lenient.ValidateName(tt.in), common.ErrInvalidName)
			}
			if tt.strictOK {
				assert.NoError(t, strict.ValidateName(tt.in))
			} else {
				assert.ErrorIs(t, strict.ValidateName(tt.in), common.ErrInvalidName)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	lenient := NewValidator(ModeEmail, false)
	strict := NewValidator(ModeEmail, true)

	tests := []struct {
		name     string
		in       string
		strictOK bool
	}{
		{"typical", "some_hard_password", true},
		{"min bound", "12345", true},
		{"max bound", strings.Repeat("p", 64), true},
		{"short", "1234", false},
		{"long", strings.Repeat("p", 65), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, lenient.ValidatePassword(tt.in), "lenient mode accepts every length")
			if tt.strictOK {
				assert.NoError(t, strict.ValidatePassword(tt.in))
			} else {
				assert.ErrorIs(t, strict.ValidatePassword(tt.in), common.ErrInvalidPassword)
			}
		})
	}
}
