package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name  string `validate:"required"`
	Email string `validate:"required,contact_email"`
}

func TestIsContactEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"x@y.z.w", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
		{"a@@b.com", false},
		{"a@b@c.com", false},
		{"a@b.c\n", false},
		{"a\tb@c.com", false},
		{"a\vb@c.com", false},
		{"a\u00a0b@c.com", false},
		{"a@b\u1680c.com", false},
		{"a@b.c\u2003om", false},
		{"a\u2028b@c.com", false},
		{"a\u2029b@c.com", false},
		{"a\u202fb@c.com", false},
		{"a\u205fb@c.com", false},
		{"a\u3000b@c.com", false},
		{"\ufeffa@b.com", false},
		{"\u00e9l\u00e8ve@\u00e9cole.fr", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContactEmail(tt.in))
		})
	}
}

func TestValidatorTags(t *testing.T) {
	v := New()

	t.Run("valid struct passes", func(t *testing.T) {
		assert.NoError(t, v.Struct(form{Name: "Ada", Email: "ada@example.com"}))
	})

	t.Run("missing field reports required", func(t *testing.T) {
		err := v.Struct(form{Email: "ada@example.com"})
		require.Error(t, err)
		assert.True(t, HasTag(err, "required"))
		assert.False(t, HasTag(err, TagContactEmail))
	})

	t.Run("bad address reports contact_email", func(t *testing.T) {
		err := v.Struct(form{Name: "Ada", Email: "ada@example"})
		require.Error(t, err)
		assert.False(t, HasTag(err, "required"))
		assert.True(t, HasTag(err, TagContactEmail))
		assert.Equal(t, []string{"Email: invalid email format"}, FormatValidationErrors(err))
	})

	t.Run("empty email is only a required failure", func(t *testing.T) {
		err := v.Struct(form{Name: "Ada"})
		require.Error(t, err)
		assert.True(t, HasTag(err, "required"))
		assert.False(t, HasTag(err, TagContactEmail))
	})
}

func TestHasTagIgnoresOtherErrors(t *testing.T) {
	assert.False(t, HasTag(errors.New("boom"), "required"))
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}
