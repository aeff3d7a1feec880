package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const TagContactEmail = "contact_email"

// Deliberately coarse: something@something.something with no whitespace
// and no stray '@'. The stock "email" tag is stricter than the contact
// form has ever been.
//
// RE2's \s is ASCII only, so the Unicode spaces browsers treat as
// whitespace (NBSP, line/paragraph separators, BOM, ...) are listed too.
const addrChar = `[^\s\x{0B}\x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}@]`

var contactEmailRegex = regexp.MustCompile(`^` + addrChar + `+@` + addrChar + `+\.` + addrChar + `+$`)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation(TagContactEmail, ContactEmail)
}

// ContactEmail validates the loose address shape accepted by the contact form.
// Empty values are left to "required".
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsContactEmail(val)
}

func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}
