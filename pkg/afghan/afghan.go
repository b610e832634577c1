// Package afghan validates, formats and classifies Afghan mobile numbers.
//
// A normalised Afghan mobile number is nine digits starting with 7, e.g.
// "701234567".
package afghan

import (
	"github.com/go-playground/validator/v10"

	"github.com/mroshb/phone_manager/pkg/operators"
	"github.com/mroshb/phone_manager/pkg/phone"
)

// ValidationTag is the struct tag registered by RegisterValidation.
const ValidationTag = "af_mobile"

// Country is the numbering plan. Prefixes include the trunk zero; updated May 2025.
var Country = phone.Country{
	Name:              operators.CountryAfghanistan,
	Adjective:         "Afghan",
	Region:            "AF",
	CallingCode:       "93",
	LeadDigit:         '7',
	Length:            9,
	FallbackPrefixLen: 2,
	Operators: []phone.OperatorPrefixes{
		{Operator: operators.MTN, Prefixes: []string{"070", "071", "077"}},
		{Operator: operators.Roshan, Prefixes: []string{"072", "073", "074", "079"}},
		{Operator: operators.Etisalat, Prefixes: []string{"075", "076"}},
		{Operator: operators.Salam, Prefixes: []string{"078"}},
		{Operator: operators.AfghanTel, Prefixes: []string{"0740", "0741", "0742", "0743", "0744"}},
		{Operator: operators.Wasel, Prefixes: []string{"0747", "0748", "0749"}},
	},
}

var manager = phone.MustManager(Country)

// Manager returns the shared Afghan Manager.
func Manager() *phone.Manager { return manager }

// Operators lists every registered Afghan operator.
func Operators() []operators.Code { return operators.All(operators.CountryAfghanistan) }

// MNOs lists the Afghan network operators.
func MNOs() []operators.Code { return operators.MNOs(operators.CountryAfghanistan) }

// MVNOs lists the Afghan virtual operators.
func MVNOs() []operators.Code { return operators.MVNOs(operators.CountryAfghanistan) }

// CountryCode returns "93".
func CountryCode() string { return manager.CountryCode() }

// Sanitize trims whitespace and converts Persian and Arabic digits to ASCII.
func Sanitize(input string) string { return manager.Sanitize(input) }

// Normalize returns the nine digit national number or an error matching
// phone.ErrInvalidNumber.
func Normalize(input string) (string, error) { return manager.Normalize(input) }

// IsValid reports whether input is an Afghan mobile number.
func IsValid(input string) bool { return manager.IsValid(input) }

// Operator returns the operator owning the longest matching prefix.
func Operator(input string) (operators.Code, bool) { return manager.Operator(input) }

// HasValidPrefix reports whether input falls in an allocated operator range.
func HasValidPrefix(input string) bool { return manager.HasValidPrefix(input) }

// Prefix returns the operator prefix, "070" or "70" with withoutLeadingZero.
func Prefix(input string, withoutLeadingZero bool) (string, bool) {
	return manager.Prefix(input, withoutLeadingZero)
}

// Split cuts input into prefix, middle and last parts: "70", "123", "4567".
func Split(input string) (phone.Parts, error) { return manager.Split(input) }

// Format renders input in the named style.
func Format(style phone.Style, input string) (string, error) { return manager.Format(style, input) }

// FormatInternational returns "+93701234567".
func FormatInternational(input string) (string, error) { return manager.FormatInternational(input) }

// FormatE164 is FormatInternational.
func FormatE164(input string) (string, error) { return manager.FormatE164(input) }

// FormatLocal returns "0701234567".
func FormatLocal(input string) (string, error) { return manager.FormatLocal(input) }

// FormatBare returns "701234567".
func FormatBare(input string) (string, error) { return manager.FormatBare(input) }

// FormatRFC3966 returns "tel:+93-70-123-4567".
func FormatRFC3966(input string) (string, error) { return manager.FormatRFC3966(input) }

// FormatDashed returns "70-123-4567".
func FormatDashed(input string) (string, error) { return manager.FormatDashed(input) }

// FormatSpaced returns "70 123 4567".
func FormatSpaced(input string) (string, error) { return manager.FormatSpaced(input) }

// FormatDotted returns "70.123.4567".
func FormatDotted(input string) (string, error) { return manager.FormatDotted(input) }

// FormatParentheses returns "(70) 123-4567".
func FormatParentheses(input string) (string, error) { return manager.FormatParentheses(input) }

// FormatNational returns "(70) 123 4567".
func FormatNational(input string) (string, error) { return manager.FormatNational(input) }

// FormatInternationalSpaced returns "+93 70 123 4567".
func FormatInternationalSpaced(input string) (string, error) {
	return manager.FormatInternationalSpaced(input)
}

// FormatInternationalDashed returns "+93-70-123-4567".
func FormatInternationalDashed(input string) (string, error) {
	return manager.FormatInternationalDashed(input)
}

// Random returns a local-format number for op, or for a random operator when
// op is empty.
func Random(op operators.Code) (string, error) { return manager.Random(op) }

// RegisterValidation registers the af_mobile tag on v.
func RegisterValidation(v *validator.Validate) error {
	return manager.RegisterValidation(v, ValidationTag)
}
