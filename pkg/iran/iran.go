// Package iran validates, formats and classifies Iranian mobile numbers.
//
// A normalised Iranian mobile number is ten digits starting with 9, e.g.
// "9123456789". Every function accepts free text: spaces, dashes, "+98",
// "0098" and Persian or Arabic digits are all handled.
package iran

import (
	"github.com/go-playground/validator/v10"

	"github.com/mroshb/phone_manager/pkg/operators"
	"github.com/mroshb/phone_manager/pkg/phone"
)

// ValidationTag is the struct tag registered by RegisterValidation.
const ValidationTag = "ir_mobile"

// Country is the numbering plan. Prefixes include the trunk zero; updated May 2025.
var Country = phone.Country{
	Name:              operators.CountryIran,
	Adjective:         "Iranian",
	Region:            "IR",
	CallingCode:       "98",
	LeadDigit:         '9',
	Length:            10,
	FallbackPrefixLen: 3,
	Operators: []phone.OperatorPrefixes{
		{Operator: operators.HamraheAval, Prefixes: []string{
			"0910", "0911", "0912", "0913", "0914", "0915", "0916", "0917", "0918", "0919",
			"0990", "0991", "0992", "0993", "0994", "0995", "0996",
		}},
		{Operator: operators.Irancell, Prefixes: []string{
			"0930", "0933", "0935", "0936", "0937", "0938", "0939",
			"0900", "0901", "0902", "0903", "0904", "0905", "0941",
		}},
		{Operator: operators.Rightel, Prefixes: []string{"0920", "0921", "0922", "0923"}},
		{Operator: operators.Shatel, Prefixes: []string{
			"099810", "099811", "099812", "099813", "099814", "099815", "099816", "099817",
			"099818", "099819", "099820", "099821",
		}},
		{Operator: operators.Samantel, Prefixes: []string{"09999", "099999", "099996", "099997", "099998"}},
		{Operator: operators.Aptel, Prefixes: []string{"099910", "099911", "099913"}},
		{Operator: operators.Azartakht, Prefixes: []string{"099914"}},
		{Operator: operators.LotusTel, Prefixes: []string{"09990"}},
		{Operator: operators.Anarestan, Prefixes: []string{"0994", "09944", "09945", "09908", "09932", "09933"}},
		{Operator: operators.Taliya, Prefixes: []string{"0932"}},
	},
}

var manager = phone.MustManager(Country)

// Manager returns the shared Iranian Manager.
func Manager() *phone.Manager { return manager }

// Operators lists every registered Iranian operator, including those with
// no allocated prefix.
func Operators() []operators.Code { return operators.All(operators.CountryIran) }

// MNOs lists the Iranian network operators.
func MNOs() []operators.Code { return operators.MNOs(operators.CountryIran) }

// MVNOs lists the Iranian virtual operators.
func MVNOs() []operators.Code { return operators.MVNOs(operators.CountryIran) }

// CountryCode returns "98".
func CountryCode() string { return manager.CountryCode() }

// Sanitize trims whitespace and converts Persian and Arabic digits to ASCII.
func Sanitize(input string) string { return manager.Sanitize(input) }

// Normalize returns the ten digit national number or an error matching
// phone.ErrInvalidNumber.
func Normalize(input string) (string, error) { return manager.Normalize(input) }

// IsValid reports whether input is an Iranian mobile number.
func IsValid(input string) bool { return manager.IsValid(input) }

// Operator returns the operator owning the longest matching prefix.
func Operator(input string) (operators.Code, bool) { return manager.Operator(input) }

// HasValidPrefix reports whether input falls in an allocated operator range.
func HasValidPrefix(input string) bool { return manager.HasValidPrefix(input) }

// Prefix returns the operator prefix, "0912" or "912" with withoutLeadingZero.
func Prefix(input string, withoutLeadingZero bool) (string, bool) {
	return manager.Prefix(input, withoutLeadingZero)
}

// Split cuts input into prefix, middle and last parts: "912", "345", "6789".
func Split(input string) (phone.Parts, error) { return manager.Split(input) }

// Format renders input in the named style.
func Format(style phone.Style, input string) (string, error) { return manager.Format(style, input) }

// FormatInternational returns "+989123456789".
func FormatInternational(input string) (string, error) { return manager.FormatInternational(input) }

// FormatE164 is FormatInternational.
func FormatE164(input string) (string, error) { return manager.FormatE164(input) }

// FormatLocal returns "09123456789".
func FormatLocal(input string) (string, error) { return manager.FormatLocal(input) }

// FormatBare returns "9123456789".
func FormatBare(input string) (string, error) { return manager.FormatBare(input) }

// FormatRFC3966 returns "tel:+98-912-345-6789".
func FormatRFC3966(input string) (string, error) { return manager.FormatRFC3966(input) }

// FormatDashed returns "912-345-6789".
func FormatDashed(input string) (string, error) { return manager.FormatDashed(input) }

// FormatSpaced returns "912 345 6789".
func FormatSpaced(input string) (string, error) { return manager.FormatSpaced(input) }

// FormatDotted returns "912.345.6789".
func FormatDotted(input string) (string, error) { return manager.FormatDotted(input) }

// FormatParentheses returns "(912) 345-6789".
func FormatParentheses(input string) (string, error) { return manager.FormatParentheses(input) }

// FormatNational returns "(912) 345 6789".
func FormatNational(input string) (string, error) { return manager.FormatNational(input) }

// FormatInternationalSpaced returns "+98 912 345 6789".
func FormatInternationalSpaced(input string) (string, error) {
	return manager.FormatInternationalSpaced(input)
}

// FormatInternationalDashed returns "+98-912-345-6789".
func FormatInternationalDashed(input string) (string, error) {
	return manager.FormatInternationalDashed(input)
}

// Random returns a local-format number for op, or for a random operator when
// op is empty.
func Random(op operators.Code) (string, error) { return manager.Random(op) }

// RegisterValidation registers the ir_mobile tag on v.
func RegisterValidation(v *validator.Validate) error {
	return manager.RegisterValidation(v, ValidationTag)
}
