package phone

import (
	"fmt"

	apperrors "github.com/mroshb/phone_manager/pkg/errors"
)

// Parts is a normalised number cut into its operator prefix (bare, no trunk
// zero), the next three digits and the remaining tail.
type Parts struct {
	Prefix string `json:"prefix"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

// Split cuts input into Parts. Numbers outside every known range still split,
// using the country's fallback prefix length.
func (m *Manager) Split(input string) (Parts, error) {
	digits, err := m.Normalize(input)
	if err != nil {
		return Parts{}, err
	}

	prefix, _, ok := m.lookupIndex().match(Trunk + digits)
	n := m.country.FallbackPrefixLen
	if ok {
		n = len(prefix) - len(Trunk)
	}

	mid := n + 3
	if mid > len(digits) {
		mid = len(digits)
	}
	return Parts{
		Prefix: digits[:n],
		Middle: digits[n:mid],
		Last:   digits[mid:],
	}, nil
}

// Style names an output layout understood by Format.
type Style string

const (
	StyleInternational       Style = "international"
	StyleE164                Style = "e164"
	StyleLocal               Style = "local"
	StyleBare                Style = "bare"
	StyleRFC3966             Style = "rfc3966"
	StyleDashed              Style = "dashed"
	StyleSpaced              Style = "spaced"
	StyleDotted              Style = "dotted"
	StyleParentheses         Style = "parentheses"
	StyleNational            Style = "national"
	StyleInternationalSpaced Style = "international-spaced"
	StyleInternationalDashed Style = "international-dashed"
)

// Styles lists every supported Style.
func Styles() []Style {
	return []Style{
		StyleInternational, StyleE164, StyleLocal, StyleBare, StyleRFC3966,
		StyleDashed, StyleSpaced, StyleDotted, StyleParentheses, StyleNational,
		StyleInternationalSpaced, StyleInternationalDashed,
	}
}

// Format renders input in the given style.
func (m *Manager) Format(style Style, input string) (string, error) {
	switch style {
	case StyleInternational:
		return m.FormatInternational(input)
	case StyleE164:
		return m.FormatE164(input)
	case StyleLocal:
		return m.FormatLocal(input)
	case StyleBare:
		return m.FormatBare(input)
	case StyleRFC3966:
		return m.FormatRFC3966(input)
	case StyleDashed:
		return m.FormatDashed(input)
	case StyleSpaced:
		return m.FormatSpaced(input)
	case StyleDotted:
		return m.FormatDotted(input)
	case StyleParentheses:
		return m.FormatParentheses(input)
	case StyleNational:
		return m.FormatNational(input)
	case StyleInternationalSpaced:
		return m.FormatInternationalSpaced(input)
	case StyleInternationalDashed:
		return m.FormatInternationalDashed(input)
	}
	return "", apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("unknown format style %q", style))
}

// FormatInternational returns "+989123456789".
func (m *Manager) FormatInternational(input string) (string, error) {
	digits, err := m.Normalize(input)
	if err != nil {
		return "", err
	}
	return "+" + m.country.CallingCode + digits, nil
}

// FormatE164 is FormatInternational; E.164 has no separators.
func (m *Manager) FormatE164(input string) (string, error) {
	return m.FormatInternational(input)
}

// FormatLocal returns "09123456789".
func (m *Manager) FormatLocal(input string) (string, error) {
	digits, err := m.Normalize(input)
	if err != nil {
		return "", err
	}
	return Trunk + digits, nil
}

// FormatBare returns "9123456789".
func (m *Manager) FormatBare(input string) (string, error) {
	return m.Normalize(input)
}

// FormatRFC3966 returns a tel URI: "tel:+98-912-345-6789".
func (m *Manager) FormatRFC3966(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return "tel:+" + m.country.CallingCode + "-" + p.Prefix + "-" + p.Middle + "-" + p.Last
	})
}

// FormatDashed returns "912-345-6789".
func (m *Manager) FormatDashed(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return p.Prefix + "-" + p.Middle + "-" + p.Last
	})
}

// FormatSpaced returns "912 345 6789".
func (m *Manager) FormatSpaced(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return p.Prefix + " " + p.Middle + " " + p.Last
	})
}

// FormatDotted returns "912.345.6789".
func (m *Manager) FormatDotted(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return p.Prefix + "." + p.Middle + "." + p.Last
	})
}

// FormatParentheses returns "(912) 345-6789".
func (m *Manager) FormatParentheses(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return "(" + p.Prefix + ") " + p.Middle + "-" + p.Last
	})
}

// FormatNational returns "(912) 345 6789".
func (m *Manager) FormatNational(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return "(" + p.Prefix + ") " + p.Middle + " " + p.Last
	})
}

// FormatInternationalSpaced returns "+98 912 345 6789".
func (m *Manager) FormatInternationalSpaced(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return "+" + m.country.CallingCode + " " + p.Prefix + " " + p.Middle + " " + p.Last
	})
}

// FormatInternationalDashed returns "+98-912-345-6789".
func (m *Manager) FormatInternationalDashed(input string) (string, error) {
	return m.splitFormat(input, func(p Parts) string {
		return "+" + m.country.CallingCode + "-" + p.Prefix + "-" + p.Middle + "-" + p.Last
	})
}

func (m *Manager) splitFormat(input string, render func(Parts) string) (string, error) {
	parts, err := m.Split(input)
	if err != nil {
		return "", err
	}
	return render(parts), nil
}
