package phone

import (
	"fmt"
	"strings"

	apperrors "github.com/mroshb/phone_manager/pkg/errors"
)

// digitReplacer converts Extended Arabic-Indic (Persian) and Arabic-Indic
// digits to ASCII.
var digitReplacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4", "۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4", "٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// Sanitize trims surrounding whitespace and converts localized digits to
// ASCII. Every other character is left in place.
func Sanitize(input string) string {
	return digitReplacer.Replace(strings.TrimSpace(input))
}

func onlyDigits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// Sanitize calls the package-level Sanitize.
func (m *Manager) Sanitize(input string) string {
	return Sanitize(input)
}

// Normalize reduces input to the national significant number: no country
// code, no trunk zero. "+98 912 345 6789" becomes "9123456789".
func (m *Manager) Normalize(input string) (string, error) {
	digits := onlyDigits(Sanitize(input))

	cc := m.country.CallingCode
	switch {
	case strings.HasPrefix(digits, "00"+cc):
		digits = digits[len(cc)+2:]
	case strings.HasPrefix(digits, cc) && len(digits) > m.country.Length:
		// The length guard keeps an already normalised number that happens
		// to start with the calling code (e.g. Iranian 98x...) intact.
		digits = digits[len(cc):]
	}
	digits = strings.TrimPrefix(digits, Trunk)

	if !m.pattern.MatchString(digits) {
		return "", apperrors.New(apperrors.ErrCodeInvalidNumber, fmt.Sprintf("invalid %s mobile number", m.country.Adjective))
	}
	return digits, nil
}

// IsValid reports whether input normalises.
func (m *Manager) IsValid(input string) bool {
	_, err := m.Normalize(input)
	return err == nil
}
