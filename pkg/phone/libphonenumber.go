package phone

import (
	"github.com/nyaruka/phonenumbers"

	apperrors "github.com/mroshb/phone_manager/pkg/errors"
)

// LibPhoneNumber parses input with libphonenumber after normalising it, for
// callers that already work with *phonenumbers.PhoneNumber.
func (m *Manager) LibPhoneNumber(input string) (*phonenumbers.PhoneNumber, error) {
	digits, err := m.Normalize(input)
	if err != nil {
		return nil, err
	}

	num, err := phonenumbers.Parse("+"+m.country.CallingCode+digits, m.country.Region)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidNumber, "libphonenumber rejected number")
	}
	return num, nil
}

// CrossCheck reports whether libphonenumber also considers input a valid
// mobile number of this country. Its metadata lags operator allocations, so
// a false here on a number with a known prefix is not an error.
func (m *Manager) CrossCheck(input string) bool {
	num, err := m.LibPhoneNumber(input)
	if err != nil {
		return false
	}
	if !phonenumbers.IsValidNumberForRegion(num, m.country.Region) {
		return false
	}
	switch phonenumbers.GetNumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE:
		return true
	}
	return false
}
