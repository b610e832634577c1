// Package phone implements the shared engine behind the country packages:
// sanitising, normalising, operator resolution by longest prefix, splitting,
// formatting and random number generation. A Manager is built once per
// country from a static Country table and is safe for concurrent use.
package phone

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	apperrors "github.com/mroshb/phone_manager/pkg/errors"
	"github.com/mroshb/phone_manager/pkg/operators"
)

// Trunk is the domestic trunk digit preceding a national number.
const Trunk = "0"

var (
	// ErrInvalidNumber matches (via errors.Is) every normalisation failure.
	ErrInvalidNumber = apperrors.New(apperrors.ErrCodeInvalidNumber, "invalid mobile number")
	// ErrUnknownOperator matches a random request for an operator missing
	// from the prefix table.
	ErrUnknownOperator = apperrors.New(apperrors.ErrCodeUnknownOperator, "unknown operator")
)

// OperatorPrefixes lists the prefixes (trunk zero included) of one operator.
type OperatorPrefixes struct {
	Operator operators.Code
	Prefixes []string
}

// Country is the static description of one numbering plan.
type Country struct {
	Name        string // registry name, e.g. "Iran"
	Adjective   string // used in error messages, e.g. "Iranian"
	Region      string // ISO 3166-1 alpha-2, e.g. "IR"
	CallingCode string // without "+", e.g. "98"
	LeadDigit   byte   // first digit of a normalised number
	Length      int    // digits in a normalised number, lead digit included

	// FallbackPrefixLen is the bare prefix length Split uses when no
	// operator prefix matches.
	FallbackPrefixLen int

	// Operators is ordered: on equal prefixes the first operator wins.
	Operators []OperatorPrefixes
}

// Manager applies a Country table.
type Manager struct {
	country Country
	pattern *regexp.Regexp
	rand    io.Reader

	indexOnce sync.Once
	index     *prefixIndex
}

// Option configures a Manager.
type Option func(*Manager)

// WithRandReader replaces crypto/rand as the entropy source of Random.
func WithRandReader(r io.Reader) Option {
	return func(m *Manager) {
		m.rand = r
	}
}

// NewManager validates c and returns a Manager for it.
func NewManager(c Country, opts ...Option) (*Manager, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		country: c,
		pattern: regexp.MustCompile(fmt.Sprintf(`^%c\d{%d}$`, c.LeadDigit, c.Length-1)),
		rand:    rand.Reader,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MustManager is NewManager for package-level tables; it panics on a
// malformed Country.
func MustManager(c Country, opts ...Option) *Manager {
	m, err := NewManager(c, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (c Country) validate() error {
	if c.CallingCode == "" || strings.Trim(c.CallingCode, "0123456789") != "" {
		return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: calling code %q is not numeric", c.Name, c.CallingCode))
	}
	if c.LeadDigit < '1' || c.LeadDigit > '9' {
		return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: lead digit must be 1-9", c.Name))
	}
	if c.Length < 2 {
		return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: length must be at least 2", c.Name))
	}
	if c.FallbackPrefixLen < 1 || c.FallbackPrefixLen > c.Length-3 {
		return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: fallback prefix length out of range", c.Name))
	}

	seen := make(map[operators.Code]bool, len(c.Operators))
	lead := Trunk + string(c.LeadDigit)
	for _, op := range c.Operators {
		if seen[op.Operator] {
			return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: operator %s declared twice", c.Name, op.Operator))
		}
		seen[op.Operator] = true
		if len(op.Prefixes) == 0 {
			return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: operator %s has no prefixes", c.Name, op.Operator))
		}
		for _, p := range op.Prefixes {
			if !strings.HasPrefix(p, lead) || len(p) > c.Length || strings.Trim(p, "0123456789") != "" {
				return apperrors.New(apperrors.ErrCodeValidation, fmt.Sprintf("%s: bad prefix %q for %s", c.Name, p, op.Operator))
			}
		}
	}
	return nil
}

// Country returns a copy of the table the Manager was built from.
func (m *Manager) Country() Country {
	c := m.country
	c.Operators = make([]OperatorPrefixes, len(m.country.Operators))
	for i, op := range m.country.Operators {
		c.Operators[i] = OperatorPrefixes{
			Operator: op.Operator,
			Prefixes: append([]string(nil), op.Prefixes...),
		}
	}
	return c
}

// CountryCode returns the calling code without "+".
func (m *Manager) CountryCode() string {
	return m.country.CallingCode
}

// Operators returns the operators present in the prefix table, in
// declaration order.
func (m *Manager) Operators() []operators.Code {
	codes := make([]operators.Code, len(m.country.Operators))
	for i, op := range m.country.Operators {
		codes[i] = op.Operator
	}
	return codes
}

// Prefixes returns a copy of op's prefixes, trunk zero included.
func (m *Manager) Prefixes(op operators.Code) ([]string, bool) {
	for _, entry := range m.country.Operators {
		if entry.Operator == op {
			return append([]string(nil), entry.Prefixes...), true
		}
	}
	return nil, false
}
