package phone

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/mroshb/phone_manager/pkg/errors"
	"github.com/mroshb/phone_manager/pkg/operators"
)

const (
	opAlpha   operators.Code = "AAA"
	opBeta    operators.Code = "BBB"
	opShadow  operators.Code = "CCC"
	opNested  operators.Code = "DDD"
	opUnknown operators.Code = "ZZZ"
)

// testCountry overlaps on purpose: CCC repeats AAA's "0999" (declared later,
// so it never wins), BBB and DDD nest longer prefixes inside it.
func testCountry() Country {
	return Country{
		Name:              "Testland",
		Adjective:         "Testish",
		Region:            "IR",
		CallingCode:       "98",
		LeadDigit:         '9',
		Length:            10,
		FallbackPrefixLen: 3,
		Operators: []OperatorPrefixes{
			{Operator: opAlpha, Prefixes: []string{"0912", "0999"}},
			{Operator: opBeta, Prefixes: []string{"09999"}},
			{Operator: opShadow, Prefixes: []string{"0999"}},
			{Operator: opNested, Prefixes: []string{"099991"}},
		},
	}
}

func newTestManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m, err := NewManager(testCountry(), opts...)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Persian digits", input: "۰۹۱۲۳۴۵۶۷۸۹", want: "09123456789"},
		{name: "Arabic-Indic digits", input: "٠٩١٢٣٤٥٦٧٨٩", want: "09123456789"},
		{name: "Separators kept", input: " +۹۸ (۹۱۲) 345-6789\t", want: "+98 (912) 345-6789"},
		{name: "ASCII untouched", input: "abc 123", want: "abc 123"},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewManager_InvalidCountry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Country)
	}{
		{name: "Non numeric calling code", mutate: func(c *Country) { c.CallingCode = "+98" }},
		{name: "Zero lead digit", mutate: func(c *Country) { c.LeadDigit = '0' }},
		{name: "Fallback too long", mutate: func(c *Country) { c.FallbackPrefixLen = 8 }},
		{name: "Prefix without trunk", mutate: func(c *Country) { c.Operators[0].Prefixes[0] = "912" }},
		{name: "Prefix with wrong lead", mutate: func(c *Country) { c.Operators[0].Prefixes[0] = "0812" }},
		{name: "Operator without prefixes", mutate: func(c *Country) { c.Operators[1].Prefixes = nil }},
		{name: "Duplicate operator", mutate: func(c *Country) { c.Operators[1].Operator = opAlpha }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCountry()
			tt.mutate(&c)
			if _, err := NewManager(c); err == nil {
				t.Error("NewManager() expected error, got nil")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Plus country code with spaces", input: "+98 912 345 6789", want: "9123456789"},
		{name: "Double zero country code", input: "00989123456789", want: "9123456789"},
		{name: "Bare country code", input: "989123456789", want: "9123456789"},
		{name: "Country code then trunk", input: "+98 0912 345 6789", want: "9123456789"},
		{name: "Local", input: "09123456789", want: "9123456789"},
		{name: "Already normalised", input: "9123456789", want: "9123456789"},
		{name: "Normalised number starting with country code", input: "9812345678", want: "9812345678"},
		{name: "Persian digits", input: "۰۹۱۲۳۴۵۶۷۸۹", want: "9123456789"},
		{name: "Too short", input: "123", wantErr: true},
		{name: "Too long", input: "091234567890", wantErr: true},
		{name: "Wrong lead digit", input: "08123456789", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Letters only", input: "phone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Normalize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("Normalize(%q) error = %v, want ErrInvalidNumber", tt.input, err)
				}
				if !strings.Contains(err.Error(), "Testish") {
					t.Errorf("error %q does not name the country", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}

			again, err := m.Normalize(got)
			if err != nil || again != got {
				t.Errorf("Normalize(Normalize(%q)) = (%q, %v), want %q", tt.input, again, err, got)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	m := newTestManager(t)
	if !m.IsValid("0912 345 6789") {
		t.Error("IsValid(0912 345 6789) = false, want true")
	}
	if m.IsValid("123") {
		t.Error("IsValid(123) = true, want false")
	}
}

func TestOperator_LongestPrefixWins(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name       string
		input      string
		want       operators.Code
		wantPrefix string
		wantOK     bool
	}{
		{name: "Plain four digit prefix", input: "09123456789", want: opAlpha, wantPrefix: "0912", wantOK: true},
		{name: "Equal prefix goes to first declared", input: "09991234567", want: opAlpha, wantPrefix: "0999", wantOK: true},
		{name: "Five digit prefix beats four", input: "09999234567", want: opBeta, wantPrefix: "09999", wantOK: true},
		{name: "Six digit prefix beats five", input: "09999123456", want: opNested, wantPrefix: "099991", wantOK: true},
		{name: "International input", input: "+98 999 912 3456", want: opNested, wantPrefix: "099991", wantOK: true},
		{name: "Unallocated range", input: "09501234567", wantOK: false},
		{name: "Malformed input", input: "hello", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Operator(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Operator(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
			if m.HasValidPrefix(tt.input) != tt.wantOK {
				t.Errorf("HasValidPrefix(%q) = %v, want %v", tt.input, !tt.wantOK, tt.wantOK)
			}

			prefix, ok := m.Prefix(tt.input, false)
			if ok != tt.wantOK || prefix != tt.wantPrefix {
				t.Errorf("Prefix(%q, false) = (%q, %v), want (%q, %v)", tt.input, prefix, ok, tt.wantPrefix, tt.wantOK)
			}
			if tt.wantOK {
				bare, _ := m.Prefix(tt.input, true)
				if bare != tt.wantPrefix[1:] {
					t.Errorf("Prefix(%q, true) = %q, want %q", tt.input, bare, tt.wantPrefix[1:])
				}
			}
		})
	}
}

func TestSplit(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name    string
		input   string
		want    Parts
		wantErr bool
	}{
		{name: "Four digit prefix", input: "09123456789", want: Parts{Prefix: "912", Middle: "345", Last: "6789"}},
		{name: "Six digit prefix", input: "09999123456", want: Parts{Prefix: "99991", Middle: "234", Last: "56"}},
		{name: "Fallback for unknown range", input: "09501234567", want: Parts{Prefix: "950", Middle: "123", Last: "4567"}},
		{name: "Invalid", input: "123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Split(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Split(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if !tt.wantErr && len(got.Prefix)+len(got.Middle)+len(got.Last) != 10 {
				t.Errorf("Split(%q) parts do not add up to 10 digits", tt.input)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	m := newTestManager(t)
	input := "+98 (912) 345-6789"

	want := map[Style]string{
		StyleInternational:       "+989123456789",
		StyleE164:                "+989123456789",
		StyleLocal:               "09123456789",
		StyleBare:                "9123456789",
		StyleRFC3966:             "tel:+98-912-345-6789",
		StyleDashed:              "912-345-6789",
		StyleSpaced:              "912 345 6789",
		StyleDotted:              "912.345.6789",
		StyleParentheses:         "(912) 345-6789",
		StyleNational:            "(912) 345 6789",
		StyleInternationalSpaced: "+98 912 345 6789",
		StyleInternationalDashed: "+98-912-345-6789",
	}

	for _, style := range Styles() {
		t.Run(string(style), func(t *testing.T) {
			got, err := m.Format(style, input)
			if err != nil {
				t.Fatalf("Format(%s) error = %v", style, err)
			}
			if got != want[style] {
				t.Errorf("Format(%s) = %q, want %q", style, got, want[style])
			}

			// Formatting a formatted number gives the same result.
			again, err := m.Format(style, got)
			if err != nil || again != got {
				t.Errorf("Format(%s, %q) = (%q, %v), want %q", style, got, again, err, got)
			}
		})
	}

	if len(want) != len(Styles()) {
		t.Errorf("Styles() has %d entries, want %d", len(Styles()), len(want))
	}
}

func TestFormat_Errors(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Format("fancy", "09123456789"); err == nil {
		t.Error("Format(fancy) expected error, got nil")
	}
	for _, style := range Styles() {
		if _, err := m.Format(style, "123"); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("Format(%s, 123) error = %v, want ErrInvalidNumber", style, err)
		}
	}
}

func TestRandom_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	pattern := regexp.MustCompile(`^09\d{9}$`)

	for _, op := range []operators.Code{opAlpha, opBeta, opNested} {
		t.Run(string(op), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				number, err := m.Random(op)
				if err != nil {
					t.Fatalf("Random(%s) error = %v", op, err)
				}
				if !pattern.MatchString(number) {
					t.Fatalf("Random(%s) = %q, not a local number", op, number)
				}
				if got, ok := m.Operator(number); !ok || got != op {
					t.Fatalf("Operator(Random(%s) = %q) = %q", op, number, got)
				}
			}
		})
	}
}

func TestRandom_AnyOperator(t *testing.T) {
	m := newTestManager(t)
	for i := 0; i < 200; i++ {
		number, err := m.Random("")
		if err != nil {
			t.Fatalf("Random(\"\") error = %v", err)
		}
		if !m.HasValidPrefix(number) {
			t.Fatalf("Random(\"\") = %q has no operator", number)
		}
	}
}

func TestRandom_AnyOperatorIsUniform(t *testing.T) {
	const (
		wide   operators.Code = "WWW"
		narrow operators.Code = "NNN"
	)
	// Only one in ten of wide's draws escapes narrow's longer prefixes, yet
	// both operators must come out about equally often.
	m, err := NewManager(Country{
		Name:              "Skewland",
		Region:            "IR",
		CallingCode:       "98",
		LeadDigit:         '9',
		Length:            10,
		FallbackPrefixLen: 3,
		Operators: []OperatorPrefixes{
			{Operator: wide, Prefixes: []string{"0950"}},
			{Operator: narrow, Prefixes: []string{"09500", "09501", "09502", "09503", "09504", "09505", "09506", "09507", "09508"}},
		},
	})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	const total = 2000
	counts := make(map[operators.Code]int)
	for i := 0; i < total; i++ {
		number, err := m.Random("")
		if err != nil {
			t.Fatalf("Random(\"\") error = %v", err)
		}
		op, _ := m.Operator(number)
		counts[op]++
	}

	if share := float64(counts[wide]) / total; share < 0.40 || share > 0.60 {
		t.Errorf("share of %s = %.2f (%v), want about 0.50", wide, share, counts)
	}
}

func TestRandom_AnyOperatorSkipsShadowed(t *testing.T) {
	m := newTestManager(t)
	for i := 0; i < 50; i++ {
		number, err := m.Random("")
		if err != nil {
			t.Fatalf("Random(\"\") error = %v", err)
		}
		if op, _ := m.Operator(number); op == opShadow {
			t.Fatalf("Random(\"\") = %q resolved to shadowed %s", number, opShadow)
		}
	}
}

func TestRandom_Errors(t *testing.T) {
	t.Run("Unknown operator", func(t *testing.T) {
		_, err := newTestManager(t).Random(opUnknown)
		if !errors.Is(err, ErrUnknownOperator) {
			t.Errorf("Random(%s) error = %v, want ErrUnknownOperator", opUnknown, err)
		}
	})

	t.Run("Fully shadowed operator", func(t *testing.T) {
		_, err := newTestManager(t).Random(opShadow)
		if !errors.Is(err, apperrors.New(apperrors.ErrCodeInternalError, "")) {
			t.Errorf("Random(%s) error = %v, want internal error", opShadow, err)
		}
	})

	t.Run("Exhausted entropy", func(t *testing.T) {
		m := newTestManager(t, WithRandReader(bytes.NewReader(nil)))
		if _, err := m.Random(opAlpha); err == nil {
			t.Error("Random() expected error from empty reader, got nil")
		}
		if _, err := m.Random(""); err == nil {
			t.Error("Random(\"\") expected error from empty reader, got nil")
		}
	})
}

func TestReadOnlyAccessors(t *testing.T) {
	m := newTestManager(t)

	prefixes, ok := m.Prefixes(opAlpha)
	if !ok || len(prefixes) != 2 {
		t.Fatalf("Prefixes(%s) = (%v, %v)", opAlpha, prefixes, ok)
	}
	prefixes[0] = "0000"
	if again, _ := m.Prefixes(opAlpha); again[0] != "0912" {
		t.Error("Prefixes() exposed the internal table")
	}

	c := m.Country()
	c.Operators[0].Prefixes[0] = "0000"
	if op, _ := m.Operator("09123456789"); op != opAlpha {
		t.Error("Country() exposed the internal table")
	}

	if got := m.Operators(); len(got) != 4 || got[0] != opAlpha {
		t.Errorf("Operators() = %v", got)
	}
	if m.CountryCode() != "98" {
		t.Errorf("CountryCode() = %q, want 98", m.CountryCode())
	}
	if _, ok := m.Prefixes(opUnknown); ok {
		t.Errorf("Prefixes(%s) found, want missing", opUnknown)
	}
}

func TestRegisterValidation(t *testing.T) {
	m := newTestManager(t)
	v := validator.New()
	if err := m.RegisterValidation(v, "test_mobile"); err != nil {
		t.Fatalf("RegisterValidation() error = %v", err)
	}

	type signup struct {
		Mobile   string `validate:"test_mobile"`
		Optional string `validate:"omitempty,test_mobile"`
	}

	tests := []struct {
		name    string
		in      signup
		wantErr bool
	}{
		{name: "Valid", in: signup{Mobile: "0912 345 6789"}},
		{name: "Valid optional", in: signup{Mobile: "09123456789", Optional: "+989123456789"}},
		{name: "Invalid", in: signup{Mobile: "12345"}, wantErr: true},
		{name: "Invalid optional", in: signup{Mobile: "09123456789", Optional: "12"}, wantErr: true},
		{name: "Empty", in: signup{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
