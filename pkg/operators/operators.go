// Package operators holds the registry of mobile operators known to the
// country packages. Codes are short, stable identifiers such as "MCI".
package operators

// Code identifies a mobile operator.
type Code string

// Kind tells a network operator apart from a virtual one.
type Kind string

const (
	KindMNO  Kind = "MNO"
	KindMVNO Kind = "MVNO"
)

// Country names as used by the registry.
const (
	CountryIran        = "Iran"
	CountryAfghanistan = "Afghanistan"
)

// Iranian operators
const (
	HamraheAval   Code = "MCI"
	Irancell      Code = "IRN"
	Rightel       Code = "RTL"
	Shatel        Code = "SHT"
	Azartakht     Code = "AZR"
	Samantel      Code = "SMT"
	Aptel         Code = "APT"
	Taliya        Code = "TLY"
	LotusTel      Code = "LTS"
	Anarestan     Code = "ANR"
	AzartakhtMVNO Code = "AZM"
	SamantelMVNO  Code = "SMM"
)

// Afghan operators
const (
	Roshan    Code = "RSH"
	MTN       Code = "MTN"
	Etisalat  Code = "ETL"
	Salam     Code = "SLM"
	AfghanTel Code = "AFT"
	Wasel     Code = "WSL"
)

// Info describes a registered operator.
type Info struct {
	Code    Code
	Name    string
	Kind    Kind
	Country string
}

var registry = []Info{
	{Code: HamraheAval, Name: "Hamrah-e Aval", Kind: KindMNO, Country: CountryIran},
	{Code: Irancell, Name: "Irancell", Kind: KindMNO, Country: CountryIran},
	{Code: Rightel, Name: "Rightel", Kind: KindMNO, Country: CountryIran},
	{Code: Shatel, Name: "Shatel Mobile", Kind: KindMNO, Country: CountryIran},
	{Code: Azartakht, Name: "Azartakht", Kind: KindMNO, Country: CountryIran},
	{Code: Samantel, Name: "Samantel", Kind: KindMNO, Country: CountryIran},
	{Code: Aptel, Name: "Aptel", Kind: KindMNO, Country: CountryIran},
	{Code: Taliya, Name: "Taliya", Kind: KindMVNO, Country: CountryIran},
	{Code: LotusTel, Name: "LotusTel", Kind: KindMVNO, Country: CountryIran},
	{Code: Anarestan, Name: "Anarestan", Kind: KindMVNO, Country: CountryIran},
	{Code: AzartakhtMVNO, Name: "Azartakht MVNO", Kind: KindMVNO, Country: CountryIran},
	{Code: SamantelMVNO, Name: "Samantel MVNO", Kind: KindMVNO, Country: CountryIran},

	{Code: Roshan, Name: "Roshan", Kind: KindMNO, Country: CountryAfghanistan},
	{Code: MTN, Name: "MTN Afghanistan", Kind: KindMNO, Country: CountryAfghanistan},
	{Code: Etisalat, Name: "Etisalat Afghanistan", Kind: KindMNO, Country: CountryAfghanistan},
	{Code: Salam, Name: "Salam Telecom", Kind: KindMNO, Country: CountryAfghanistan},
	{Code: AfghanTel, Name: "Afghan Telecom", Kind: KindMNO, Country: CountryAfghanistan},
	{Code: Wasel, Name: "Wasel Telecom", Kind: KindMNO, Country: CountryAfghanistan},
}

// Lookup returns the registry entry for code.
func Lookup(code Code) (Info, bool) {
	for _, info := range registry {
		if info.Code == code {
			return info, true
		}
	}
	return Info{}, false
}

// All returns every operator of country in registry order.
func All(country string) []Code {
	return filter(country, "")
}

// MNOs returns the network operators of country.
func MNOs(country string) []Code {
	return filter(country, KindMNO)
}

// MVNOs returns the virtual operators of country.
func MVNOs(country string) []Code {
	return filter(country, KindMVNO)
}

func filter(country string, kind Kind) []Code {
	var codes []Code
	for _, info := range registry {
		if info.Country != country {
			continue
		}
		if kind != "" && info.Kind != kind {
			continue
		}
		codes = append(codes, info.Code)
	}
	return codes
}
