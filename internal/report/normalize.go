package report

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	domainSuffix    = regexp.MustCompile(`(\.com\.co|\.com|\.co)`)
	// Spaces are kept as in ECMAScript \s, which also matches Unicode spaces and BOM.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s\p{Z}\x{FEFF}]`)
)

// brandRules are checked in order, first rule with matching fragment wins.
var brandRules = []struct {
	fragments []string
	key       string
}{
	{fragments: []string{"mercado libre", "mercadolibre"}, key: "mercadolibre"},
	{fragments: []string{"exito"}, key: "exito"},
	{fragments: []string{"carulla"}, key: "carulla"},
	{fragments: []string{"olimpica"}, key: "olimpica"},
	{fragments: []string{"jumbo"}, key: "jumbo"},
	{fragments: []string{"alkosto"}, key: "alkosto"},
	{fragments: []string{"falabella"}, key: "falabella"},
	{fragments: []string{"rappi"}, key: "rappi"},
}

var prettyNames = map[string]string{
	"mercadolibre": "Mercado Libre",
	"exito":        "Éxito",
	"carulla":      "Carulla",
	"olimpica":     "Olímpica",
	"jumbo":        "Jumbo",
	"alkosto":      "Alkosto",
	"falabella":    "Falabella",
	"rappi":        "Rappi",
}

// NormalizeStoreName returns canonical key of raw store name.
// Store names differing only by accents, casing, punctuation or domain suffix share the key,
// known brands are recognized anywhere in the name.
func NormalizeStoreName(raw string) string {
	if raw == "" {
		return ""
	}

	clean := stripAccents(strings.ToLower(raw))
	clean = domainSuffix.ReplaceAllString(clean, "")
	clean = nonAlphanumeric.ReplaceAllString(clean, " ")
	clean = strings.TrimFunc(clean, isSpace)

	for _, rule := range brandRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(clean, fragment) {
				return rule.key
			}
		}
	}

	return clean
}

// FormatStoreName returns display name of raw store name.
func FormatStoreName(raw string) string {
	key := NormalizeStoreName(raw)
	if pretty, ok := prettyNames[key]; ok {
		return pretty
	}

	return upperFirst(key)
}

// stripAccents removes combining marks left after canonical decomposition.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return stripped
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || r == '\uFEFF'
}
