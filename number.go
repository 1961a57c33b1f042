package xpath

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses s according to the XPath numeric lexical grammar:
// optional surrounding whitespace, an optional minus sign, and either
// digits with an optional fraction or a fraction alone ("12", "12.",
// "12.5", ".5"). Anything else yields NaN; parsing is total and never
// an error.
func ParseNumber(s string) float64 {
	s = strings.Trim(s, " \t\r\n")
	if !numberLexical(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// numberLexical reports whether s matches '-'? (Digits ('.' Digits?)? | '.' Digits).
// Notably no exponent, no '+', no "Inf"/"NaN" spellings.
func numberLexical(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	if dot == -1 {
		return digits(s)
	}
	intPart, frac := s[:dot], s[dot+1:]
	if intPart == "" {
		return digits(frac)
	}
	return digits(intPart) && (frac == "" || digits(frac))
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatNumber renders f in the canonical XPath surface form: "NaN",
// "Infinity"/"-Infinity", "0" for either signed zero, integers without
// a decimal point, and shortest-decimal notation otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers -0 as well
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
