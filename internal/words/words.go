package words

import "strings"

var ones = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// scales is indexed by the position of a three-digit group, least
// significant first. Seven groups cover the whole uint64 range.
var scales = [...]string{
	"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
}

// Options controls the wording style of Convert.
type Options struct {
	// UseAnd inserts "and" after "hundred" and before a trailing group below
	// one hundred, as in British English ("one thousand and five").
	UseAnd bool
	// Hyphenate joins compound tens with a hyphen ("twenty-three") instead
	// of a space.
	Hyphenate bool
}

// DefaultOptions returns the American style: no "and", hyphenated tens.
func DefaultOptions() Options {
	return Options{Hyphenate: true}
}

// Convert returns the English words for n. The result is never empty, is
// lower case, and uses single spaces between words. Zero is "zero".
func Convert(n uint64, opts Options) string {
	if n == 0 {
		return ones[0]
	}

	var groups []uint64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	parts := make([]string, 0, 4*len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if opts.UseAnd && i == 0 && g < 100 && len(parts) > 0 {
			parts = append(parts, "and")
		}
		parts = appendGroup(parts, g, opts)
		if scales[i] != "" {
			parts = append(parts, scales[i])
		}
	}

	return strings.Join(parts, " ")
}

// Count returns the number of space-separated words in text produced by
// Convert. Hyphenated compounds count as one word.
func Count(text string) int {
	return len(strings.Fields(text))
}

// appendGroup spells a single group in the range 1-999.
func appendGroup(parts []string, g uint64, opts Options) []string {
	hasHundreds := g >= 100
	if hasHundreds {
		parts = append(parts, ones[g/100], "hundred")
	}

	r := g % 100
	if r == 0 {
		return parts
	}
	if hasHundreds && opts.UseAnd {
		parts = append(parts, "and")
	}

	if r < 20 {
		return append(parts, ones[r])
	}
	t, u := tens[r/10], r%10
	switch {
	case u == 0:
		return append(parts, t)
	case opts.Hyphenate:
		return append(parts, t+"-"+ones[u])
	default:
		return append(parts, t, ones[u])
	}
}
