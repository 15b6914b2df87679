package words

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("empty input")
	// ErrNegative is returned for input with a leading minus sign.
	ErrNegative = errors.New("negative numbers are not supported")
	// ErrNotNumber is returned for anything that is not plain decimal digits.
	ErrNotNumber = errors.New("not a whole decimal number")
	// ErrOutOfRange is returned when the value does not fit the integer width.
	ErrOutOfRange = errors.New("number out of range")
)

// Max returns the largest value accepted for the given width. Any width
// other than 32 is treated as 64.
func Max(bits int) uint64 {
	if bits == 32 {
		return math.MaxUint32
	}
	return math.MaxUint64
}

// Parse reads a plain decimal unsigned integer from text. Surrounding
// whitespace and a single leading '+' are allowed; digit separators are not.
// The value must fit in an unsigned integer of the given width (32 or 64).
// Returned errors wrap one of the package's sentinel errors.
func Parse(text string, bits int) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrEmpty
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok && isDigits(rest) {
		return 0, fmt.Errorf("%w: %q", ErrNegative, s)
	}

	digits := strings.TrimPrefix(s, "+")
	if !isDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}

	if bits != 32 {
		bits = 64
	}
	n, err := strconv.ParseUint(digits, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is larger than %d", ErrOutOfRange, s, Max(bits))
		}
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return n, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	return s != "" && strings.IndexFunc(s, isNotDigit) < 0
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}
