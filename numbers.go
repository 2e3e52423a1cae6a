package drawablegen

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// scanNumbers tokenizes a whitespace- or comma-separated list of
// numbers, returning each number as written in the source. Tokens that
// are not numbers are skipped.
func scanNumbers(name, s string) []string {
	l, _ := gl.Lex(name, s)

	var nums []string
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS, gl.ItemError:
			return nums
		case gl.ItemNumber:
			nums = append(nums, i.Value)
		}
	}
}

// parseFloat reads a numeric attribute, treating the empty string as
// zero.
func parseFloat(tag, attr, val string) (float64, error) {
	if val == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: attribute %q is not a number: %q", tag, attr, val)
	}
	return f, nil
}

// ftoa formats a coordinate the shortest way that round-trips, without
// switching to exponent notation.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// orZero substitutes the default for an absent numeric attribute kept
// as text.
func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
