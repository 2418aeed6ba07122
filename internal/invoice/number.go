package invoice

import (
	"fmt"
	"regexp"
	"strconv"
)

var lastDigitRun = regexp.MustCompile(`^(.*?)(\d+)(\D*)$`)

// NextNumber increments the last contiguous digit run of an invoice
// number, zero-padded to its original width, preserving any prefix and
// suffix text verbatim. A number with no digits gets a literal "-001"
// suffix. The operation is total: it never fails.
func NextNumber(current string) string {
	m := lastDigitRun.FindStringSubmatch(current)
	if m == nil {
		return current + "-001"
	}
	prefix, digits, suffix := m[1], m[2], m[3]
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Digit run too long for an int; leave it untouched.
		return current
	}
	return fmt.Sprintf("%s%0*d%s", prefix, len(digits), n+1, suffix)
}
