package mei

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/carspec"
)

var (
	thousandDotRe  = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
	singleCommaRe  = regexp.MustCompile(`^(\d+),(\d+)$`)
	multiCommaRe   = regexp.MustCompile(`^\d+(,\d{1,3})+$`)
	plainDecimalRe = regexp.MustCompile(`^\d+\.\d+$`)
	plainIntegerRe = regexp.MustCompile(`^\d+$`)
)

// Number is a parsed numeric token. It holds either an integer or a real.
type Number struct {
	i       int64
	f       float64
	integer bool
}

// Int returns an integer Number.
func Int(i int64) Number { return Number{i: i, f: float64(i), integer: true} }

// Real returns a real Number.
func Real(f float64) Number { return Number{i: int64(f), f: f} }

// IsInt reports whether the token was read as an integer.
func (n Number) IsInt() bool { return n.integer }

// Int64 returns the value, truncating reals toward zero.
func (n Number) Int64() int64 { return n.i }

// Float64 returns the value as a float.
func (n Number) Float64() float64 { return n.f }

func (n Number) String() string {
	if n.integer {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// ParseNumber reads a number written in one of the conventions the site
// mixes. The first matching rule wins:
//
//  1. thousand-dot groups ("42.486.000") are an integer
//  2. comma without dot: "68,200" (three digits after the only comma) is an
//     integer, "42,2" is a decimal comma, and several commas whose groups
//     after the first have at most three digits ("1,234,567") are an integer
//  3. "123.45" is a decimal
//  4. "307" is an integer
//
// Anything else returns a *carspec.FormatError.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)

	if thousandDotRe.MatchString(s) {
		return parseInt(s, strings.ReplaceAll(s, ".", ""))
	}

	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		if m := singleCommaRe.FindStringSubmatch(s); m != nil {
			if len(m[2]) == 3 {
				return parseInt(s, m[1]+m[2])
			}
			return parseReal(s, m[1]+"."+m[2])
		}
		if multiCommaRe.MatchString(s) {
			return parseInt(s, strings.ReplaceAll(s, ",", ""))
		}
	}

	if plainDecimalRe.MatchString(s) {
		return parseReal(s, s)
	}

	if plainIntegerRe.MatchString(s) {
		return parseInt(s, s)
	}

	return Number{}, &carspec.FormatError{Input: s}
}

func parseInt(orig, digits string) (Number, error) {
	i, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Number{}, &carspec.FormatError{Input: orig}
	}
	return Int(i), nil
}

func parseReal(orig, decimal string) (Number, error) {
	f, err := strconv.ParseFloat(decimal, 64)
	if err != nil {
		return Number{}, &carspec.FormatError{Input: orig}
	}
	return Real(f), nil
}
