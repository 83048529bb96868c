// Package twips converts length literals to and from twips, the
// fixed-point unit used for all document geometry (1/20 point, 1440
// per inch).
package twips

import (
	"math"
	"strconv"
	"strings"

	"github.com/xavi-mat/simplertf/core/errors"
)

// Conversion ratios between twips and physical units.
const (
	CmToTwips   = 566.929133858
	InchToTwips = 1440
)

// Unset is the sentinel returned by ParseLength for an empty literal.
// Callers treat it as "keep the current value".
const Unset = -1

// ParseLength parses a length literal into twips.
//
// Accepted forms:
//   - ""          -> Unset
//   - "567"       -> 567 (already twips)
//   - "<number>cm", "<number>mm", "<number>in" -> converted, rounded
//     to the nearest twip
//
// Any other suffix or a non-numeric body returns a *errors.ParseError.
func ParseLength(s string) (int, error) {
	if s == "" {
		return Unset, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	var ratio float64
	var body string
	switch {
	case strings.HasSuffix(s, "cm"):
		ratio = CmToTwips
		body = s[:len(s)-2]
	case strings.HasSuffix(s, "mm"):
		ratio = CmToTwips / 10
		body = s[:len(s)-2]
	case strings.HasSuffix(s, "in"):
		ratio = InchToTwips
		body = s[:len(s)-2]
	default:
		return 0, errors.NewParse(s, "unrecognized length unit (want twips, cm, mm, or in)")
	}

	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, &errors.ParseError{Input: s, Message: "non-numeric length value", Err: err}
	}

	return int(math.Round(v * ratio)), nil
}

// ToCm converts twips to centimeters.
func ToCm(tw int) float64 {
	return float64(tw) / CmToTwips
}

// ToInches converts twips to inches.
func ToInches(tw int) float64 {
	return float64(tw) / InchToTwips
}
