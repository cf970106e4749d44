// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits kept before trailing
// zeros are stripped.
const DefaultPrecision = 6

// DefaultFormatter formats with DefaultPrecision.
var DefaultFormatter = Formatter{Precision: DefaultPrecision}

// Formatter renders conversion results with a bounded number of fractional
// digits. A Precision of zero or less falls back to DefaultPrecision.
type Formatter struct {
	Precision int
}

// Format renders v with f.Precision fractional digits, then strips trailing
// zeros and a trailing decimal point: 5.000000 becomes "5", 1.609340
// becomes "1.60934". Negative zero renders as "0".
func (f Formatter) Format(v float64) string {
	p := f.Precision
	if p <= 0 {
		p = DefaultPrecision
	}
	s := strconv.FormatFloat(v, 'f', p, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Format renders v with the default precision.
func Format(v float64) string {
	return DefaultFormatter.Format(v)
}
