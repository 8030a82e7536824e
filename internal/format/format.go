// Package format renders final answers with locale-aware digit grouping and
// decimal separators. The evaluation core always returns a raw float64; only
// the presentation layer goes through this package.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats numbers for one locale.
type Formatter struct {
	printer   *message.Printer
	precision int
}

// New creates a Formatter for the given BCP 47 locale tag. A precision of -1
// keeps the shortest representation; zero or more fixes the fraction digits.
func New(locale string, precision int) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return &Formatter{
		printer:   message.NewPrinter(tag),
		precision: precision,
	}, nil
}

// Number renders v using the formatter's locale and precision.
func (f *Formatter) Number(v float64) string {
	if f.precision >= 0 {
		return f.printer.Sprint(number.Decimal(v, number.Scale(f.precision)))
	}
	return f.printer.Sprint(number.Decimal(v))
}
