package statement

import (
	"strconv"
	"strings"

	"github.com/mmynk/videostore/internal/calculator"
)

// Line is one rental as seen by the renderer.
type Line interface {
	calculator.Priced
	Title() string
}

// Render builds the statement for the named customer in format f.
//
// The output is a header, one tab-separated line per rental in the given
// order, the amount owed and the frequent renter points earned. The result
// has no trailing newline.
func Render[L Line](name string, lines []L, f Format) string {
	totals := calculator.Total(lines)

	var b strings.Builder
	b.WriteString(f.Heading.around("Rental Record for " + f.Emphasis.around(name) + "\n"))

	for _, l := range lines {
		b.WriteString("\t" + l.Title() + "\t" + l.Charge().String() + f.LineBreak + "\n")
	}

	b.WriteString(f.Paragraph.around("Amount owed is "+f.Emphasis.around(totals.Charge.String())) + "\n")
	b.WriteString("You earned " + f.Emphasis.around(strconv.Itoa(totals.Points)) + " frequent renter points")

	return b.String()
}
