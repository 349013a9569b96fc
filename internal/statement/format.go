// Package statement renders a customer's rentals as a statement.
//
// Every output format goes through the same Render routine; a Format only
// supplies the literal tokens wrapped around the header, the emphasized
// values, the amount line and each rental line.
package statement

// Wrap is a pair of tokens placed around a piece of text.
type Wrap struct {
	Open  string
	Close string
}

func (w Wrap) around(s string) string {
	return w.Open + s + w.Close
}

// Format is the set of tokens that distinguishes one statement format from
// another.
type Format struct {
	// Name identifies the format in configuration and metrics.
	Name string

	// Heading wraps the header line, including its newline.
	Heading Wrap

	// Emphasis wraps the customer name and the two totals.
	Emphasis Wrap

	// Paragraph wraps the amount owed line, excluding its newline.
	Paragraph Wrap

	// LineBreak is appended to each rental line before its newline.
	LineBreak string
}

// Plain is the plain text format.
var Plain = Format{Name: "plain"}

// Markup is the HTML format.
var Markup = Format{
	Name:      "markup",
	Heading:   Wrap{Open: "<h1>", Close: "</h1>\n"},
	Emphasis:  Wrap{Open: "<em>", Close: "</em>"},
	Paragraph: Wrap{Open: "<p>", Close: "</p>"},
	LineBreak: "<br />",
}

// Formats lists the built-in formats by name.
var Formats = map[string]Format{
	Plain.Name:  Plain,
	Markup.Name: Markup,
}

// Lookup returns the built-in format with the given name.
func Lookup(name string) (Format, bool) {
	f, ok := Formats[name]
	return f, ok
}
