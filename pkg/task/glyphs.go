package task

// Glyph describes one marker of the rendered-text grammar for the key
// legend and the UI help screen.
type Glyph struct {
	Marker  string
	Meaning string
	Key     string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)

	g = append(g, Glyph{
		Marker:  "[ ]",
		Meaning: "task inactive",
		Key:     "x",
	}, Glyph{
		Marker:  "[~]",
		Meaning: "task in progress",
		Key:     "x",
	}, Glyph{
		Marker:  "[x]",
		Meaning: "task completed",
		Key:     "x",
	}, Glyph{
		Marker:  "[*]",
		Meaning: "task completed",
		Key:     "x",
	}, Glyph{
		Marker:  "* ",
		Meaning: "section header",
		Key:     "",
	})

	return g
}

func (g Glyph) String() string {
	return g.Marker
}
