package core

import "strings"

// Element kinds produced by the upstream deck parser. Kinds not listed
// here (charts, shapes, connectors) pass through enrichment untouched.
const (
	ElementTextbox = "textbox"
	ElementPicture = "picture"
	ElementTable   = "table"
)

// Deck is a parsed slide-deck document. The enrichment pipeline never
// changes its structure; it only annotates picture and table elements.
type Deck struct {
	Slides []Slide `json:"slides"`
}

// Slide holds the ordered elements of one slide. Index is the stable
// zero-based slide position assigned by the parser and is the key under
// which captions are aggregated.
type Slide struct {
	Index    int       `json:"index"`
	Elements []Element `json:"elements"`
}

// Element is a typed unit inside a slide. The upstream parser emits a
// single JSON shape for all kinds, discriminated by Type, so the struct
// carries the union of fields; only the fields matching Type are
// meaningful.
type Element struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`

	// Textbox content.
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`

	// Picture fields. Path is archive-relative and may be blank when the
	// upstream extraction failed; Caption is populated by enrichment.
	Path    string `json:"path,omitempty"`
	Caption string `json:"description,omitempty"`

	// Table fields. Rows and Cols are the declared dimensions and may
	// exceed the actual grid; Summary is populated by enrichment.
	Rows    int      `json:"rows,omitempty"`
	Cols    int      `json:"cols,omitempty"`
	Name    string   `json:"name,omitempty"`
	Cells   [][]Cell `json:"cells,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// Cell is one table cell, holding an ordered sequence of paragraphs.
type Cell struct {
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
}

// Paragraph holds one run of plain text.
type Paragraph struct {
	Text string `json:"text"`
}

// Text returns the cell's plain text: paragraph texts trimmed and joined
// by single spaces. Blank paragraphs are dropped.
func (c *Cell) Text() string {
	var parts []string
	for _, p := range c.Paragraphs {
		if t := strings.TrimSpace(p.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
