package planner

// Mode selects the extraction and rewrite rules of a run.
type Mode string

const (
	// ModeMarkdown migrates relative Markdown images to figure tags.
	ModeMarkdown Mode = "markdown"

	// ModeInbox relocates files referenced under the inbox prefix.
	ModeInbox Mode = "inbox"
)

// Plan is the complete, ordered migration plan of one run.
type Plan struct {
	// Mode is the planning mode
	Mode Mode `json:"mode"`

	// Component is the figure component (Markdown mode only)
	Component string `json:"component,omitempty"`

	// Moves is the ordered list of planned relocations and rewrites
	Moves []MovePlan `json:"moves"`

	// Missing lists references whose source file does not exist (inbox mode)
	Missing []Missing `json:"missing"`

	// Skipped lists references left for manual handling
	Skipped []Skipped `json:"skipped"`

	// Warnings are non-fatal notes about documents
	Warnings []string `json:"warnings"`
}

// MovePlan is one resolved migration unit.
type MovePlan struct {
	// Document is the absolute path of the owning document
	Document string `json:"-"`

	// DocumentRel is the document path relative to the content root
	DocumentRel string `json:"document"`

	// Source is the absolute path of the file to move
	Source string `json:"source"`

	// Destination is the absolute path the file moves to
	Destination string `json:"destination"`

	// DestinationWeb is Destination as a site-root web path
	DestinationWeb string `json:"destinationWeb"`

	// Match is the text to replace in the document
	Match string `json:"match"`

	// Replacement is the text substituted for every occurrence of Match
	Replacement string `json:"replacement"`

	// Shared is true when the file is already relocated by an earlier plan
	// (or already sits at its destination); only the text is rewritten.
	Shared bool `json:"shared,omitempty"`
}

// Missing is a reference whose source file could not be found.
type Missing struct {
	DocumentRel string `json:"document"`
	Reference   string `json:"reference"`
}

// Skipped is a reference that was not planned.
type Skipped struct {
	DocumentRel string `json:"document"`
	Reference   string `json:"reference"`
	Reason      string `json:"reason"`
}

// DocumentMoves groups the moves of one document.
type DocumentMoves struct {
	Document    string
	DocumentRel string
	Moves       []MovePlan
}

// NewPlan creates a new empty Plan.
func NewPlan(mode Mode, component string) *Plan {
	return &Plan{
		Mode:      mode,
		Component: component,
		Moves:     []MovePlan{},
		Missing:   []Missing{},
		Skipped:   []Skipped{},
		Warnings:  []string{},
	}
}

// HasMissing returns true if any reference could not be resolved.
func (p *Plan) HasMissing() bool {
	return len(p.Missing) > 0
}

// AddMove adds a move to the plan.
func (p *Plan) AddMove(m MovePlan) {
	p.Moves = append(p.Moves, m)
}

// AddMissing records an unresolvable reference.
func (p *Plan) AddMissing(m Missing) {
	p.Missing = append(p.Missing, m)
}

// AddSkipped records a reference left for manual handling.
func (p *Plan) AddSkipped(s Skipped) {
	p.Skipped = append(p.Skipped, s)
}

// AddWarning records a non-fatal note.
func (p *Plan) AddWarning(w string) {
	p.Warnings = append(p.Warnings, w)
}

// FileMoves returns the number of moves that relocate a file.
func (p *Plan) FileMoves() int {
	n := 0
	for _, m := range p.Moves {
		if !m.Shared {
			n++
		}
	}
	return n
}

// Documents groups moves by document, in order of first appearance.
func (p *Plan) Documents() []DocumentMoves {
	index := make(map[string]int)
	var groups []DocumentMoves
	for _, m := range p.Moves {
		i, ok := index[m.Document]
		if !ok {
			i = len(groups)
			index[m.Document] = i
			groups = append(groups, DocumentMoves{Document: m.Document, DocumentRel: m.DocumentRel})
		}
		groups[i].Moves = append(groups[i].Moves, m)
	}
	return groups
}
