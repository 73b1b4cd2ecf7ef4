package delaunay

import "github.com/chris-martin/delaunay/front"

// Option configures a call to New.
type Option = front.Option

// TieBreak selects how New resolves an exact bulge-comparator tie
// between candidate apexes. See front.TieBreak.
type TieBreak = front.TieBreak

const (
	// TieBreakFirst picks the lowest-input-index candidate among ties.
	// This is the default.
	TieBreakFirst = front.TieBreakFirst

	// TieBreakLast picks the highest-input-index candidate among ties.
	TieBreakLast = front.TieBreakLast
)

// WithTieBreak overrides the default lowest-index tie-break rule.
func WithTieBreak(tb TieBreak) Option {
	return front.WithTieBreak(tb)
}
