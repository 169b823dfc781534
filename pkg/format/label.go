package format

import (
	"github.com/jedib0t/go-pretty/v6/text"
)

// LabelAligner pads a fixed set of labels to a common width so that the
// values following them line up in a column.
type LabelAligner struct {
	width int
}

// NewLabelAligner sizes the column to the longest of the given labels.
func NewLabelAligner(labels ...string) LabelAligner {
	width := 0
	for _, label := range labels {
		if w := len([]rune(label)); w > width {
			width = w
		}
	}
	return LabelAligner{width: width}
}

// Align left-aligns label within the column.
func (a LabelAligner) Align(label string) string {
	return text.AlignLeft.Apply(label, a.width)
}
