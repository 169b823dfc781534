// Package output provides the visitors that render an equipment tree and its
// kit discounts for display.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/pricing"
	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/format"
)

// Printer renders every node of a tree as indented, human-readable text.
// At each kit exit it prints that kit's totals from a prior KitDiscount pass
// over the same tree.
type Printer struct {
	gear.BaseVisitor

	w       io.Writer
	cursor  kitCursor
	depth   int
	aligner format.LabelAligner
	err     error
}

// NewPrinter creates a printer writing to w. totals must be the result of a
// KitDiscount traversal of the tree the printer will visit.
func NewPrinter(w io.Writer, totals []pricing.KitTotals) *Printer {
	return &Printer{
		w:       w,
		cursor:  kitCursor{totals: totals},
		aligner: format.NewLabelAligner(constants.LabelTotalBefore, constants.LabelTotalAfter, constants.LabelDiscount),
	}
}

func (p *Printer) print(depth int, text string) {
	if p.err != nil {
		return
	}
	indent := ""
	if depth > 0 {
		indent = strings.Repeat(" ", depth*constants.IndentWidth)
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", indent, text)
}

func (p *Printer) blank() {
	p.print(0, "")
}

// item prints a leaf header one level below the current depth and its
// fields two levels below.
func (p *Printer) item(header string, fields ...string) error {
	p.print(p.depth+1, header)
	for _, field := range fields {
		p.print(p.depth+2, field)
	}
	return p.err
}

func (p *Printer) VisitCamera(c *gear.Camera) error {
	return p.item("Camera -",
		"Model: "+c.Brand,
		"Sensor: "+c.SensorType,
		"Resolution: "+c.Resolution,
		"Dynamic Range: "+c.DynamicRange,
		"Rental Price: "+format.Currency(c.Price),
	)
}

func (p *Printer) VisitHighSpeedCamera(c *gear.HighSpeedCamera) error {
	return p.item("High Speed Camera -",
		"Model: "+c.Brand,
		"Resolution: "+c.Resolution,
		"Dynamic Range: "+c.DynamicRange,
		"FPS: "+c.FrameRate,
		"Workflow Solution: "+c.WorkflowSolution,
		"Rental Price: "+format.Currency(c.Price),
	)
}

func (p *Printer) VisitLens(l *gear.Lens) error {
	return p.item("Lens -",
		"Model: "+l.Brand,
		"Type: "+l.LensType,
		"Rental Price: "+format.Currency(l.Price),
	)
}

func (p *Printer) EnterCollection(*gear.Collection) error {
	p.blank()
	p.print(p.depth, "(Entering collection)")
	return p.err
}

func (p *Printer) ExitCollection(*gear.Collection) error {
	p.blank()
	p.print(p.depth, "(Exiting collection)")
	return p.err
}

func (p *Printer) EnterKit(k *gear.Kit) error {
	p.depth++
	p.blank()
	p.print(p.depth, "(Entering kit)")
	p.print(p.depth, k.Name+":")
	return p.err
}

func (p *Printer) ExitKit(k *gear.Kit) error {
	totals, err := p.cursor.next(k)
	if err != nil {
		return err
	}
	p.print(p.depth+2, p.aligner.Align(constants.LabelTotalBefore)+" "+format.Currency(totals.TotalBefore))
	p.print(p.depth+2, p.aligner.Align(constants.LabelTotalAfter)+" "+format.Currency(totals.TotalAfter))
	p.print(p.depth+2, p.aligner.Align(constants.LabelDiscount)+" "+format.Currency(totals.Discount()))
	p.print(p.depth, "(Exiting kit)")
	p.depth--
	return p.err
}
