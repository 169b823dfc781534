package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/pkg/mathutil"
	"github.com/iwvelando/gear-rental/pkg/validation"
)

// KitTotals holds the rental price of one kit before and after the kit
// discount.
type KitTotals struct {
	KitID       uuid.UUID
	Name        string
	TotalBefore float64
	TotalAfter  float64
}

// Discount returns the amount saved by renting the kit.
func (t KitTotals) Discount() float64 {
	return t.TotalBefore - t.TotalAfter
}

// KitDiscount computes, for every kit, the sum of the leaf prices beneath it
// before and after a fractional discount. It does not modify the tree.
//
// A kit's totals cover the leaves beneath it, through any collections, but
// not the leaves of a nested kit: those count only toward the nested kit.
// Leaves outside any kit are ignored. One KitTotals is recorded per kit in
// the order the kits are exited.
type KitDiscount struct {
	gear.BaseVisitor
	Fraction float64

	open   []KitTotals
	totals []KitTotals
}

// NewKitDiscount creates a kit discount. The fraction is written as a decimal
// (0.05 equals 5%).
func NewKitDiscount(fraction float64) (*KitDiscount, error) {
	if err := validation.ValidateFraction("discount", fraction); err != nil {
		return nil, err
	}
	return &KitDiscount{Fraction: fraction}, nil
}

func (d *KitDiscount) EnterKit(k *gear.Kit) error {
	d.open = append(d.open, KitTotals{KitID: k.ID, Name: k.Name})
	return nil
}

func (d *KitDiscount) ExitKit(k *gear.Kit) error {
	if len(d.open) == 0 {
		return fmt.Errorf("%w: exit of kit %q without a matching enter", validation.ErrInvariantViolation, k.Name)
	}
	current := d.open[len(d.open)-1]
	d.open = d.open[:len(d.open)-1]
	if current.KitID != k.ID {
		return fmt.Errorf("%w: exit of kit %q while kit %q is open", validation.ErrInvariantViolation, k.Name, current.Name)
	}

	d.totals = append(d.totals, current)
	return nil
}

func (d *KitDiscount) VisitCamera(c *gear.Camera) error {
	d.add(c.Price)
	return nil
}

func (d *KitDiscount) VisitHighSpeedCamera(c *gear.HighSpeedCamera) error {
	d.add(c.Price)
	return nil
}

func (d *KitDiscount) VisitLens(l *gear.Lens) error {
	d.add(l.Price)
	return nil
}

func (d *KitDiscount) add(price float64) {
	n := len(d.open)
	if n == 0 {
		return
	}
	d.open[n-1].TotalBefore += price
	d.open[n-1].TotalAfter += mathutil.Decrease(price, d.Fraction)
}

// Totals returns a copy of the recorded kit totals in kit exit order.
func (d *KitDiscount) Totals() []KitTotals {
	out := make([]KitTotals, len(d.totals))
	copy(out, d.totals)
	return out
}
