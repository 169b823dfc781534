package output

import (
	"fmt"

	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/pricing"
	"github.com/iwvelando/gear-rental/pkg/validation"
)

// kitCursor pairs kit exits with discount results. Results are consumed in
// order and each one must carry the identity of the kit being exited, so a
// results slice from a different tree, or a tree reshaped between passes,
// is reported instead of being rendered against the wrong kit.
type kitCursor struct {
	totals []pricing.KitTotals
	index  int
}

func (c *kitCursor) next(k *gear.Kit) (pricing.KitTotals, error) {
	if c.index >= len(c.totals) {
		return pricing.KitTotals{}, fmt.Errorf("%w: no discount result for kit %q (exit %d, %d results)",
			validation.ErrInvariantViolation, k.Name, c.index+1, len(c.totals))
	}
	entry := c.totals[c.index]
	if entry.KitID != k.ID {
		return pricing.KitTotals{}, fmt.Errorf("%w: discount result %d belongs to kit %q, not %q",
			validation.ErrInvariantViolation, c.index, entry.Name, k.Name)
	}
	c.index++
	return entry, nil
}
