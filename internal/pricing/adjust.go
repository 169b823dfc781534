// Package pricing implements the price-bearing operations applied to an
// equipment tree: permanent price adjustment and per-kit rental discounts.
package pricing

import (
	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/mathutil"
	"github.com/iwvelando/gear-rental/pkg/validation"
)

// AdjustPrice permanently raises or lowers the price of every leaf it visits
// by a fraction of that price. Applying it twice compounds.
type AdjustPrice struct {
	gear.BaseVisitor
	Fraction float64
	Sign     string
}

// NewAdjustPrice creates a price adjustment. The fraction is written as a
// decimal (0.10 equals 10%) and sign must be "+" or "-".
func NewAdjustPrice(fraction float64, sign string) (*AdjustPrice, error) {
	if err := validation.ValidateFraction("adjustment", fraction); err != nil {
		return nil, err
	}
	if err := validation.ValidateSign(sign); err != nil {
		return nil, err
	}
	return &AdjustPrice{Fraction: fraction, Sign: sign}, nil
}

func (a *AdjustPrice) VisitCamera(c *gear.Camera) error {
	c.Price = a.apply(c.Price)
	return nil
}

func (a *AdjustPrice) VisitHighSpeedCamera(c *gear.HighSpeedCamera) error {
	c.Price = a.apply(c.Price)
	return nil
}

func (a *AdjustPrice) VisitLens(l *gear.Lens) error {
	l.Price = a.apply(l.Price)
	return nil
}

func (a *AdjustPrice) apply(price float64) float64 {
	if a.Sign == constants.SignIncrease {
		return mathutil.Increase(price, a.Fraction)
	}
	return mathutil.Decrease(price, a.Fraction)
}
