// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/pricing"
)

// FindKit finds a kit's totals by name in the results slice.
// Returns a pointer to the totals if found, nil otherwise.
func FindKit(totals []pricing.KitTotals, name string) *pricing.KitTotals {
	for i := range totals {
		if totals[i].Name == name {
			return &totals[i]
		}
	}
	return nil
}

// Recorder is a visitor that records every callback it receives as a short
// event string, e.g. "enter-kit Budget Kit" or "camera Arri Alexa Mini".
type Recorder struct {
	gear.BaseVisitor
	Events []string
}

func (r *Recorder) VisitCamera(c *gear.Camera) error {
	r.Events = append(r.Events, "camera "+c.Brand)
	return nil
}

func (r *Recorder) VisitHighSpeedCamera(c *gear.HighSpeedCamera) error {
	r.Events = append(r.Events, "highspeed "+c.Brand)
	return nil
}

func (r *Recorder) VisitLens(l *gear.Lens) error {
	r.Events = append(r.Events, "lens "+l.Brand)
	return nil
}

func (r *Recorder) EnterCollection(*gear.Collection) error {
	r.Events = append(r.Events, "enter-collection")
	return nil
}

func (r *Recorder) ExitCollection(*gear.Collection) error {
	r.Events = append(r.Events, "exit-collection")
	return nil
}

func (r *Recorder) EnterKit(k *gear.Kit) error {
	r.Events = append(r.Events, "enter-kit "+k.Name)
	return nil
}

func (r *Recorder) ExitKit(k *gear.Kit) error {
	r.Events = append(r.Events, "exit-kit "+k.Name)
	return nil
}

// Prices collects the price of every leaf beneath root in traversal order.
func Prices(root gear.Node) []float64 {
	var p priceCollector
	_ = root.Accept(&p)
	return p.prices
}

type priceCollector struct {
	gear.BaseVisitor
	prices []float64
}

func (p *priceCollector) VisitCamera(c *gear.Camera) error {
	p.prices = append(p.prices, c.Price)
	return nil
}

func (p *priceCollector) VisitHighSpeedCamera(c *gear.HighSpeedCamera) error {
	p.prices = append(p.prices, c.Price)
	return nil
}

func (p *priceCollector) VisitLens(l *gear.Lens) error {
	p.prices = append(p.prices, l.Price)
	return nil
}
