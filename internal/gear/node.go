// Package gear defines the rental equipment tree and the Visitor contract
// used to apply operations to it.
//
// The set of node kinds is closed: Camera, HighSpeedCamera and Lens leaves,
// and Collection and Kit composites. The set of operations is open: anything
// implementing Visitor can be applied with Accept without changing the nodes.
package gear

import (
	"github.com/google/uuid"
)

// Node is any element of the equipment tree.
type Node interface {
	Accept(v Visitor) error
}

// Camera is a standard rental camera body.
type Camera struct {
	Brand        string
	Price        float64
	SensorType   string
	Resolution   string
	DynamicRange string
}

// NewCamera creates a camera leaf.
func NewCamera(brand string, price float64, sensorType, resolution, dynamicRange string) *Camera {
	return &Camera{
		Brand:        brand,
		Price:        price,
		SensorType:   sensorType,
		Resolution:   resolution,
		DynamicRange: dynamicRange,
	}
}

// Accept dispatches to VisitCamera.
func (c *Camera) Accept(v Visitor) error {
	return v.VisitCamera(c)
}

// HighSpeedCamera carries every Camera field plus frame rate and workflow
// details. It is visited through VisitHighSpeedCamera only, never VisitCamera.
type HighSpeedCamera struct {
	Camera
	FrameRate        string
	WorkflowSolution string
}

// NewHighSpeedCamera creates a high speed camera leaf.
func NewHighSpeedCamera(brand string, price float64, sensorType, resolution, dynamicRange, frameRate, workflowSolution string) *HighSpeedCamera {
	return &HighSpeedCamera{
		Camera:           *NewCamera(brand, price, sensorType, resolution, dynamicRange),
		FrameRate:        frameRate,
		WorkflowSolution: workflowSolution,
	}
}

// Accept dispatches to VisitHighSpeedCamera. It shadows the promoted
// Camera.Accept so dispatch follows the concrete kind.
func (c *HighSpeedCamera) Accept(v Visitor) error {
	return v.VisitHighSpeedCamera(c)
}

// Lens is a rental lens or lens set.
type Lens struct {
	Brand    string
	Price    float64
	LensType string
}

// NewLens creates a lens leaf.
func NewLens(brand string, price float64, lensType string) *Lens {
	return &Lens{Brand: brand, Price: price, LensType: lensType}
}

// Accept dispatches to VisitLens.
func (l *Lens) Accept(v Visitor) error {
	return v.VisitLens(l)
}

// Collection groups nodes for display. It has no pricing semantics.
type Collection struct {
	Children []Node
}

// NewCollection creates a collection holding children in order.
func NewCollection(children ...Node) *Collection {
	return &Collection{Children: children}
}

// Accept calls EnterCollection, accepts every child in order, then calls
// ExitCollection.
func (c *Collection) Accept(v Visitor) error {
	if err := v.EnterCollection(c); err != nil {
		return err
	}
	if err := acceptAll(c.Children, v); err != nil {
		return err
	}
	return v.ExitCollection(c)
}

// Kit is a named bundle of gear rented together at a discount. A kit is
// independent of any Collection: the same piece of gear may be listed in both.
type Kit struct {
	ID       uuid.UUID
	Name     string
	Children []Node
}

// NewKit creates a kit with a fresh identity.
func NewKit(name string, children ...Node) *Kit {
	return &Kit{
		ID:       uuid.New(),
		Name:     name,
		Children: children,
	}
}

// Accept calls EnterKit, accepts every child in order, then calls ExitKit.
func (k *Kit) Accept(v Visitor) error {
	if err := v.EnterKit(k); err != nil {
		return err
	}
	if err := acceptAll(k.Children, v); err != nil {
		return err
	}
	return v.ExitKit(k)
}

func acceptAll(children []Node, v Visitor) error {
	for _, child := range children {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
