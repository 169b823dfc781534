package gear

// Visitor is an operation applied to an equipment tree. A node calls exactly
// one method per visit: leaves call the Visit method for their concrete kind,
// composites bracket their children with an Enter/Exit pair.
//
// Returning a non-nil error aborts the traversal; the error is returned from
// the root's Accept.
type Visitor interface {
	VisitCamera(c *Camera) error
	VisitHighSpeedCamera(c *HighSpeedCamera) error
	VisitLens(l *Lens) error

	EnterCollection(c *Collection) error
	ExitCollection(c *Collection) error

	EnterKit(k *Kit) error
	ExitKit(k *Kit) error
}

// BaseVisitor implements every Visitor method as a no-op. Operations embed it
// and override only the callbacks they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitCamera(*Camera) error                   { return nil }
func (BaseVisitor) VisitHighSpeedCamera(*HighSpeedCamera) error { return nil }
func (BaseVisitor) VisitLens(*Lens) error                       { return nil }
func (BaseVisitor) EnterCollection(*Collection) error           { return nil }
func (BaseVisitor) ExitCollection(*Collection) error            { return nil }
func (BaseVisitor) EnterKit(*Kit) error                         { return nil }
func (BaseVisitor) ExitKit(*Kit) error                          { return nil }

var _ Visitor = BaseVisitor{}
