package items

import (
	"github.com/boynton/step"
	"github.com/boynton/step/parse"
)

// Surface is implemented by items usable as face geometry.
type Surface interface {
	step.Item
	surface()
}

type Plane struct {
	Named
	Position *Axis2Placement3D
}

func (*Plane) Keyword() string { return "PLANE" }
func (*Plane) surface()        {}

func (p *Plane) ReferencedItems() []step.Item { return step.Items(p.Position) }

func (p *Plane) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(p.Label), w.ItemSyntax(p.Position)}
}

type CylindricalSurface struct {
	Named
	Position *Axis2Placement3D
	Radius   float64
}

func (*CylindricalSurface) Keyword() string { return "CYLINDRICAL_SURFACE" }
func (*CylindricalSurface) surface()        {}

func (c *CylindricalSurface) ReferencedItems() []step.Item { return step.Items(c.Position) }

func (c *CylindricalSurface) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(c.Label), w.ItemSyntax(c.Position), parse.NewReal(c.Radius)}
}

func newPlane(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(2); err != nil {
		return nil, err
	}
	p := &Plane{}
	var err error
	if p.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(a *Axis2Placement3D) { p.Position = a }); err != nil {
		return nil, err
	}
	return p, nil
}

func newCylindricalSurface(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(3); err != nil {
		return nil, err
	}
	c := &CylindricalSurface{}
	var err error
	if c.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(a *Axis2Placement3D) { c.Position = a }); err != nil {
		return nil, err
	}
	if c.Radius, err = parse.RealValue(params.Values[2]); err != nil {
		return nil, err
	}
	return c, nil
}
