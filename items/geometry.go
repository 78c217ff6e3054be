package items

import (
	"github.com/boynton/step"
	"github.com/boynton/step/parse"
)

// Named holds the label every representation item carries as its first
// parameter.
type Named struct {
	Label string
}

func (n *Named) Name() string {
	return n.Label
}

// Placement is implemented by the axis placements a conic can be positioned
// with.
type Placement interface {
	step.Item
	placement()
}

type CartesianPoint struct {
	Named
	X, Y, Z float64
}

func NewCartesianPoint(name string, x, y, z float64) *CartesianPoint {
	return &CartesianPoint{Named: Named{name}, X: x, Y: y, Z: z}
}

func (*CartesianPoint) Keyword() string { return "CARTESIAN_POINT" }

func (*CartesianPoint) ReferencedItems() []step.Item { return nil }

func (p *CartesianPoint) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(p.Label), parse.NewRealList(p.X, p.Y, p.Z)}
}

type Direction struct {
	Named
	X, Y, Z float64
}

func NewDirection(name string, x, y, z float64) *Direction {
	return &Direction{Named: Named{name}, X: x, Y: y, Z: z}
}

func (*Direction) Keyword() string { return "DIRECTION" }

func (*Direction) ReferencedItems() []step.Item { return nil }

func (d *Direction) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(d.Label), parse.NewRealList(d.X, d.Y, d.Z)}
}

type Vector struct {
	Named
	Direction *Direction
	Length    float64
}

func NewVector(name string, direction *Direction, length float64) *Vector {
	return &Vector{Named: Named{name}, Direction: direction, Length: length}
}

func (*Vector) Keyword() string { return "VECTOR" }

func (v *Vector) ReferencedItems() []step.Item { return step.Items(v.Direction) }

func (v *Vector) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(v.Label), w.ItemSyntax(v.Direction), parse.NewReal(v.Length)}
}

type Axis2Placement2D struct {
	Named
	Location     *CartesianPoint
	RefDirection *Direction
}

func (*Axis2Placement2D) Keyword() string { return "AXIS2_PLACEMENT_2D" }
func (*Axis2Placement2D) placement()      {}

func (a *Axis2Placement2D) ReferencedItems() []step.Item {
	return append(step.Items(a.Location), step.Items(a.RefDirection)...)
}

func (a *Axis2Placement2D) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{
		parse.NewString(a.Label),
		w.ItemSyntax(a.Location),
		w.OptionalItemSyntax(a.RefDirection),
	}
}

type Axis2Placement3D struct {
	Named
	Location     *CartesianPoint
	Axis         *Direction
	RefDirection *Direction
}

func (*Axis2Placement3D) Keyword() string { return "AXIS2_PLACEMENT_3D" }
func (*Axis2Placement3D) placement()      {}

func (a *Axis2Placement3D) ReferencedItems() []step.Item {
	items := step.Items(a.Location)
	items = append(items, step.Items(a.Axis)...)
	return append(items, step.Items(a.RefDirection)...)
}

func (a *Axis2Placement3D) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{
		parse.NewString(a.Label),
		w.ItemSyntax(a.Location),
		w.OptionalItemSyntax(a.Axis),
		w.OptionalItemSyntax(a.RefDirection),
	}
}

func coordinates(syn parse.Syntax, minCount int) (x, y, z float64, err error) {
	list, err := parse.ListValue(syn)
	if err != nil {
		return 0, 0, 0, err
	}
	if err := list.AssertCountRange(minCount, 3); err != nil {
		return 0, 0, 0, err
	}
	var values [3]float64
	for i, v := range list.Values {
		if values[i], err = parse.RealValue(v); err != nil {
			return 0, 0, 0, err
		}
	}
	return values[0], values[1], values[2], nil
}

func newCartesianPoint(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(2); err != nil {
		return nil, err
	}
	name, err := parse.StringValue(params.Values[0])
	if err != nil {
		return nil, err
	}
	x, y, z, err := coordinates(params.Values[1], 1)
	if err != nil {
		return nil, err
	}
	return NewCartesianPoint(name, x, y, z), nil
}

func newDirection(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(2); err != nil {
		return nil, err
	}
	name, err := parse.StringValue(params.Values[0])
	if err != nil {
		return nil, err
	}
	x, y, z, err := coordinates(params.Values[1], 2)
	if err != nil {
		return nil, err
	}
	return NewDirection(name, x, y, z), nil
}

func newVector(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(3); err != nil {
		return nil, err
	}
	v := &Vector{}
	var err error
	if v.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(d *Direction) { v.Direction = d }); err != nil {
		return nil, err
	}
	if v.Length, err = parse.RealValue(params.Values[2]); err != nil {
		return nil, err
	}
	return v, nil
}

func newAxis2Placement2D(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(3); err != nil {
		return nil, err
	}
	a := &Axis2Placement2D{}
	var err error
	if a.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(p *CartesianPoint) { a.Location = p }); err != nil {
		return nil, err
	}
	if err = step.BindOptional(b, params.Values[2], func(d *Direction) { a.RefDirection = d }); err != nil {
		return nil, err
	}
	return a, nil
}

func newAxis2Placement3D(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(4); err != nil {
		return nil, err
	}
	a := &Axis2Placement3D{}
	var err error
	if a.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(p *CartesianPoint) { a.Location = p }); err != nil {
		return nil, err
	}
	if err = step.BindOptional(b, params.Values[2], func(d *Direction) { a.Axis = d }); err != nil {
		return nil, err
	}
	if err = step.BindOptional(b, params.Values[3], func(d *Direction) { a.RefDirection = d }); err != nil {
		return nil, err
	}
	return a, nil
}
