package items

import (
	"math"

	"github.com/boynton/step"
	"github.com/boynton/step/parse"
)

// Curve is implemented by items usable as edge geometry.
type Curve interface {
	step.Item
	curve()
}

type Line struct {
	Named
	Point  *CartesianPoint
	Vector *Vector
}

func NewLine(name string, point *CartesianPoint, vector *Vector) *Line {
	return &Line{Named: Named{name}, Point: point, Vector: vector}
}

// NewLineFromPoints builds the line through p1 and p2, with a unit direction
// and the distance between the points as the vector length.
func NewLineFromPoints(p1, p2 *CartesianPoint) *Line {
	dx, dy, dz := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	length := math.Sqrt(dx*dx + dy*dy + dz*dz)
	direction := NewDirection("", 0, 0, 0)
	if length != 0 {
		direction = NewDirection("", dx/length, dy/length, dz/length)
	}
	return NewLine("", p1, NewVector("", direction, length))
}

func (*Line) Keyword() string { return "LINE" }
func (*Line) curve()          {}

func (l *Line) ReferencedItems() []step.Item {
	return append(step.Items(l.Point), step.Items(l.Vector)...)
}

func (l *Line) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(l.Label), w.ItemSyntax(l.Point), w.ItemSyntax(l.Vector)}
}

type Circle struct {
	Named
	Position Placement
	Radius   float64
}

func (*Circle) Keyword() string { return "CIRCLE" }
func (*Circle) curve()          {}

func (c *Circle) ReferencedItems() []step.Item { return step.Items(c.Position) }

func (c *Circle) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(c.Label), w.ItemSyntax(c.Position), parse.NewReal(c.Radius)}
}

type Ellipse struct {
	Named
	Position  Placement
	SemiAxis1 float64
	SemiAxis2 float64
}

func (*Ellipse) Keyword() string { return "ELLIPSE" }
func (*Ellipse) curve()          {}

func (e *Ellipse) ReferencedItems() []step.Item { return step.Items(e.Position) }

func (e *Ellipse) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{
		parse.NewString(e.Label),
		w.ItemSyntax(e.Position),
		parse.NewReal(e.SemiAxis1),
		parse.NewReal(e.SemiAxis2),
	}
}

type BSplineCurveForm string

const (
	PolylineForm    BSplineCurveForm = "POLYLINE_FORM"
	CircularArc     BSplineCurveForm = "CIRCULAR_ARC"
	EllipticArc     BSplineCurveForm = "ELLIPTIC_ARC"
	ParabolicArc    BSplineCurveForm = "PARABOLIC_ARC"
	HyperbolicArc   BSplineCurveForm = "HYPERBOLIC_ARC"
	UnspecifiedForm BSplineCurveForm = "UNSPECIFIED"
)

type KnotType string

const (
	UniformKnots         KnotType = "UNIFORM_KNOTS"
	QuasiUniformKnots    KnotType = "QUASI_UNIFORM_KNOTS"
	PiecewiseBezierKnots KnotType = "PIECEWISE_BEZIER_KNOTS"
	UnspecifiedKnots     KnotType = "UNSPECIFIED"
)

type BSplineCurveWithKnots struct {
	Named
	Degree             int
	ControlPoints      []*CartesianPoint
	CurveForm          BSplineCurveForm
	ClosedCurve        bool
	SelfIntersect      bool
	KnotMultiplicities []int
	Knots              []float64
	KnotSpec           KnotType
}

func (*BSplineCurveWithKnots) Keyword() string { return "B_SPLINE_CURVE_WITH_KNOTS" }
func (*BSplineCurveWithKnots) curve()          {}

func (c *BSplineCurveWithKnots) ReferencedItems() []step.Item {
	return step.Items(c.ControlPoints...)
}

func (c *BSplineCurveWithKnots) Parameters(w step.ItemWriter) []parse.Syntax {
	form := c.CurveForm
	if form == "" {
		form = UnspecifiedForm
	}
	spec := c.KnotSpec
	if spec == "" {
		spec = UnspecifiedKnots
	}
	return []parse.Syntax{
		parse.NewString(c.Label),
		parse.NewInteger(c.Degree),
		step.ItemList(w, c.ControlPoints),
		parse.NewEnumeration(string(form)),
		parse.NewBoolean(c.ClosedCurve),
		parse.NewBoolean(c.SelfIntersect),
		parse.NewIntegerList(c.KnotMultiplicities...),
		parse.NewRealList(c.Knots...),
		parse.NewEnumeration(string(spec)),
	}
}

func newLine(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(3); err != nil {
		return nil, err
	}
	l := &Line{}
	var err error
	if l.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(p *CartesianPoint) { l.Point = p }); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[2], func(v *Vector) { l.Vector = v }); err != nil {
		return nil, err
	}
	return l, nil
}

func newCircle(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(3); err != nil {
		return nil, err
	}
	c := &Circle{}
	var err error
	if c.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(p Placement) { c.Position = p }); err != nil {
		return nil, err
	}
	if c.Radius, err = parse.RealValue(params.Values[2]); err != nil {
		return nil, err
	}
	return c, nil
}

func newEllipse(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(4); err != nil {
		return nil, err
	}
	e := &Ellipse{}
	var err error
	if e.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(p Placement) { e.Position = p }); err != nil {
		return nil, err
	}
	if e.SemiAxis1, err = parse.RealValue(params.Values[2]); err != nil {
		return nil, err
	}
	if e.SemiAxis2, err = parse.RealValue(params.Values[3]); err != nil {
		return nil, err
	}
	return e, nil
}

func newBSplineCurveWithKnots(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(9); err != nil {
		return nil, err
	}
	c := &BSplineCurveWithKnots{}
	v := params.Values
	var err error
	if c.Label, err = parse.StringValue(v[0]); err != nil {
		return nil, err
	}
	if c.Degree, err = parse.IntegerValue(v[1]); err != nil {
		return nil, err
	}
	if err = step.BindList(b, v[2], func(points []*CartesianPoint) { c.ControlPoints = points }); err != nil {
		return nil, err
	}
	form, err := parse.EnumerationValue(v[3])
	if err != nil {
		return nil, err
	}
	c.CurveForm = BSplineCurveForm(form)
	if c.ClosedCurve, err = parse.BooleanValue(v[4]); err != nil {
		return nil, err
	}
	if c.SelfIntersect, err = parse.BooleanValue(v[5]); err != nil {
		return nil, err
	}
	if c.KnotMultiplicities, err = parse.IntegerListValue(v[6]); err != nil {
		return nil, err
	}
	if c.Knots, err = parse.RealListValue(v[7]); err != nil {
		return nil, err
	}
	spec, err := parse.EnumerationValue(v[8])
	if err != nil {
		return nil, err
	}
	c.KnotSpec = KnotType(spec)
	return c, nil
}
