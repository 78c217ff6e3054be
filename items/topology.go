package items

import (
	"github.com/boynton/step"
	"github.com/boynton/step/parse"
)

type VertexPoint struct {
	Named
	Location *CartesianPoint
}

func NewVertexPoint(name string, location *CartesianPoint) *VertexPoint {
	return &VertexPoint{Named: Named{name}, Location: location}
}

func (*VertexPoint) Keyword() string { return "VERTEX_POINT" }

func (v *VertexPoint) ReferencedItems() []step.Item { return step.Items(v.Location) }

func (v *VertexPoint) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(v.Label), w.ItemSyntax(v.Location)}
}

type EdgeCurve struct {
	Named
	EdgeStart    *VertexPoint
	EdgeEnd      *VertexPoint
	EdgeGeometry Curve
	SameSense    bool
}

func (*EdgeCurve) Keyword() string { return "EDGE_CURVE" }

func (e *EdgeCurve) ReferencedItems() []step.Item {
	items := step.Items(e.EdgeStart, e.EdgeEnd)
	return append(items, step.Items(e.EdgeGeometry)...)
}

func (e *EdgeCurve) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{
		parse.NewString(e.Label),
		w.ItemSyntax(e.EdgeStart),
		w.ItemSyntax(e.EdgeEnd),
		w.ItemSyntax(e.EdgeGeometry),
		parse.NewBoolean(e.SameSense),
	}
}

// OrientedEdge derives its start and end vertices from EdgeElement; they are
// written as `*`.
type OrientedEdge struct {
	Named
	EdgeElement *EdgeCurve
	Orientation bool
}

func (*OrientedEdge) Keyword() string { return "ORIENTED_EDGE" }

func (e *OrientedEdge) ReferencedItems() []step.Item { return step.Items(e.EdgeElement) }

func (e *OrientedEdge) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{
		parse.NewString(e.Label),
		parse.NewAuto(),
		parse.NewAuto(),
		w.ItemSyntax(e.EdgeElement),
		parse.NewBoolean(e.Orientation),
	}
}

type EdgeLoop struct {
	Named
	EdgeList []*OrientedEdge
}

func (*EdgeLoop) Keyword() string { return "EDGE_LOOP" }

func (l *EdgeLoop) ReferencedItems() []step.Item { return step.Items(l.EdgeList...) }

func (l *EdgeLoop) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(l.Label), step.ItemList(w, l.EdgeList)}
}

// FaceBound is written as FACE_OUTER_BOUND when Outer is set.
type FaceBound struct {
	Named
	Bound       *EdgeLoop
	Orientation bool
	Outer       bool
}

func (f *FaceBound) Keyword() string {
	if f.Outer {
		return "FACE_OUTER_BOUND"
	}
	return "FACE_BOUND"
}

func (f *FaceBound) ReferencedItems() []step.Item { return step.Items(f.Bound) }

func (f *FaceBound) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(f.Label), w.ItemSyntax(f.Bound), parse.NewBoolean(f.Orientation)}
}

type AdvancedFace struct {
	Named
	Bounds       []*FaceBound
	FaceGeometry Surface
	SameSense    bool
}

func (*AdvancedFace) Keyword() string { return "ADVANCED_FACE" }

func (f *AdvancedFace) ReferencedItems() []step.Item {
	return append(step.Items(f.Bounds...), step.Items(f.FaceGeometry)...)
}

func (f *AdvancedFace) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{
		parse.NewString(f.Label),
		step.ItemList(w, f.Bounds),
		w.ItemSyntax(f.FaceGeometry),
		parse.NewBoolean(f.SameSense),
	}
}

type ClosedShell struct {
	Named
	Faces []*AdvancedFace
}

func (*ClosedShell) Keyword() string { return "CLOSED_SHELL" }

func (s *ClosedShell) ReferencedItems() []step.Item { return step.Items(s.Faces...) }

func (s *ClosedShell) Parameters(w step.ItemWriter) []parse.Syntax {
	return []parse.Syntax{parse.NewString(s.Label), step.ItemList(w, s.Faces)}
}

func newVertexPoint(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(2); err != nil {
		return nil, err
	}
	v := &VertexPoint{}
	var err error
	if v.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, params.Values[1], func(p *CartesianPoint) { v.Location = p }); err != nil {
		return nil, err
	}
	return v, nil
}

func newEdgeCurve(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(5); err != nil {
		return nil, err
	}
	e := &EdgeCurve{}
	v := params.Values
	var err error
	if e.Label, err = parse.StringValue(v[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, v[1], func(p *VertexPoint) { e.EdgeStart = p }); err != nil {
		return nil, err
	}
	if err = step.Bind(b, v[2], func(p *VertexPoint) { e.EdgeEnd = p }); err != nil {
		return nil, err
	}
	if err = step.Bind(b, v[3], func(c Curve) { e.EdgeGeometry = c }); err != nil {
		return nil, err
	}
	if e.SameSense, err = parse.BooleanValue(v[4]); err != nil {
		return nil, err
	}
	return e, nil
}

func newOrientedEdge(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(5); err != nil {
		return nil, err
	}
	e := &OrientedEdge{}
	v := params.Values
	var err error
	if e.Label, err = parse.StringValue(v[0]); err != nil {
		return nil, err
	}
	if err = step.Bind(b, v[3], func(c *EdgeCurve) { e.EdgeElement = c }); err != nil {
		return nil, err
	}
	if e.Orientation, err = parse.BooleanValue(v[4]); err != nil {
		return nil, err
	}
	return e, nil
}

func newEdgeLoop(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(2); err != nil {
		return nil, err
	}
	l := &EdgeLoop{}
	var err error
	if l.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.BindList(b, params.Values[1], func(edges []*OrientedEdge) { l.EdgeList = edges }); err != nil {
		return nil, err
	}
	return l, nil
}

func faceBoundFactory(outer bool) step.Factory {
	return func(b *step.Binder, params *parse.List) (step.Item, error) {
		if err := params.AssertCount(3); err != nil {
			return nil, err
		}
		f := &FaceBound{Outer: outer}
		var err error
		if f.Label, err = parse.StringValue(params.Values[0]); err != nil {
			return nil, err
		}
		if err = step.Bind(b, params.Values[1], func(l *EdgeLoop) { f.Bound = l }); err != nil {
			return nil, err
		}
		if f.Orientation, err = parse.BooleanValue(params.Values[2]); err != nil {
			return nil, err
		}
		return f, nil
	}
}

func newAdvancedFace(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(4); err != nil {
		return nil, err
	}
	f := &AdvancedFace{}
	v := params.Values
	var err error
	if f.Label, err = parse.StringValue(v[0]); err != nil {
		return nil, err
	}
	if err = step.BindList(b, v[1], func(bounds []*FaceBound) { f.Bounds = bounds }); err != nil {
		return nil, err
	}
	if err = step.Bind(b, v[2], func(s Surface) { f.FaceGeometry = s }); err != nil {
		return nil, err
	}
	if f.SameSense, err = parse.BooleanValue(v[3]); err != nil {
		return nil, err
	}
	return f, nil
}

func newClosedShell(b *step.Binder, params *parse.List) (step.Item, error) {
	if err := params.AssertCount(2); err != nil {
		return nil, err
	}
	s := &ClosedShell{}
	var err error
	if s.Label, err = parse.StringValue(params.Values[0]); err != nil {
		return nil, err
	}
	if err = step.BindList(b, params.Values[1], func(faces []*AdvancedFace) { s.Faces = faces }); err != nil {
		return nil, err
	}
	return s, nil
}
