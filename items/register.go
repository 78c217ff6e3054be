// Package items is a small catalog of geometric and topological items. Importing
// it registers every keyword below with step.DefaultRegistry.
package items

import (
	"github.com/boynton/step"
)

func init() {
	RegisterAll(step.DefaultRegistry)
}

// RegisterAll adds the catalog to r.
func RegisterAll(r *step.Registry) {
	r.Register("CARTESIAN_POINT", newCartesianPoint)
	r.Register("DIRECTION", newDirection)
	r.Register("VECTOR", newVector)
	r.Register("AXIS2_PLACEMENT_2D", newAxis2Placement2D)
	r.Register("AXIS2_PLACEMENT_3D", newAxis2Placement3D)
	r.Register("LINE", newLine)
	r.Register("CIRCLE", newCircle)
	r.Register("ELLIPSE", newEllipse)
	r.Register("B_SPLINE_CURVE_WITH_KNOTS", newBSplineCurveWithKnots)
	r.Register("VERTEX_POINT", newVertexPoint)
	r.Register("EDGE_CURVE", newEdgeCurve)
	r.Register("ORIENTED_EDGE", newOrientedEdge)
	r.Register("EDGE_LOOP", newEdgeLoop)
	r.Register("FACE_BOUND", faceBoundFactory(false))
	r.Register("FACE_OUTER_BOUND", faceBoundFactory(true))
	r.Register("ADVANCED_FACE", newAdvancedFace)
	r.Register("CLOSED_SHELL", newClosedShell)
	r.Register("PLANE", newPlane)
	r.Register("CYLINDRICAL_SURFACE", newCylindricalSurface)
}
