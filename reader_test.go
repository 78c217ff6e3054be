package step_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/step"
	"github.com/boynton/step/items"
	"github.com/boynton/step/parse"
)

const testHeader = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('part one ','part two'),'2;1');
FILE_NAME('part.stp','2020-01-02T03:04:05',('an ','author'),('org'),'pre','sys','auth');
FILE_SCHEMA(('CONFIG_CONTROL_DESIGN','MY_SCHEMA'));
ENDSEC;
`

func stepText(data ...string) string {
	return testHeader + "DATA;\n" + strings.Join(data, "\n") + "\nENDSEC;\nEND-ISO-10303-21;\n"
}

func parseError(test *testing.T, text string) *parse.Error {
	test.Helper()
	_, err := step.Parse(text)
	require.Error(test, err)
	var perr *parse.Error
	require.ErrorAs(test, err, &perr)
	return perr
}

func TestReadHeader(test *testing.T) {
	file, err := step.Parse(stepText())
	require.NoError(test, err)
	assert.Equal(test, "part one part two", file.Description)
	assert.Equal(test, "2;1", file.ImplementationLevel)
	assert.Equal(test, "part.stp", file.Name)
	assert.Equal(test, 2020, file.Timestamp.Year())
	assert.Equal(test, 5, file.Timestamp.Second())
	assert.Equal(test, "an author", file.Author)
	assert.Equal(test, "org", file.Organization)
	assert.Equal(test, "pre", file.PreprocessorVersion)
	assert.Equal(test, "sys", file.OriginatingSystem)
	assert.Equal(test, "auth", file.Authorization)
	assert.True(test, file.Schemas.Has(step.ConfigControlDesign))
	assert.Equal(test, []string{"MY_SCHEMA"}, file.UnsupportedSchemas)
	assert.Empty(test, file.Items)
}

func TestReadHeaderErrors(test *testing.T) {
	text := strings.Replace(stepText(), "'2020-01-02T03:04:05'", "'yesterday'", 1)
	perr := parseError(test, text)
	assert.Equal(test, parse.ValueError, perr.Category)
	assert.Equal(test, 4, perr.Line)

	text = strings.Replace(stepText(), ",'2;1');", ");", 1)
	assert.Equal(test, parse.ArityError, parseError(test, text).Category)
}

func TestReadForwardReferences(test *testing.T) {
	file, err := step.Parse(stepText(
		"#1=LINE('',#2,#3);",
		"#2=CARTESIAN_POINT('',(1.,2.,3.));",
		"#3=VECTOR('',#4,5.);",
		"#4=DIRECTION('',(1.,0.,0.));",
	))
	require.NoError(test, err)
	require.Len(test, file.Items, 4)
	line, ok := file.Items[0].(*items.Line)
	require.True(test, ok)
	assert.Same(test, file.Items[1], line.Point)
	assert.Same(test, file.Items[2], line.Vector)
	assert.Same(test, file.Items[3], line.Vector.Direction)
	assert.Equal(test, 2.0, line.Point.Y)
	assert.Equal(test, 5.0, line.Vector.Length)
}

func TestReadOrderIndependence(test *testing.T) {
	forward := stepText(
		"#10=LINE('',#20,#30);",
		"#20=CARTESIAN_POINT('',(1.,2.,3.));",
		"#30=VECTOR('',#40,5.);",
		"#40=DIRECTION('',(1.,0.,0.));",
	)
	backward := stepText(
		"#4=DIRECTION('',(1.,0.,0.));",
		"#3=VECTOR('',#4,5.);",
		"#2=CARTESIAN_POINT('',(1.,2.,3.));",
		"#1=LINE('',#2,#3);",
	)
	render := func(text string) string {
		file, err := step.Parse(text)
		require.NoError(test, err)
		file.Items = file.TopLevelItems()
		out, err := file.ContentsAsString(false)
		require.NoError(test, err)
		return out
	}
	assert.Equal(test, render(forward), render(backward))
}

func TestReadUnresolvedReference(test *testing.T) {
	perr := parseError(test, stepText(
		"#1=LINE('',#2,#9);",
		"#2=CARTESIAN_POINT('',(1.,2.,3.));",
	))
	assert.Equal(test, parse.BindingError, perr.Category)
	assert.Equal(test, "Unresolved reference #9", perr.Message)
	assert.Equal(test, 8, perr.Line)
	assert.Equal(test, 15, perr.Column)
}

func TestReadLowestUnresolvedReported(test *testing.T) {
	perr := parseError(test, stepText(
		"#1=LINE('',#7,#5);",
	))
	assert.Equal(test, "Unresolved reference #5", perr.Message)
}

func TestReadDuplicateInstance(test *testing.T) {
	perr := parseError(test, stepText(
		"#1=CARTESIAN_POINT('',(1.,2.,3.));",
		"#1=DIRECTION('',(1.,0.,0.));",
	))
	assert.Equal(test, parse.BindingError, perr.Category)
	assert.Equal(test, "Duplicate entity instance #1", perr.Message)
	assert.Equal(test, 9, perr.Line)
}

func TestReadTypeMismatch(test *testing.T) {
	perr := parseError(test, stepText(
		"#1=DIRECTION('',(1.,0.,0.));",
		"#2=VERTEX_POINT('',#1);",
	))
	assert.Equal(test, parse.BindingError, perr.Category)
	assert.Equal(test, "Expected *items.CartesianPoint, found DIRECTION", perr.Message)
}

func TestReadArity(test *testing.T) {
	perr := parseError(test, stepText("#1=CARTESIAN_POINT('');"))
	assert.Equal(test, parse.ArityError, perr.Category)
}

func TestReadUnsupportedItems(test *testing.T) {
	var buf bytes.Buffer
	reader := step.NewReader()
	reader.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	file, err := reader.Read(strings.NewReader(stepText(
		"#1=PRODUCT('a','b','',(#5));",
		"#2=CARTESIAN_POINT('',(1.,2.,3.));",
		"#3=PRODUCT('c','d','',(#5));",
		"#4=(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.));",
	)))
	require.NoError(test, err)
	require.Len(test, file.Items, 1)
	assert.Equal(test, "CARTESIAN_POINT", file.Items[0].Keyword())
	assert.Equal(test, []string{"PRODUCT", "(LENGTH_UNIT NAMED_UNIT SI_UNIT)"}, reader.Unsupported())
	assert.Equal(test, 1, strings.Count(buf.String(), "keyword=PRODUCT"))
}

func TestReadReferenceToUnsupported(test *testing.T) {
	perr := parseError(test, stepText(
		"#1=PRODUCT('a','b','',());",
		"#2=VERTEX_POINT('',#1);",
	))
	assert.Equal(test, parse.BindingError, perr.Category)
	assert.Equal(test, "Reference to unsupported item #1 (PRODUCT)", perr.Message)
}

func TestReadUnsupportedInlineItem(test *testing.T) {
	perr := parseError(test, stepText("#1=VECTOR('',FOO(),1.);"))
	assert.Equal(test, parse.BindingError, perr.Category)
	assert.Equal(test, "Unsupported inline item FOO", perr.Message)
}

func TestReadInlineItems(test *testing.T) {
	file, err := step.Parse(stepText(
		"#1=LINE('',CARTESIAN_POINT('',(1.,2.,3.)),VECTOR('',DIRECTION('',(1.,0.,0.)),4.));",
	))
	require.NoError(test, err)
	require.Len(test, file.Items, 1)
	line := file.Items[0].(*items.Line)
	assert.Equal(test, 3.0, line.Point.Z)
	assert.Equal(test, 1.0, line.Vector.Direction.X)
}

func TestReadOptionalReferences(test *testing.T) {
	file, err := step.Parse(stepText(
		"#1=CARTESIAN_POINT('',(0.,0.,0.));",
		"#2=AXIS2_PLACEMENT_3D('',#1,$,*);",
	))
	require.NoError(test, err)
	placement := file.Items[1].(*items.Axis2Placement3D)
	assert.Nil(test, placement.Axis)
	assert.Nil(test, placement.RefDirection)
	assert.Len(test, placement.ReferencedItems(), 1)
}

func TestReadCustomRegistry(test *testing.T) {
	factory, ok := step.DefaultRegistry.Lookup("CARTESIAN_POINT")
	require.True(test, ok)
	registry := step.NewRegistry()
	registry.Register("CARTESIAN_POINT", factory)
	reader := &step.Reader{Registry: registry}
	file, err := reader.Read(strings.NewReader(stepText(
		"#1=CARTESIAN_POINT('',(1.,2.,3.));",
		"#2=DIRECTION('',(1.,0.,0.));",
	)))
	require.NoError(test, err)
	require.Len(test, file.Items, 1)
	assert.Equal(test, []string{"DIRECTION"}, reader.Unsupported())
	assert.Equal(test, []string{"CARTESIAN_POINT"}, registry.Keywords())
}
