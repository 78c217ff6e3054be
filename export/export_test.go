package export

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/step"
	"github.com/boynton/step/items"
)

func testFile() *step.File {
	point := items.NewCartesianPoint("origin", 0, 0, 0)
	direction := items.NewDirection("x", 1, 0, 0)
	line := items.NewLine("axis", point, items.NewVector("", direction, 1))
	f := step.NewFile()
	f.Name = "axis.stp"
	f.Timestamp = time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	f.Schemas.Add(step.AutomotiveDesign)
	f.UnsupportedSchemas = []string{"CUSTOM"}
	f.Items = []step.Item{point, line}
	return f
}

func TestGraph(test *testing.T) {
	doc := Graph(testFile())
	expected := &Document{
		Header: Header{
			ImplementationLevel: "2;1",
			Name:                "axis.stp",
			Timestamp:           "2021-03-04T05:06:07.0000000Z",
		},
		Schemas: []string{"AUTOMOTIVE_DESIGN", "CUSTOM"},
		Items: []*Node{
			{ID: 1, Keyword: "CARTESIAN_POINT", Name: "origin"},
			{ID: 2, Keyword: "DIRECTION", Name: "x"},
			{ID: 3, Keyword: "VECTOR", References: []int{2}},
			{ID: 4, Keyword: "LINE", Name: "axis", TopLevel: true, References: []int{1, 3}},
		},
	}
	if diff := cmp.Diff(expected, doc); diff != "" {
		test.Errorf("unexpected document (-want +got):\n%s", diff)
	}
}

func TestGraphIdsMatchWriter(test *testing.T) {
	f := testFile()
	out, err := f.ContentsAsString(false)
	require.NoError(test, err)
	for _, node := range Graph(f).Items {
		assert.Contains(test, out, "#"+strconv.Itoa(node.ID)+"="+node.Keyword+"(")
	}
}

func TestJSON(test *testing.T) {
	raw, err := JSON(Graph(testFile()))
	require.NoError(test, err)
	var decoded Document
	require.NoError(test, json.Unmarshal(raw, &decoded))
	assert.Len(test, decoded.Items, 4)
	assert.True(test, decoded.Items[3].TopLevel)
	assert.Contains(test, string(raw), `"topLevel": true`)
}

func TestYAML(test *testing.T) {
	raw, err := YAML(Graph(testFile()))
	require.NoError(test, err)
	text := string(raw)
	assert.Contains(test, text, "keyword: LINE")
	assert.Contains(test, text, "name: axis.stp")
	assert.True(test, strings.Contains(text, "- AUTOMOTIVE_DESIGN"))
}

func TestGraphEmptyFile(test *testing.T) {
	raw, err := JSON(Graph(&step.File{}))
	require.NoError(test, err)
	assert.Contains(test, string(raw), `"items": []`)
	assert.Contains(test, string(raw), `"schemas": []`)
}
