package step_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/step"
	"github.com/boynton/step/items"
	"github.com/boynton/step/parse"
)

func TestBindBackwardReference(test *testing.T) {
	b := step.NewBinder(nil)
	point := items.NewCartesianPoint("", 1, 2, 3)
	require.NoError(test, b.Define(1, point, nil))

	var got *items.CartesianPoint
	require.NoError(test, step.Bind(b, parse.NewReference(1), func(p *items.CartesianPoint) { got = p }))
	assert.Same(test, point, got)
}

func TestBindForwardReference(test *testing.T) {
	b := step.NewBinder(nil)
	var got *items.CartesianPoint
	require.NoError(test, step.Bind(b, parse.NewReference(5), func(p *items.CartesianPoint) { got = p }))
	assert.Nil(test, got)

	point := items.NewCartesianPoint("", 1, 2, 3)
	require.NoError(test, b.Define(5, point, nil))
	assert.Same(test, point, got)
	assert.NoError(test, b.BindRemainingValues())
}

func TestBindListFillsInPlace(test *testing.T) {
	b := step.NewBinder(nil)
	first := items.NewCartesianPoint("first", 0, 0, 0)
	require.NoError(test, b.Define(1, first, nil))

	var points []*items.CartesianPoint
	list := parse.NewList(parse.NewReference(1), parse.NewReference(2))
	require.NoError(test, step.BindList(b, list, func(p []*items.CartesianPoint) { points = p }))
	require.Len(test, points, 2)
	assert.Same(test, first, points[0])
	assert.Nil(test, points[1])

	second := items.NewCartesianPoint("second", 1, 1, 1)
	require.NoError(test, b.Define(2, second, nil))
	assert.Same(test, second, points[1])
}

func TestBindOptional(test *testing.T) {
	b := step.NewBinder(nil)
	called := false
	set := func(*items.Direction) { called = true }
	require.NoError(test, step.BindOptional(b, parse.NewOmitted(), set))
	require.NoError(test, step.BindOptional(b, parse.NewAuto(), set))
	assert.False(test, called)

	err := step.Bind(b, parse.NewAuto(), set)
	assert.True(test, parse.IsCategory(err, parse.BindingError))
}

func TestBindInlineItem(test *testing.T) {
	b := step.NewBinder(nil)
	var got *items.Direction
	inline := parse.NewSimpleItem("DIRECTION", parse.NewString("d"), parse.NewRealList(0, 0, 1))
	require.NoError(test, step.Bind(b, inline, func(d *items.Direction) { got = d }))
	require.NotNil(test, got)
	assert.Equal(test, "d", got.Name())
	assert.Equal(test, 1.0, got.Z)
}

func TestBindRejectsNonReferences(test *testing.T) {
	b := step.NewBinder(nil)
	err := step.Bind(b, parse.NewInteger(3), func(*items.Direction) {})
	assert.True(test, parse.IsCategory(err, parse.InternalError))
}

func TestDefineAndSkipDuplicates(test *testing.T) {
	b := step.NewBinder(nil)
	require.NoError(test, b.Skip(1, "PRODUCT", nil))
	err := b.Define(1, items.NewCartesianPoint("", 0, 0, 0), nil)
	assert.True(test, parse.IsCategory(err, parse.BindingError))

	require.NoError(test, b.Define(2, items.NewCartesianPoint("", 0, 0, 0), nil))
	err = b.Skip(2, "PRODUCT", nil)
	assert.True(test, parse.IsCategory(err, parse.BindingError))
}

func TestBindRemainingValuesReportsLowestId(test *testing.T) {
	b := step.NewBinder(nil)
	noop := func(*items.CartesianPoint) {}
	require.NoError(test, step.Bind(b, parse.NewReference(9), noop))
	require.NoError(test, step.Bind(b, parse.NewReference(3), noop))
	require.NoError(test, step.Bind(b, parse.NewReference(6), noop))
	err := b.BindRemainingValues()
	require.Error(test, err)
	assert.Equal(test, "Unresolved reference #3", err.(*parse.Error).Message)
}

func TestBinderLookup(test *testing.T) {
	b := step.NewBinder(nil)
	point := items.NewCartesianPoint("", 0, 0, 0)
	require.NoError(test, b.Define(4, point, nil))
	item, ok := b.Lookup(4)
	assert.True(test, ok)
	assert.Same(test, point, item)
	_, ok = b.Lookup(5)
	assert.False(test, ok)
}
