package step

import (
	"github.com/boynton/step/parse"
)

// Item is an entity of the DATA section. Concrete item types are provided by a
// catalog registered with a Registry; the engine only needs to know how to walk
// an item's children and how to re-encode its parameters.
type Item interface {
	Keyword() string
	Name() string
	// ReferencedItems returns the items this item's fields point to. Nil
	// optional references are left out.
	ReferencedItems() []Item
	// Parameters encodes the item's own parameter list. Child items are
	// encoded through w, which decides between inline and #id forms.
	Parameters(w ItemWriter) []parse.Syntax
}

// ItemWriter resolves child items to syntax while an item is being written.
type ItemWriter interface {
	ItemSyntax(item Item) parse.Syntax
	OptionalItemSyntax(item Item) parse.Syntax
}

// ItemList encodes a list of child items through w.
func ItemList[T Item](w ItemWriter, items []T) *parse.List {
	values := make([]parse.Syntax, 0, len(items))
	for _, item := range items {
		values = append(values, w.ItemSyntax(item))
	}
	return parse.NewList(values...)
}

// Items converts a typed slice for ReferencedItems implementations, skipping
// nil entries.
func Items[T Item](items ...T) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		if !isNil(item) {
			result = append(result, item)
		}
	}
	return result
}
