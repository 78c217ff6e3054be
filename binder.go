package step

import (
	"reflect"
	"sort"

	"github.com/boynton/step/parse"
)

// Bound is the result handed to a binding continuation. Auto is set for the
// `*` marker, in which case Item is nil.
type Bound struct {
	Item   Item
	Auto   bool
	Syntax parse.Syntax
}

type pendingBind struct {
	syntax parse.Syntax
	k      func(Bound) error
}

// Binder resolves entity instance references while a DATA section is read.
// References to ids that are not yet declared are queued and fired when the
// declaration arrives; whatever remains is checked by BindRemainingValues.
type Binder struct {
	registry *Registry
	session  *Reader
	arena    []Item
	index    map[int]int
	skipped  map[int]string
	pending  map[int][]pendingBind
}

func NewBinder(registry *Registry) *Binder {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &Binder{
		registry: registry,
		index:    make(map[int]int),
		skipped:  make(map[int]string),
		pending:  make(map[int][]pendingBind),
	}
}

// Lookup returns the item declared with id, if any.
func (b *Binder) Lookup(id int) (Item, bool) {
	if i, ok := b.index[id]; ok {
		return b.arena[i], true
	}
	return nil, false
}

// BindValue resolves syn and calls k with the result, now or once the
// referenced id has been declared.
func (b *Binder) BindValue(syn parse.Syntax, k func(Bound) error) error {
	switch v := syn.(type) {
	case *parse.SimpleItem:
		item, ok, err := b.registry.TryConstruct(v, b)
		if err != nil {
			return err
		}
		if !ok {
			b.session.noteUnsupported(v.Keyword)
			return parse.ErrorAt(parse.BindingError, v, "Unsupported inline item %s", v.Keyword)
		}
		return k(Bound{Item: item, Syntax: syn})
	case *parse.EntityInstanceReference:
		if item, ok := b.Lookup(v.ID); ok {
			return k(Bound{Item: item, Syntax: syn})
		}
		b.pending[v.ID] = append(b.pending[v.ID], pendingBind{syntax: syn, k: k})
		return nil
	case *parse.Auto:
		return k(Bound{Auto: true, Syntax: syn})
	}
	return parse.ErrorAt(parse.InternalError, syn, "Cannot bind %v", syn.Type())
}

// Define records the item declared as #id and fires the continuations that
// were waiting for it.
func (b *Binder) Define(id int, item Item, at parse.Positioned) error {
	if err := b.checkDuplicate(id, at); err != nil {
		return err
	}
	b.index[id] = len(b.arena)
	b.arena = append(b.arena, item)
	waiting := b.pending[id]
	delete(b.pending, id)
	for _, p := range waiting {
		if err := p.k(Bound{Item: item, Syntax: p.syntax}); err != nil {
			return err
		}
	}
	return nil
}

// Skip records that #id was declared with a keyword the registry does not
// know, so references to it can be reported precisely.
func (b *Binder) Skip(id int, keyword string, at parse.Positioned) error {
	if err := b.checkDuplicate(id, at); err != nil {
		return err
	}
	b.skipped[id] = keyword
	return nil
}

func (b *Binder) checkDuplicate(id int, at parse.Positioned) error {
	_, defined := b.index[id]
	_, skipped := b.skipped[id]
	if defined || skipped {
		return parse.ErrorAt(parse.BindingError, at, "Duplicate entity instance #%d", id)
	}
	return nil
}

// BindRemainingValues runs once after every declaration has been read. Any
// reference still pending names an id that was never declared, or one whose
// keyword was skipped; the lowest such id is reported at its first use.
func (b *Binder) BindRemainingValues() error {
	ids := make([]int, 0, len(b.pending))
	for id := range b.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		waiting := b.pending[id]
		if item, ok := b.Lookup(id); ok {
			delete(b.pending, id)
			for _, p := range waiting {
				if err := p.k(Bound{Item: item, Syntax: p.syntax}); err != nil {
					return err
				}
			}
			continue
		}
		if keyword, ok := b.skipped[id]; ok {
			return parse.ErrorAt(parse.BindingError, waiting[0].syntax, "Reference to unsupported item #%d (%s)", id, keyword)
		}
		return parse.ErrorAt(parse.BindingError, waiting[0].syntax, "Unresolved reference #%d", id)
	}
	return nil
}

func typeName[T Item]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func mismatch[T Item](v Bound) error {
	found := "*"
	if v.Item != nil {
		found = v.Item.Keyword()
	}
	return parse.ErrorAt(parse.BindingError, v.Syntax, "Expected %s, found %s", typeName[T](), found)
}

// Bind resolves a required reference of type T and passes it to set.
func Bind[T Item](b *Binder, syn parse.Syntax, set func(T)) error {
	return b.BindValue(syn, func(v Bound) error {
		if v.Auto {
			return mismatch[T](v)
		}
		item, ok := v.Item.(T)
		if !ok {
			return mismatch[T](v)
		}
		set(item)
		return nil
	})
}

// BindOptional is Bind for fields where `*` and `$` mean no value; set is not
// called in that case.
func BindOptional[T Item](b *Binder, syn parse.Syntax, set func(T)) error {
	if _, ok := syn.(*parse.Omitted); ok {
		return nil
	}
	return b.BindValue(syn, func(v Bound) error {
		if v.Auto {
			return nil
		}
		item, ok := v.Item.(T)
		if !ok {
			return mismatch[T](v)
		}
		set(item)
		return nil
	})
}

// BindList binds every element of a list of references. The slice handed to
// set is allocated up front and its elements are filled in as they resolve.
func BindList[T Item](b *Binder, syn parse.Syntax, set func([]T)) error {
	list, err := parse.ListValue(syn)
	if err != nil {
		return err
	}
	items := make([]T, len(list.Values))
	set(items)
	for i, v := range list.Values {
		i := i
		if err := Bind(b, v, func(item T) { items[i] = item }); err != nil {
			return err
		}
	}
	return nil
}
