package step

import (
	"reflect"
	"sort"
	"sync"

	"github.com/boynton/step/parse"
)

// Factory builds an item from its parameter list. Child references are
// resolved through the binder and may be filled in after the factory returns.
type Factory func(b *Binder, params *parse.List) (Item, error)

// Registry maps keywords to item factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry is used by Load, Parse and LoadFile. Catalog packages add
// their keywords to it from init functions.
var DefaultRegistry = NewRegistry()

func Register(keyword string, factory Factory) {
	DefaultRegistry.Register(keyword, factory)
}

func (r *Registry) Register(keyword string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[keyword] = factory
}

func (r *Registry) Lookup(keyword string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[keyword]
	return f, ok
}

func (r *Registry) Keywords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keywords := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

// TryConstruct builds the item described by syn. The boolean result is false
// when the keyword is not registered; complex items are never constructed.
func (r *Registry) TryConstruct(syn parse.ItemSyntax, b *Binder) (Item, bool, error) {
	simple, ok := syn.(*parse.SimpleItem)
	if !ok {
		return nil, false, nil
	}
	factory, ok := r.Lookup(simple.Keyword)
	if !ok {
		return nil, false, nil
	}
	item, err := factory(b, simple.Parameters)
	if err != nil {
		return nil, true, err
	}
	if isNil(item) {
		return nil, false, nil
	}
	return item, true, nil
}

func isNil(item Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
