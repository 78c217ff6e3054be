package step

// TopLevelItems returns the items of the file that no other item references,
// in their original order.
func (f *File) TopLevelItems() []Item {
	visited := make(map[Item]bool)
	referenced := make(map[Item]bool)
	var visit func(item Item)
	visit = func(item Item) {
		if visited[item] {
			return
		}
		visited[item] = true
		for _, child := range item.ReferencedItems() {
			if isNil(child) {
				continue
			}
			referenced[child] = true
			visit(child)
		}
	}
	for _, item := range f.Items {
		visit(item)
	}
	var top []Item
	for _, item := range f.Items {
		if !referenced[item] {
			top = append(top, item)
		}
	}
	return top
}

// OrderedItems lists every item reachable from the file's items in the order
// the by-reference writer declares them, so the id of an item is its index
// plus one.
func (f *File) OrderedItems() []Item {
	seen := make(map[Item]bool)
	var order []Item
	var visit func(item Item)
	visit = func(item Item) {
		if isNil(item) || seen[item] {
			return
		}
		seen[item] = true
		for _, child := range item.ReferencedItems() {
			visit(child)
		}
		order = append(order, item)
	}
	for _, item := range f.Items {
		visit(item)
	}
	return order
}
