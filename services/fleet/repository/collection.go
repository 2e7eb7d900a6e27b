package repository

// Collection is a keyed set of records of one entity type. Insertion order
// is preserved for List and Query. Records are never removed; lifecycle is
// expressed through status fields.
type Collection[T any] struct {
	items map[string]T
	order []string
}

// NewCollection creates an empty collection
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// Get returns the record with the given id
func (c *Collection[T]) Get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// Put inserts or replaces the record under the given id
func (c *Collection[T]) Put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	return len(c.order)
}

// List returns all records in insertion order
func (c *Collection[T]) List() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Query returns the records matching pred, in insertion order
func (c *Collection[T]) Query(pred func(T) bool) []T {
	var out []T
	for _, id := range c.order {
		if v := c.items[id]; pred(v) {
			out = append(out, v)
		}
	}
	return out
}
