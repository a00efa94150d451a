package docstore

import "context"

// List loads the document and returns the collection in insertion order.
func (c Collection[T]) List(ctx context.Context, s Store) ([]T, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.All(doc), nil
}

// Get loads the document and returns the record with the given id.
func (c Collection[T]) Get(ctx context.Context, s Store, id string) (T, error) {
	var zero T
	doc, err := s.Load(ctx)
	if err != nil {
		return zero, err
	}
	item, _, err := c.Find(doc, id)
	if err != nil {
		return zero, err
	}
	return item, nil
}

// Insert appends item and saves the document.
func (c Collection[T]) Insert(ctx context.Context, s Store, item T) (T, error) {
	err := Update(ctx, s, func(doc *Document) error {
		c.Append(doc, item)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Modify replaces the record with id by fn's result and saves the document.
// Nothing is written when the record is missing or fn fails.
func (c Collection[T]) Modify(ctx context.Context, s Store, id string, fn func(T) (T, error)) (T, error) {
	var updated T
	err := Update(ctx, s, func(doc *Document) error {
		current, idx, err := c.Find(doc, id)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		c.Replace(doc, idx, next)
		updated = next
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes the record with id and returns it.
func (c Collection[T]) Delete(ctx context.Context, s Store, id string) (T, error) {
	var removed T
	err := Update(ctx, s, func(doc *Document) error {
		item, idx, err := c.Find(doc, id)
		if err != nil {
			return err
		}
		c.RemoveAt(doc, idx)
		removed = item
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return removed, nil
}
