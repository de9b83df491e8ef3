package order

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Basket is the line-item composer used while an order is still being put
// together. It maintains an ordered, index-addressable collection of line
// items and recomputes the running total after every mutation.
//
// Indices stay contiguous: removing an item reindexes the rest immediately.
// The stable identity of an item is its id, the position is only a
// projection for the editing surface. Every mutation either fully applies
// or leaves the basket untouched.
//
// A basket is single-user and not safe for concurrent use.
type Basket struct {
	items []LineItem
	terms DeliveryTerms
}

// NewBasket creates an empty basket priced under the given delivery terms.
func NewBasket(terms DeliveryTerms) (*Basket, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	return &Basket{terms: terms}, nil
}

// Add appends a line item. Items with a duplicate id are rejected.
func (b *Basket) Add(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range b.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"line item is invalid",
				fmt.Errorf("item %s is already in the basket", item.ID()),
			)
		}
	}

	b.items = append(b.items, item)
	return nil
}

// RemoveAt deletes the item at the given position and reindexes the rest.
func (b *Basket) RemoveAt(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}

	b.items = append(b.items[:index], b.items[index+1:]...)
	return nil
}

// ChangeQuantityAt updates the quantity of the item at the given position.
func (b *Basket) ChangeQuantityAt(index int, quantity int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}

	return b.items[index].ChangeQuantity(quantity)
}

// ItemByID finds an item by its stable identifier. Callers holding a
// reference across removals must use this instead of a positional index.
func (b *Basket) ItemByID(id kernel.UUID) (LineItem, error) {
	for _, item := range b.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return LineItem{}, errs.NewObjectNotFoundError("lineItemId", id)
}

// Items returns the current items in composition order.
func (b *Basket) Items() []LineItem {
	items := make([]LineItem, len(b.items))
	copy(items, b.items)
	return items
}

// Total computes the running total for the current contents.
func (b *Basket) Total() (kernel.Money, error) {
	return ComputeTotal(b.items, b.terms)
}

// Terms returns the delivery terms the basket prices against.
func (b *Basket) Terms() DeliveryTerms {
	return b.terms
}

func (b *Basket) checkIndex(index int) error {
	if index < 0 || index >= len(b.items) {
		return errs.NewValueIsOutOfRangeError("lineItemIndex", index, 0, len(b.items)-1)
	}
	return nil
}
