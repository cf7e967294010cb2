package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ItemList is an owned, ordered collection of line items with stable IDs.
// Rows are added, edited and removed by ID, independent of how any caller
// displays them.
//
// The zero value is an empty, ready-to-use list. ItemList is not safe for
// concurrent use; the editing session is single-threaded.
type ItemList struct {
	items []LineItem
}

// Add appends an empty line item and returns its ID.
func (l *ItemList) Add() uuid.UUID {
	item := LineItem{ID: uuid.New()}
	l.items = append(l.items, item)
	return item.ID
}

// Append adds a pre-filled line item, assigning it a fresh ID, and returns
// that ID.
func (l *ItemList) Append(item LineItem) uuid.UUID {
	item.ID = uuid.New()
	l.items = append(l.items, item)
	return item.ID
}

// Get returns a pointer to the item with the given ID, or nil if absent.
// The pointer is valid until the next Add, Append or Remove.
func (l *ItemList) Get(id uuid.UUID) *LineItem {
	for i := range l.items {
		if l.items[i].ID == id {
			return &l.items[i]
		}
	}
	return nil
}

// Remove deletes the item with the given ID, preserving the order of the
// remaining items. It reports whether an item was removed.
func (l *ItemList) Remove(id uuid.UUID) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the items in order.
func (l *ItemList) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items, valid or not.
func (l *ItemList) Len() int {
	return len(l.items)
}

// MarshalJSON encodes the list as a plain JSON array of line items.
func (l ItemList) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON decodes a JSON array of line items, assigning fresh IDs.
func (l *ItemList) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	for i := range items {
		items[i].ID = uuid.New()
	}
	l.items = items
	return nil
}
