package model

import (
	"encoding/json"
	"time"
)

const (
	EntityName = "quote"

	// SlotKeyPrefix namespaces the persistence slots in redis. One slot
	// holds the whole serialized quote of one client session.
	SlotKeyPrefix = "quote:slot"
)

// LineItem is one priced row of the quote, one per venue-day combination.
type LineItem struct {
	ID           string    `json:"id"`
	VenueName    string    `json:"venue_name"`
	HireTypeName string    `json:"hire_type_name"`
	Hours        float64   `json:"hours"`
	BaseCost     float64   `json:"base_cost"`
	EquipCost    float64   `json:"equip_cost"`
	Subtotal     float64   `json:"subtotal"`
	Surcharge    float64   `json:"surcharge"`
	VAT          float64   `json:"vat"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// Quote is the ordered line item collection. Insertion order is preserved
// through append, removal and the serialize/restore round trip.
type Quote struct {
	Items []LineItem `json:"items"`
}

// Append adds items to the end of the quote, preserving their relative order.
func (q *Quote) Append(items ...LineItem) {
	q.Items = append(q.Items, items...)
}

// RemoveByID removes the item with the given id and reports whether a
// removal occurred. An absent id leaves the quote unchanged.
func (q *Quote) RemoveByID(id string) bool {
	for i, item := range q.Items {
		if item.ID == id {
			q.Items = append(q.Items[:i], q.Items[i+1:]...)

			return true
		}
	}

	return false
}

// GrandTotal sums total across all items; 0 for an empty quote.
func (q *Quote) GrandTotal() float64 {
	var total float64
	for _, item := range q.Items {
		total += item.Total
	}

	return total
}

// Empty reports whether the quote has no line items.
func (q *Quote) Empty() bool {
	return len(q.Items) == 0
}

// Encode serializes the quote losslessly for the persistence slot.
func (q *Quote) Encode() (string, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// Decode replaces the quote contents with the decoded payload. Malformed
// input leaves the quote at its current state and returns the error.
func (q *Quote) Decode(payload string) error {
	decoded := Quote{}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return err
	}

	q.Items = decoded.Items

	return nil
}
