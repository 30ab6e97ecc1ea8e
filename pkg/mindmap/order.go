package mindmap

import (
	"fmt"
	"strings"
)

// ChildOrder selects how the builder orders siblings relative to the order
// in which they were added.
type ChildOrder string

const (
	// ChildOrderDocument keeps siblings in insertion (document) order.
	ChildOrderDocument ChildOrder = "document"
	// ChildOrderReversed stores siblings in reverse insertion order, as if each
	// new child had been inserted at the front of its parent's list.
	ChildOrderReversed ChildOrder = "reversed"
)

// DefaultChildOrder is used when no order is specified.
const DefaultChildOrder = ChildOrderDocument

// ParseChildOrder converts a user-supplied string into a ChildOrder.
// The empty string yields [DefaultChildOrder].
func ParseChildOrder(s string) (ChildOrder, error) {
	switch ChildOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultChildOrder, nil
	case ChildOrderDocument:
		return ChildOrderDocument, nil
	case ChildOrderReversed:
		return ChildOrderReversed, nil
	}
	return "", fmt.Errorf("invalid child order %q (must be document or reversed)", s)
}

// Valid reports whether o is a known order.
func (o ChildOrder) Valid() bool {
	return o == ChildOrderDocument || o == ChildOrderReversed
}

func (o ChildOrder) String() string { return string(o) }
