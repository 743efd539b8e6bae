package domain

import "fmt"

// Stock is a non-negative on-hand quantity. Arithmetic is pure: Add and
// Subtract return a new Stock and never mutate the receiver.
type Stock struct {
	value int
}

func NewStock(value int) (Stock, error) {
	if value < 0 {
		return Stock{}, fmt.Errorf("stock cannot be negative")
	}
	return Stock{value: value}, nil
}

func EmptyStock() Stock {
	return Stock{}
}

func (s Stock) Value() int {
	return s.value
}

func (s Stock) IsEmpty() bool {
	return s.value == 0
}

func (s Stock) IsAvailable() bool {
	return s.value > 0
}

// HasStock reports whether at least quantity units are on hand.
func (s Stock) HasStock(quantity int) bool {
	return s.value >= quantity
}

func (s Stock) Equals(other Stock) bool {
	return s.value == other.value
}

func (s Stock) Add(quantity int) (Stock, error) {
	if quantity < 0 {
		return Stock{}, fmt.Errorf("cannot add negative quantity to stock")
	}
	return Stock{value: s.value + quantity}, nil
}

func (s Stock) Subtract(quantity int) (Stock, error) {
	if quantity < 0 {
		return Stock{}, fmt.Errorf("cannot subtract negative quantity from stock")
	}
	if quantity > s.value {
		return Stock{}, fmt.Errorf("cannot subtract more than available stock")
	}
	return Stock{value: s.value - quantity}, nil
}
