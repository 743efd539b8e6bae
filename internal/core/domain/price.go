package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Price is a non-negative amount in a currency, optionally marked down
// from an original amount. Invariant: originalAmount, when set, is never
// below amount.
type Price struct {
	amount         decimal.Decimal
	currency       string
	originalAmount *decimal.Decimal
}

func NewPrice(amount decimal.Decimal, currency string) (Price, error) {
	p := Price{amount: amount, currency: currency}
	if err := p.validate(); err != nil {
		return Price{}, err
	}
	return p, nil
}

// NewDiscountedPrice builds a Price carrying the pre-discount amount.
func NewDiscountedPrice(amount decimal.Decimal, currency string, originalAmount decimal.Decimal) (Price, error) {
	p := Price{amount: amount, currency: currency, originalAmount: &originalAmount}
	if err := p.validate(); err != nil {
		return Price{}, err
	}
	return p, nil
}

func (p Price) validate() error {
	if p.amount.IsNegative() {
		return fmt.Errorf("price amount cannot be negative")
	}
	if strings.TrimSpace(p.currency) == "" {
		return fmt.Errorf("price currency cannot be empty")
	}
	if p.originalAmount != nil {
		if p.originalAmount.IsNegative() {
			return fmt.Errorf("original price amount cannot be negative")
		}
		if p.originalAmount.LessThan(p.amount) {
			return fmt.Errorf("original price cannot be less than current price")
		}
	}
	return nil
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

func (p Price) Currency() string {
	return p.currency
}

// OriginalAmount returns the pre-discount amount and whether one is set.
func (p Price) OriginalAmount() (decimal.Decimal, bool) {
	if p.originalAmount == nil {
		return decimal.Decimal{}, false
	}
	return *p.originalAmount, true
}

func (p Price) HasDiscount() bool {
	return p.originalAmount != nil && p.originalAmount.GreaterThan(p.amount)
}

// DiscountPercentage is the markdown relative to the original amount,
// rounded to the nearest integer. 0 when there is no discount.
func (p Price) DiscountPercentage() int {
	if !p.HasDiscount() {
		return 0
	}
	discount := p.originalAmount.Sub(p.amount)
	return int(discount.Div(*p.originalAmount).Mul(oneHundred).Round(0).IntPart())
}

func (p Price) Equals(other Price) bool {
	if !p.amount.Equal(other.amount) || p.currency != other.currency {
		return false
	}
	if (p.originalAmount == nil) != (other.originalAmount == nil) {
		return false
	}
	return p.originalAmount == nil || p.originalAmount.Equal(*other.originalAmount)
}

func (p Price) String() string {
	return p.currency + " " + p.amount.StringFixed(2)
}
