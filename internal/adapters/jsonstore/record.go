package jsonstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafaelleal24/catalog/internal/core/domain"
)

// timestamps are stored as UTC ISO-8601 with millisecond precision
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type PriceRecord struct {
	Amount         float64  `json:"amount"`
	Currency       string   `json:"currency"`
	OriginalAmount *float64 `json:"originalAmount,omitempty"`
}

type ProductRecord struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Price             PriceRecord `json:"price"`
	CategoryID        string      `json:"categoryId"`
	Status            string      `json:"status"`
	AvailableQuantity int         `json:"availableQuantity"`
	CreatedAt         string      `json:"createdAt"`
	UpdatedAt         string      `json:"updatedAt"`
}

// priceShape and recordShape mirror the record with pointer fields so that
// missing keys are distinguishable from zero values.
type priceShape struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}

type recordShape struct {
	ID                *string     `json:"id"`
	Title             *string     `json:"title"`
	Price             *priceShape `json:"price"`
	CategoryID        *string     `json:"categoryId"`
	Status            *string     `json:"status"`
	AvailableQuantity *int        `json:"availableQuantity"`
	CreatedAt         *string     `json:"createdAt"`
	UpdatedAt         *string     `json:"updatedAt"`
}

// ValidateRecord reports whether raw is structurally a product record: a
// JSON object holding every required field with the right type. It does not
// check field semantics, that is the domain's job during mapping.
func ValidateRecord(raw json.RawMessage) bool {
	var shape recordShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return false
	}
	if shape.ID == nil || shape.Title == nil || shape.CategoryID == nil ||
		shape.Status == nil || shape.AvailableQuantity == nil ||
		shape.CreatedAt == nil || shape.UpdatedAt == nil {
		return false
	}
	if shape.Price == nil || shape.Price.Amount == nil || shape.Price.Currency == nil {
		return false
	}
	return true
}

// ToDomain maps a raw record to a product, enforcing every domain rule on
// the way in.
func ToDomain(raw json.RawMessage) (*domain.Product, error) {
	var record ProductRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("mapping product record: %w", err)
	}
	if !ValidateRecord(raw) {
		return nil, fmt.Errorf("mapping product record: missing required fields")
	}

	id, err := domain.ParseProductID(record.ID)
	if err != nil {
		return nil, fmt.Errorf("mapping product record: %w", err)
	}

	var price domain.Price
	amount := decimal.NewFromFloat(record.Price.Amount)
	if record.Price.OriginalAmount != nil {
		price, err = domain.NewDiscountedPrice(amount, record.Price.Currency, decimal.NewFromFloat(*record.Price.OriginalAmount))
	} else {
		price, err = domain.NewPrice(amount, record.Price.Currency)
	}
	if err != nil {
		return nil, fmt.Errorf("mapping product record: %w", err)
	}

	status, err := domain.ParseStatus(record.Status)
	if err != nil {
		return nil, fmt.Errorf("mapping product record: %w", err)
	}

	stock, err := domain.NewStock(record.AvailableQuantity)
	if err != nil {
		return nil, fmt.Errorf("mapping product record: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("mapping product record: invalid createdAt: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("mapping product record: invalid updatedAt: %w", err)
	}

	return domain.NewProduct(id, record.Title, record.Description, price, record.CategoryID, status, stock, createdAt, updatedAt), nil
}

// ToRecord maps a product to its persisted form.
func ToRecord(product *domain.Product) ProductRecord {
	price := PriceRecord{
		Amount:   product.Price.Amount().InexactFloat64(),
		Currency: product.Price.Currency(),
	}
	if original, ok := product.Price.OriginalAmount(); ok {
		value := original.InexactFloat64()
		price.OriginalAmount = &value
	}

	return ProductRecord{
		ID:                product.ID.String(),
		Title:             product.Title,
		Description:       product.Description,
		Price:             price,
		CategoryID:        product.CategoryID,
		Status:            product.Status.String(),
		AvailableQuantity: product.Stock.Value(),
		CreatedAt:         product.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:         product.UpdatedAt.UTC().Format(timestampLayout),
	}
}
