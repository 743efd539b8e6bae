package jsonstore

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafaelleal24/catalog/internal/core/domain"
)

const validRecordJSON = `{
	"id": "MLA123456",
	"title": "Wireless Mouse",
	"description": "A mouse",
	"price": {"amount": 49.99, "currency": "ARS"},
	"categoryId": "peripherals",
	"status": "active",
	"availableQuantity": 12,
	"createdAt": "2024-01-01T10:00:00.000Z",
	"updatedAt": "2024-02-01T10:00:00.000Z"
}`

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"valid record", validRecordJSON, true},
		{"not an object", `[1,2]`, false},
		{"missing id", `{"title":"x","price":{"amount":1,"currency":"ARS"},"categoryId":"c","status":"active","availableQuantity":1,"createdAt":"2024-01-01T10:00:00.000Z","updatedAt":"2024-01-01T10:00:00.000Z"}`, false},
		{"missing price amount", `{"id":"MLA123456","title":"x","price":{"currency":"ARS"},"categoryId":"c","status":"active","availableQuantity":1,"createdAt":"2024-01-01T10:00:00.000Z","updatedAt":"2024-01-01T10:00:00.000Z"}`, false},
		{"quantity with wrong type", `{"id":"MLA123456","title":"x","price":{"amount":1,"currency":"ARS"},"categoryId":"c","status":"active","availableQuantity":"lots","createdAt":"2024-01-01T10:00:00.000Z","updatedAt":"2024-01-01T10:00:00.000Z"}`, false},
		{"fractional quantity", `{"id":"MLA123456","title":"x","price":{"amount":1,"currency":"ARS"},"categoryId":"c","status":"active","availableQuantity":1.5,"createdAt":"2024-01-01T10:00:00.000Z","updatedAt":"2024-01-01T10:00:00.000Z"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateRecord(json.RawMessage(tt.raw)); got != tt.want {
				t.Fatalf("ValidateRecord() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToDomain(t *testing.T) {
	t.Run("maps a valid record", func(t *testing.T) {
		product, err := ToDomain(json.RawMessage(validRecordJSON))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID.String() != "MLA123456" {
			t.Fatalf("expected id MLA123456, got %s", product.ID)
		}
		if product.Title != "Wireless Mouse" {
			t.Fatalf("unexpected title %q", product.Title)
		}
		if !product.Price.Amount().Equal(decimal.NewFromFloat(49.99)) {
			t.Fatalf("unexpected amount %s", product.Price.Amount())
		}
		if product.Status != domain.StatusActive {
			t.Fatalf("unexpected status %s", product.Status)
		}
		if product.Stock.Value() != 12 {
			t.Fatalf("unexpected stock %d", product.Stock.Value())
		}
		wantCreated := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		if !product.CreatedAt.Equal(wantCreated) {
			t.Fatalf("unexpected createdAt %v", product.CreatedAt)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		raw := strings.Replace(validRecordJSON, `"active"`, `"archived"`, 1)
		if _, err := ToDomain(json.RawMessage(raw)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		raw := strings.Replace(validRecordJSON, `"availableQuantity": 12`, `"availableQuantity": -1`, 1)
		if _, err := ToDomain(json.RawMessage(raw)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("rejects malformed timestamp", func(t *testing.T) {
		raw := strings.Replace(validRecordJSON, "2024-01-01T10:00:00.000Z", "yesterday", 1)
		if _, err := ToDomain(json.RawMessage(raw)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestToRecord(t *testing.T) {
	id, _ := domain.ParseProductID("MLA123456")
	stock, _ := domain.NewStock(5)
	createdAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("omits originalAmount without a discount", func(t *testing.T) {
		price, _ := domain.NewPrice(decimal.NewFromFloat(49.99), "ARS")
		product := domain.NewProduct(id, "Mouse", "", price, "peripherals", domain.StatusActive, stock, createdAt, createdAt)

		data, err := json.Marshal(ToRecord(product))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "originalAmount") {
			t.Fatalf("originalAmount should be omitted: %s", data)
		}
	})

	t.Run("keeps the discount and formats timestamps", func(t *testing.T) {
		price, _ := domain.NewDiscountedPrice(decimal.NewFromFloat(39.99), "ARS", decimal.NewFromFloat(49.99))
		product := domain.NewProduct(id, "Mouse", "", price, "peripherals", domain.StatusActive, stock, createdAt, createdAt)

		record := ToRecord(product)
		if record.Price.OriginalAmount == nil || *record.Price.OriginalAmount != 49.99 {
			t.Fatalf("expected originalAmount 49.99, got %v", record.Price.OriginalAmount)
		}
		if record.CreatedAt != "2024-01-01T10:00:00.000Z" {
			t.Fatalf("unexpected createdAt format %q", record.CreatedAt)
		}
	})

	t.Run("round trips through the store form", func(t *testing.T) {
		price, _ := domain.NewDiscountedPrice(decimal.NewFromFloat(39.99), "ARS", decimal.NewFromFloat(49.99))
		product := domain.NewProduct(id, "Mouse", "desc", price, "peripherals", domain.StatusPending, stock, createdAt, createdAt)

		data, err := json.Marshal(ToRecord(product))
		if err != nil {
			t.Fatal(err)
		}
		back, err := ToDomain(data)
		if err != nil {
			t.Fatalf("mapping back: %v", err)
		}
		if !back.ID.Equals(product.ID) || back.Title != product.Title || back.Status != product.Status {
			t.Fatal("round trip lost data")
		}
		if !back.Price.Equals(product.Price) {
			t.Fatalf("price mismatch: %s vs %s", back.Price, product.Price)
		}
	})
}
