package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	uuidIDPattern   = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	customIDPattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{6,}$`)
)

// ProductID identifies a product. Valid forms are a UUID or a marketplace
// code of three uppercase letters followed by at least six digits
// (e.g. MLA123456).
type ProductID struct {
	value string
}

// ParseProductID validates value and returns it as a ProductID. Invalid
// input is rejected, never coerced.
func ParseProductID(value string) (ProductID, error) {
	if strings.TrimSpace(value) == "" {
		return ProductID{}, fmt.Errorf("product id cannot be empty")
	}
	if !uuidIDPattern.MatchString(value) && !customIDPattern.MatchString(value) {
		return ProductID{}, fmt.Errorf("invalid product id format: %q", value)
	}
	return ProductID{value: value}, nil
}

// GenerateProductID returns a fresh UUID-backed ProductID.
func GenerateProductID() ProductID {
	return ProductID{value: uuid.NewString()}
}

func (id ProductID) String() string {
	return id.value
}

func (id ProductID) Equals(other ProductID) bool {
	return id.value == other.value
}

func (id ProductID) IsZero() bool {
	return id.value == ""
}
