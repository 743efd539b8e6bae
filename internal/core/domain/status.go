package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusInactive     Status = "inactive"
	StatusPending      Status = "pending"
	StatusDiscontinued Status = "discontinued"
)

// ParseStatus normalizes value to lowercase and rejects anything outside
// the known set.
func ParseStatus(value string) (Status, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("product status cannot be empty")
	}
	status := Status(strings.ToLower(value))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid product status: %q", value)
	}
	return status, nil
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusPending || s == StatusDiscontinued
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) String() string {
	return string(s)
}
