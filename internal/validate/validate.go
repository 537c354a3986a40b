// Package validate holds the pure field-level checks for each entity kind.
// Nothing here touches storage; cross-entity rules (email uniqueness,
// reference resolution) live with the services that own the transaction.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Either international (+ then 1-15 digits) or dashed local
	// (NNN-NNN-NNNN). Anything else is rejected.
	phoneRe = regexp.MustCompile(`^(\+\d{1,15}|\d{3}-\d{3}-\d{4})$`)
)

type CustomerFields struct {
	Name  string
	Email string
	Phone *string
}

type ProductFields struct {
	Name  string
	Price decimal.Decimal
	Stock *int
}

type OrderFields struct {
	ProductIDs []uuid.UUID
}

// Customer returns the list of violated rules, empty when the fields are
// acceptable.
func Customer(f CustomerFields) []string {
	var reasons []string
	if strings.TrimSpace(f.Name) == "" {
		reasons = append(reasons, "name is required")
	}
	if !emailRe.MatchString(f.Email) {
		reasons = append(reasons, fmt.Sprintf("invalid email format for %q", f.Email))
	}
	if f.Phone != nil && *f.Phone != "" && !phoneRe.MatchString(*f.Phone) {
		reasons = append(reasons, "invalid phone format, use +1234567890 or 123-456-7890")
	}
	return reasons
}

func Product(f ProductFields) []string {
	var reasons []string
	if strings.TrimSpace(f.Name) == "" {
		reasons = append(reasons, "name is required")
	}
	if !f.Price.IsPositive() {
		reasons = append(reasons, "price must be positive")
	}
	if f.Stock != nil && *f.Stock < 0 {
		reasons = append(reasons, "stock cannot be negative")
	}
	return reasons
}

func Order(f OrderFields) []string {
	var reasons []string
	if len(f.ProductIDs) == 0 {
		reasons = append(reasons, "at least one product is required")
	}
	return reasons
}
