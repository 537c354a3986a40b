package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCustomer(t *testing.T) {
	cases := []struct {
		name    string
		fields  CustomerFields
		reasons int
	}{
		{
			name:   "valid_no_phone",
			fields: CustomerFields{Name: "Alice Smith", Email: "alice@example.com"},
		},
		{
			name:   "valid_international_phone",
			fields: CustomerFields{Name: "Alice", Email: "alice@example.com", Phone: strPtr("+1234567890")},
		},
		{
			name:   "valid_dashed_phone",
			fields: CustomerFields{Name: "Bob", Email: "bob@example.com", Phone: strPtr("123-456-7890")},
		},
		{
			name:    "missing_name",
			fields:  CustomerFields{Name: "   ", Email: "alice@example.com"},
			reasons: 1,
		},
		{
			name:    "email_missing_at",
			fields:  CustomerFields{Name: "Alice", Email: "alice.example.com"},
			reasons: 1,
		},
		{
			name:    "email_missing_tld",
			fields:  CustomerFields{Name: "Alice", Email: "alice@example"},
			reasons: 1,
		},
		{
			name:    "email_with_spaces",
			fields:  CustomerFields{Name: "Alice", Email: "alice smith@example.com"},
			reasons: 1,
		},
		{
			name:    "phone_too_long",
			fields:  CustomerFields{Name: "Alice", Email: "a@b.co", Phone: strPtr("+1234567890123456")},
			reasons: 1,
		},
		{
			name:    "phone_wrong_dashes",
			fields:  CustomerFields{Name: "Alice", Email: "a@b.co", Phone: strPtr("12-3456-7890")},
			reasons: 1,
		},
		{
			name:    "phone_plain_digits",
			fields:  CustomerFields{Name: "Alice", Email: "a@b.co", Phone: strPtr("1234567890")},
			reasons: 1,
		},
		{
			name:   "empty_phone_is_absent",
			fields: CustomerFields{Name: "Alice", Email: "a@b.co", Phone: strPtr("")},
		},
		{
			name:    "everything_wrong",
			fields:  CustomerFields{Name: "", Email: "nope", Phone: strPtr("abc")},
			reasons: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Customer(tc.fields)
			if len(got) != tc.reasons {
				t.Fatalf("Customer(%+v) reasons=%v, want %d", tc.fields, got, tc.reasons)
			}
		})
	}
}

func TestProduct(t *testing.T) {
	cases := []struct {
		name    string
		fields  ProductFields
		reasons int
	}{
		{
			name:   "valid",
			fields: ProductFields{Name: "Laptop", Price: decimal.RequireFromString("999.99")},
		},
		{
			name:   "valid_with_stock",
			fields: ProductFields{Name: "Phone", Price: decimal.RequireFromString("499.50"), Stock: intPtr(25)},
		},
		{
			name:   "zero_stock_ok",
			fields: ProductFields{Name: "Phone", Price: decimal.NewFromInt(1), Stock: intPtr(0)},
		},
		{
			name:    "zero_price",
			fields:  ProductFields{Name: "Phone", Price: decimal.Zero},
			reasons: 1,
		},
		{
			name:    "negative_price",
			fields:  ProductFields{Name: "Phone", Price: decimal.NewFromInt(-5)},
			reasons: 1,
		},
		{
			name:    "negative_stock",
			fields:  ProductFields{Name: "Phone", Price: decimal.NewFromInt(5), Stock: intPtr(-1)},
			reasons: 1,
		},
		{
			name:    "missing_name",
			fields:  ProductFields{Name: "", Price: decimal.NewFromInt(5)},
			reasons: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Product(tc.fields)
			if len(got) != tc.reasons {
				t.Fatalf("Product(%+v) reasons=%v, want %d", tc.fields, got, tc.reasons)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	if got := Order(OrderFields{}); len(got) != 1 {
		t.Fatalf("empty product list should be rejected, got %v", got)
	}
	if got := Order(OrderFields{ProductIDs: []uuid.UUID{uuid.New()}}); len(got) != 0 {
		t.Fatalf("non-empty product list should pass, got %v", got)
	}
}
