package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/data/repos/order"
	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/domain"
)

func TestReportServiceSummary(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewReportService(db, log, customer.NewCustomerRepo(db, log), order.NewOrderRepo(db, log))
	ctx := context.Background()

	empty, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary (empty): %v", err)
	}
	if empty.TotalCustomers != 0 || empty.TotalOrders != 0 || !empty.TotalRevenue.Equal(decimal.Zero) {
		t.Fatalf("Summary (empty): unexpected %+v", empty)
	}

	alice := testutil.SeedCustomer(t, ctx, db, "Alice", "alice@example.com", nil)
	testutil.SeedCustomer(t, ctx, db, "Bob", "bob@example.com", nil)

	a := testutil.SeedProduct(t, ctx, db, "A", "10.00", 1)
	b := testutil.SeedProduct(t, ctx, db, "B", "25.50", 1)
	testutil.SeedOrder(t, ctx, db, alice.ID, []*domain.Product{a, b}, time.Now().UTC())
	testutil.SeedOrder(t, ctx, db, alice.ID, []*domain.Product{a}, time.Now().UTC())

	got, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.TotalCustomers != 2 {
		t.Fatalf("Summary: customers=%d, want 2", got.TotalCustomers)
	}
	if got.TotalOrders != 2 {
		t.Fatalf("Summary: orders=%d, want 2", got.TotalOrders)
	}
	if !got.TotalRevenue.Equal(decimal.RequireFromString("45.50")) {
		t.Fatalf("Summary: revenue=%s, want 45.50", got.TotalRevenue)
	}
}
