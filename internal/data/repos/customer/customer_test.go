package customer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/data/repos/testutil"
	"github.com/yungbote/crm-backend/internal/domain"
)

func TestCustomerRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*domain.Customer{
		{
			ID:    uuid.New(),
			Name:  "Alice Smith",
			Email: "alice@example.com",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 customer, got %d", len(created))
	}

	gotByIDs, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	exists, err := repo.EmailExists(ctx, tx, "alice@example.com")
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}

	exists, err = repo.EmailExists(ctx, tx, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists (missing): expected false")
	}

	count, err := repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("Count: expected 1, got %d", count)
	}
}

func TestCustomerRepoDuplicateEmailFails(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	testutil.SeedCustomer(t, ctx, tx, "Alice", "alice@example.com", nil)

	_, err := repo.Create(ctx, tx, []*domain.Customer{
		{ID: uuid.New(), Name: "Other Alice", Email: "alice@example.com"},
	})
	if err == nil {
		t.Fatalf("Create: expected unique index violation for duplicate email")
	}
}

func TestCustomerRepoListFilters(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	alice := testutil.SeedCustomer(t, ctx, tx, "Alice Smith", "alice@example.com", testutil.StrPtr("+1234567890"))
	bob := testutil.SeedCustomer(t, ctx, tx, "Bob Johnson", "bob@sample.org", testutil.StrPtr("123-456-7890"))
	carol := testutil.SeedCustomer(t, ctx, tx, "Carol White", "carol@example.com", nil)

	cases := []struct {
		name   string
		filter *filters.CustomerFilter
		want   []uuid.UUID
	}{
		{
			name:   "nil_filter_returns_all",
			filter: nil,
			want:   []uuid.UUID{alice.ID, bob.ID, carol.ID},
		},
		{
			name:   "name_contains_case_insensitive",
			filter: &filters.CustomerFilter{Name: filters.Contains("SMITH")},
			want:   []uuid.UUID{alice.ID},
		},
		{
			name:   "email_contains",
			filter: &filters.CustomerFilter{Email: filters.Contains("example.com")},
			want:   []uuid.UUID{alice.ID, carol.ID},
		},
		{
			name:   "name_exact",
			filter: &filters.CustomerFilter{Name: filters.Exact("bob johnson")},
			want:   []uuid.UUID{bob.ID},
		},
		{
			name:   "name_prefix",
			filter: &filters.CustomerFilter{Name: filters.Prefix("car")},
			want:   []uuid.UUID{carol.ID},
		},
		{
			name:   "phone_prefix",
			filter: &filters.CustomerFilter{PhonePrefix: testutil.StrPtr("+1")},
			want:   []uuid.UUID{alice.ID},
		},
		{
			name: "conjunction",
			filter: &filters.CustomerFilter{
				Name:  filters.Contains("o"),
				Email: filters.Contains("example.com"),
			},
			want: []uuid.UUID{carol.ID},
		},
		{
			name:   "no_match",
			filter: &filters.CustomerFilter{Name: filters.Contains("zzz")},
			want:   nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("List: got %d customers, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("List: result %d is %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCustomerRepoListCreatedAtBounds(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	c := testutil.SeedCustomer(t, ctx, tx, "Alice", "alice@example.com", nil)

	past := c.CreatedAt.Add(-time.Hour)
	future := c.CreatedAt.Add(time.Hour)

	got, err := repo.List(ctx, tx, &filters.CustomerFilter{
		CreatedAtGTE: testutil.TimePtr(past),
		CreatedAtLTE: testutil.TimePtr(future),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List: expected customer inside window, got %d", len(got))
	}

	got, err = repo.List(ctx, tx, &filters.CustomerFilter{CreatedAtGTE: testutil.TimePtr(future)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("List: expected empty result outside window, got %d", len(got))
	}
}
