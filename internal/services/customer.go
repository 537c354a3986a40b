package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/filters"
	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/domain"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/validate"
)

type CustomerInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// BulkCreateResult carries every input item exactly once: either as a
// created customer or as an indexed error message. The two lists each keep
// input order but positions do not line up across them.
type BulkCreateResult struct {
	Created []*domain.Customer `json:"created"`
	Errors  []string           `json:"errors"`
}

type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	BulkCreate(ctx context.Context, inputs []CustomerInput) (*BulkCreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, filter *filters.CustomerFilter) ([]*domain.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo customer.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo customer.CustomerRepo) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{db: db, log: serviceLog, customerRepo: customerRepo}
}

func (cs *customerService) Create(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	in = normalizeCustomerInput(in)
	if reasons := validate.Customer(validate.CustomerFields(in)); len(reasons) > 0 {
		return nil, apierr.Validation("invalid_customer", reasons...)
	}

	var created *domain.Customer
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := cs.createOne(ctx, tx, in)
		if err != nil {
			return err
		}
		created = c
		return nil
	}); err != nil {
		cs.log.Warn("Create customer failed", "error", err)
		return nil, err
	}
	cs.log.Info("Customer created", "customer_id", created.ID.String())
	return created, nil
}

// BulkCreate processes items independently: each one gets its own
// validate + uniqueness check + insert inside its own transaction, so a
// failure in item k never rolls back items 1..k-1. Only a store-level
// failure aborts the run.
func (cs *customerService) BulkCreate(ctx context.Context, inputs []CustomerInput) (*BulkCreateResult, error) {
	result := &BulkCreateResult{
		Created: []*domain.Customer{},
		Errors:  []string{},
	}

	for idx, in := range inputs {
		in = normalizeCustomerInput(in)

		if reasons := validate.Customer(validate.CustomerFields(in)); len(reasons) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", idx+1, strings.Join(reasons, "; ")))
			continue
		}

		var created *domain.Customer
		err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			c, err := cs.createOne(ctx, tx, in)
			if err != nil {
				return err
			}
			created = c
			return nil
		})
		if err != nil {
			if apierr.KindOf(err) == apierr.KindPersistence {
				cs.log.Error("Bulk create aborted by store failure", "row", idx+1, "error", err)
				return nil, err
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", idx+1, err.Error()))
			continue
		}
		result.Created = append(result.Created, created)
	}

	cs.log.Info("Bulk create finished",
		"requested", len(inputs),
		"created", len(result.Created),
		"failed", len(result.Errors),
	)
	return result, nil
}

// createOne runs the uniqueness check immediately before the insert to keep
// the race window narrow; the unique index is the backstop when two callers
// slip through the check concurrently.
func (cs *customerService) createOne(ctx context.Context, tx *gorm.DB, in CustomerInput) (*domain.Customer, error) {
	exists, err := cs.customerRepo.EmailExists(ctx, tx, in.Email)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if exists {
		return nil, apierr.Conflict("email_exists", fmt.Errorf("email %s already exists", in.Email))
	}

	c := &domain.Customer{
		ID:    uuid.New(),
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	out, err := cs.customerRepo.Create(ctx, tx, []*domain.Customer{c})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apierr.Conflict("email_exists", fmt.Errorf("email %s already exists", in.Email))
		}
		return nil, apierr.Persistence(err)
	}
	return out[0], nil
}

func (cs *customerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	found, err := cs.customerRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if len(found) == 0 {
		return nil, apierr.NotFound("customer_not_found", fmt.Errorf("customer %s does not exist", id))
	}
	return found[0], nil
}

func (cs *customerService) List(ctx context.Context, filter *filters.CustomerFilter) ([]*domain.Customer, error) {
	found, err := cs.customerRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return found, nil
}

func normalizeCustomerInput(in CustomerInput) CustomerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Phone != nil {
		trimmed := strings.TrimSpace(*in.Phone)
		if trimmed == "" {
			in.Phone = nil
		} else {
			in.Phone = &trimmed
		}
	}
	return in
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers the GORM error translator does not cover.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
