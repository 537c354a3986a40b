package services

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/data/repos/customer"
	"github.com/yungbote/crm-backend/internal/data/repos/order"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

// Summary feeds the periodic CRM report: headline counts plus exact revenue.
type Summary struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

type ReportService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type reportService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo customer.CustomerRepo
	orderRepo    order.OrderRepo
}

func NewReportService(db *gorm.DB, log *logger.Logger, customerRepo customer.CustomerRepo, orderRepo order.OrderRepo) ReportService {
	serviceLog := log.With("service", "ReportService")
	return &reportService{db: db, log: serviceLog, customerRepo: customerRepo, orderRepo: orderRepo}
}

func (rs *reportService) Summary(ctx context.Context) (*Summary, error) {
	var out Summary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := rs.customerRepo.Count(gctx, nil)
		if err != nil {
			return err
		}
		out.TotalCustomers = n
		return nil
	})
	g.Go(func() error {
		n, err := rs.orderRepo.Count(gctx, nil)
		if err != nil {
			return err
		}
		out.TotalOrders = n
		return nil
	})
	g.Go(func() error {
		sum, err := rs.orderRepo.SumTotalAmounts(gctx, nil)
		if err != nil {
			return err
		}
		out.TotalRevenue = sum
		return nil
	})

	if err := g.Wait(); err != nil {
		rs.log.Warn("Summary failed", "error", err)
		return nil, apierr.Persistence(err)
	}
	return &out, nil
}
