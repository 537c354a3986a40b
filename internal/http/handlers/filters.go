package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/data/filters"
)

// Query-string parsing for the list endpoints. Parameter names follow the
// field_gte / field_lte convention; text parameters default to the
// case-insensitive contains comparator.

func queryText(c *gin.Context, name string) *filters.Text {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return filters.Contains(v)
	}
	return nil
}

func queryStr(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}

func queryTime(c *gin.Context, name string) (*time.Time, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC3339: %w", name, err)
	}
	return &t, nil
}

func queryDecimal(c *gin.Context, name string) (*decimal.Decimal, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a decimal number: %w", name, err)
	}
	return &d, nil
}

func queryInt(c *gin.Context, name string) (*int, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return &i, nil
}

func queryUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a uuid: %w", name, err)
	}
	return &id, nil
}

func parseCustomerFilter(c *gin.Context) (*filters.CustomerFilter, error) {
	gte, err := queryTime(c, "created_at_gte")
	if err != nil {
		return nil, err
	}
	lte, err := queryTime(c, "created_at_lte")
	if err != nil {
		return nil, err
	}
	return &filters.CustomerFilter{
		Name:         queryText(c, "name"),
		Email:        queryText(c, "email"),
		PhonePrefix:  queryStr(c, "phone_prefix"),
		CreatedAtGTE: gte,
		CreatedAtLTE: lte,
	}, nil
}

func parseProductFilter(c *gin.Context) (*filters.ProductFilter, error) {
	priceGTE, err := queryDecimal(c, "price_gte")
	if err != nil {
		return nil, err
	}
	priceLTE, err := queryDecimal(c, "price_lte")
	if err != nil {
		return nil, err
	}
	stockGTE, err := queryInt(c, "stock_gte")
	if err != nil {
		return nil, err
	}
	stockLTE, err := queryInt(c, "stock_lte")
	if err != nil {
		return nil, err
	}
	return &filters.ProductFilter{
		Name:     queryText(c, "name"),
		PriceGTE: priceGTE,
		PriceLTE: priceLTE,
		StockGTE: stockGTE,
		StockLTE: stockLTE,
	}, nil
}

func parseOrderFilter(c *gin.Context) (*filters.OrderFilter, error) {
	totalGTE, err := queryDecimal(c, "total_amount_gte")
	if err != nil {
		return nil, err
	}
	totalLTE, err := queryDecimal(c, "total_amount_lte")
	if err != nil {
		return nil, err
	}
	dateGTE, err := queryTime(c, "order_date_gte")
	if err != nil {
		return nil, err
	}
	dateLTE, err := queryTime(c, "order_date_lte")
	if err != nil {
		return nil, err
	}
	productID, err := queryUUID(c, "product_id")
	if err != nil {
		return nil, err
	}
	return &filters.OrderFilter{
		TotalAmountGTE: totalGTE,
		TotalAmountLTE: totalLTE,
		OrderDateGTE:   dateGTE,
		OrderDateLTE:   dateLTE,
		CustomerName:   queryText(c, "customer_name"),
		ProductName:    queryText(c, "product_name"),
		ProductID:      productID,
	}, nil
}
