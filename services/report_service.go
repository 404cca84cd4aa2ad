package services

import (
	"time"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"
)

// ReportService wraps the read-side aggregates and owns the date-range
// parsing. The to date is inclusive: the range covers the whole last day.
type ReportService struct {
	Reports *repository.ReportRepository
}

func NewReportService(reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{Reports: reportRepo}
}

// parseRange turns YYYY-MM-DD bounds into a half-open [from, to+1d)
// window usable with timestamp columns.
func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperr.BadRequestf("from date cannot be greater than to date")
	}
	return from, to.AddDate(0, 0, 1), nil
}

func (s *ReportService) CustomersOrders(shopID uint, orderBy, sort string) ([]repository.CustomerOrderRow, error) {
	return s.Reports.CustomersOrders(shopID, orderBy, sort)
}

func (s *ReportService) ChefsOrders(shopID uint, fromStr, toStr string) ([]repository.StaffOrderRow, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return s.Reports.ChefsOrders(shopID, from, to)
}

func (s *ReportService) IssuersOrders(shopID uint, fromStr, toStr string) ([]repository.StaffOrderRow, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return s.Reports.IssuersOrders(shopID, from, to)
}

func (s *ReportService) Income(shopID uint, fromStr, toStr string) (*repository.IncomeRow, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return s.Reports.Income(shopID, from, to)
}

type NewCustomersReport struct {
	Count     int               `json:"count"`
	Customers []entity.Customer `json:"customers"`
}

func (s *ReportService) NewCustomers(shopID uint, fromStr, toStr string) (*NewCustomersReport, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	customers, err := s.Reports.NewCustomers(shopID, from, to)
	if err != nil {
		return nil, err
	}
	return &NewCustomersReport{Count: len(customers), Customers: customers}, nil
}

func (s *ReportService) TopSellingItems(shopID uint, fromStr, toStr, sort string) ([]repository.TopItemRow, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	return s.Reports.TopSellingItems(shopID, from, to, sort)
}
