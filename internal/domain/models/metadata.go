package models

import (
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SimulationSortSafelist lists the sort keys accepted for run history.
var SimulationSortSafelist = []string{
	"-created_at", "created_at",
	"-total_profit", "total_profit",
	"-efficiency_score", "efficiency_score",
}

var (
	DriverSortSafelist = []string{"id", "-id", "name", "-name", "shift_hours", "-shift_hours"}
	RouteSortSafelist  = []string{"route_id", "-route_id", "distance_km", "-distance_km", "base_time_min", "-base_time_min"}
	OrderSortSafelist  = []string{"order_id", "-order_id", "value_rs", "-value_rs", "delivery_time", "-delivery_time"}
)

// Filters carries client supplied pagination and sorting for list endpoints.
// Sort must be one of SortSafelist; a leading hyphen means descending.
type Filters struct {
	Page         int
	PageSize     int
	Sort         string
	SortSafelist []string
}

func NewFilters(page int, pageSize int, sort string, sortSafelist []string) (Filters, error) {
	if len(sortSafelist) == 0 {
		return Filters{}, errors.New("length of sortSafeList must be greater than 0")
	}
	return Filters{
		Page:         page,
		PageSize:     pageSize,
		Sort:         sort,
		SortSafelist: sortSafelist,
	}, nil
}

// DefaultSimulationFilters returns the first history page, newest runs first.
func DefaultSimulationFilters() Filters {
	return Filters{
		Page:         DefaultPage,
		PageSize:     DefaultPageSize,
		Sort:         SimulationSortSafelist[0],
		SortSafelist: SimulationSortSafelist,
	}
}

func (f Filters) Validate(v *validator.Validator) {
	v.Check(f.Page > 0, "page", "must be greater than zero")
	v.Check(f.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(f.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(f.PageSize <= MaxPageSize, "page_size", "must be a maximum of 100")
	v.Check(validator.PermittedValue(f.Sort, f.SortSafelist...), "sort", "invalid sort value")
}

// SortColumn strips the direction prefix from a safelisted Sort value.
// Unknown values fall back to the first safelist entry.
func (f Filters) SortColumn() string {
	if slices.Contains(f.SortSafelist, f.Sort) {
		return strings.TrimPrefix(f.Sort, "-")
	}
	return strings.TrimPrefix(f.SortSafelist[0], "-")
}

func (f Filters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}
	return "ASC"
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	PageSize     int `json:"page_size"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	TotalRecords int `json:"total_records"`
}

// CalculateMetadata derives page metadata; LastPage is ceil(total/pageSize).
func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{
			CurrentPage: page,
			PageSize:    pageSize,
		}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(totalRecords) / float64(pageSize))),
		TotalRecords: totalRecords,
	}
}
