package models

import (
	"testing"

	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

func TestCalculateMetadata(t *testing.T) {
	m := CalculateMetadata(12, 2, 5)
	if m.LastPage != 3 || m.FirstPage != 1 || m.TotalRecords != 12 || m.CurrentPage != 2 {
		t.Fatalf("unexpected metadata: %+v", m)
	}

	empty := CalculateMetadata(0, 1, 10)
	if empty.LastPage != 0 || empty.FirstPage != 0 || empty.TotalRecords != 0 {
		t.Fatalf("unexpected empty metadata: %+v", empty)
	}
}

func TestFilters_SortAndPaging(t *testing.T) {
	f, err := NewFilters(3, 20, "-total_profit", SimulationSortSafelist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.SortColumn() != "total_profit" || f.SortDirection() != "DESC" {
		t.Fatalf("got %s %s", f.SortColumn(), f.SortDirection())
	}
	if f.Limit() != 20 || f.Offset() != 40 {
		t.Fatalf("limit/offset = %d/%d", f.Limit(), f.Offset())
	}

	f.Sort = "id; DROP TABLE simulations"
	if f.SortColumn() != "created_at" {
		t.Fatalf("unknown sort must fall back to created_at, got %s", f.SortColumn())
	}
}

func TestFilters_Validate(t *testing.T) {
	f := DefaultSimulationFilters()
	v := validator.New()
	f.Validate(v)
	if !v.Valid() {
		t.Fatalf("default filters must be valid: %v", v.Errors)
	}

	f.PageSize = 101
	f.Page = 0
	f.Sort = "name"
	v = validator.New()
	f.Validate(v)
	for _, key := range []string{"page", "page_size", "sort"} {
		if _, ok := v.Errors[key]; !ok {
			t.Errorf("expected error for %s", key)
		}
	}
}

func TestNewFilters_EmptySafelist(t *testing.T) {
	if _, err := NewFilters(1, 10, "created_at", nil); err == nil {
		t.Fatalf("expected error for empty safelist")
	}
}
