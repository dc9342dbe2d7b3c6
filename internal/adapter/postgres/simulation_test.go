package postgres

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

func TestSimulationPage_Sort(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{sort: "-created_at", want: "ORDER BY created_at DESC, id ASC"},
		{sort: "total_profit", want: "ORDER BY total_profit ASC, id ASC"},
		{sort: "-efficiency_score", want: "ORDER BY efficiency_score DESC, id ASC"},
		{sort: "created_at; DROP TABLE simulations", want: "ORDER BY created_at ASC, id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			f := models.DefaultSimulationFilters()
			f.Sort = tt.sort

			q := simulationPage.query(f)
			if !strings.Contains(q, tt.want) {
				t.Fatalf("query %q does not contain %q", q, tt.want)
			}
			if strings.Contains(q, "DROP") {
				t.Fatalf("unsafe sort value leaked into query: %q", q)
			}
		})
	}
}

func TestAssignmentRow_MatchesColumns(t *testing.T) {
	id := uuid.New()
	a := models.Assignment{
		OrderID: "17", DriverID: 4, DriverName: "Priya", RouteID: 3, IsOnTime: true,
		ActualTimeMin: 39, ProfitContribution: 1610, FuelCost: 40, Bonus: 150,
	}

	row := assignmentRow(id, 2, a)

	if len(row) != len(assignmentColumns) {
		t.Fatalf("row has %d values for %d columns", len(row), len(assignmentColumns))
	}
	if row[0] != id || row[1] != 2 || row[2] != "17" || row[7] != 39 {
		t.Fatalf("unexpected row %v", row)
	}
}
