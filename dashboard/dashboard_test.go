package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorzel/booking-dashboards/grafana"
)

var testBoard = grafana.Board{
	UID:   "test",
	Title: "Test",
	Rows: []grafana.Row{{
		Title: "Thingy",
		Panels: []grafana.Panel{{
			Title: "A",
			Targets: []grafana.Target{{
				Expr:         `rate(test_metric[{{range}}])`,
				LegendFormat: "A",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitOps}},
			},
		}, {
			Title: "B",
			Targets: []grafana.Target{{
				Expr:         `test_other_metric`,
				LegendFormat: "B",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitShort}},
			},
		}},
	}},
}

func TestResolveQueries(t *testing.T) {
	board := testBoard
	board.Rows = []grafana.Row{{
		Panels: []grafana.Panel{{
			Targets: []grafana.Target{{Expr: `{{foo}}`}},
		}},
	}}

	resolveQueries(&board, "{{foo}}", "bar")
	assert.Equal(t, "bar", board.Rows[0].Panels[0].Targets[0].Expr)
}

func TestResolveDoesNotMutateTemplate(t *testing.T) {
	provider := &promqlProvider{board: &testBoard}
	assert.NoError(t, provider.Init())

	resolved, err := resolve(provider.GetBoard(), &Config{Range: "1m"})
	assert.NoError(t, err)

	assert.Equal(t, `rate(test_metric[1m])`, resolved.Rows[0].Panels[0].Targets[0].Expr)
	assert.Equal(t, `rate(test_metric[{{range}}])`, testBoard.Rows[0].Panels[0].Targets[0].Expr)
}

func TestGetDashboardByID(t *testing.T) {
	assert.NoError(t, Init())
	defer Deinit()

	board, err := GetDashboardByID(BookingServiceID, nil)
	assert.NoError(t, err)
	assert.NotNil(t, board)
	assert.Equal(t, "Booking Service Monitoring", board.Title)

	// Default range resolution.
	assert.Contains(t, board.Rows[0].Panels[3].Targets[0].Expr, "[5m]")

	board, err = GetDashboardByID(BookingServiceID, &Config{Range: "10m"})
	assert.NoError(t, err)
	assert.Contains(t, board.Rows[0].Panels[3].Targets[0].Expr, "[10m]")

	board, err = GetDashboardByID("nope", nil)
	assert.NoError(t, err)
	assert.Nil(t, board)
}

func TestGetDashboards(t *testing.T) {
	assert.NoError(t, Init())
	defer Deinit()

	// Missing metrics: nothing to show.
	boards, err := GetDashboards([]string{"go_goroutines"}, nil)
	assert.NoError(t, err)
	assert.Len(t, boards, 0)

	boards, err = GetDashboards(bookingService.GetRequiredMetrics(), nil)
	assert.NoError(t, err)
	assert.Len(t, boards, 1)
	assert.Equal(t, "Booking Service Monitoring", boards[0].Title)
}
