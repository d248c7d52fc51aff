package dashboard

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorzel/booking-dashboards/grafana"
)

func TestBookingBoardShape(t *testing.T) {
	assert.Equal(t, "Booking Service Monitoring", bookingBoard.Title)
	assert.Equal(t, []string{"booking-service", "events", "bookings"}, bookingBoard.Tags)
	assert.Equal(t, "browser", bookingBoard.Timezone)
	assert.Equal(t, "30s", bookingBoard.Refresh)

	assert.Len(t, bookingBoard.Templating.List, 1)
	variable := bookingBoard.Templating.List[0]
	assert.Equal(t, "datasource", variable.Name)
	assert.Equal(t, "Data Source", variable.Label)
	assert.Equal(t, "datasource", variable.Type)
	assert.Equal(t, "prometheus", variable.Query)

	titles := []string{"Overview", "Business Metrics", "HTTP Performance", "Error Rates", "System Metrics"}
	panelCounts := []int{4, 2, 2, 2, 2}
	assert.Len(t, bookingBoard.Rows, len(titles))
	for r, row := range bookingBoard.Rows {
		assert.Equal(t, titles[r], row.Title)
		assert.Len(t, row.Panels, panelCounts[r])
	}
}

func TestBookingBoardPanels(t *testing.T) {
	total := 0
	err := forEachPanel(&bookingBoard, func(panel *grafana.Panel, path *Path) error {
		total++

		assert.NotEmpty(t, panel.Title)
		assert.Equal(t, "$datasource", panel.Datasource)
		assert.NotEmpty(t, panel.Targets, panel.Title)
		for _, target := range panel.Targets {
			assert.NotEmpty(t, target.Expr, panel.Title)
			assert.NotEmpty(t, target.LegendFormat, panel.Title)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 12, total)

	// The Overview row is singlestats, everything else graphs.
	for r, row := range bookingBoard.Rows {
		for _, panel := range row.Panels {
			if r == 0 {
				assert.NotNil(t, panel.SingleStat, panel.Title)
				assert.Nil(t, panel.Graph, panel.Title)
			} else {
				assert.NotNil(t, panel.Graph, panel.Title)
				assert.Nil(t, panel.SingleStat, panel.Title)
			}
		}
	}
}

func TestBookingBoardPanelIDs(t *testing.T) {
	board, err := resolve(&bookingBoard, nil)
	assert.NoError(t, err)

	var ids []int
	forEachPanel(board, func(panel *grafana.Panel, path *Path) error {
		ids = append(ids, panel.ID)
		return nil
	})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, ids)

	// The registered template is left untouched.
	forEachPanel(&bookingBoard, func(panel *grafana.Panel, path *Path) error {
		assert.Equal(t, 0, panel.ID)
		return nil
	})
}

func TestBookingBoardRequiredMetrics(t *testing.T) {
	provider := &promqlProvider{board: &bookingBoard}
	assert.NoError(t, provider.Init())

	assert.Equal(t, []string{
		"booking_service_bookings_created_total",
		"booking_service_events_created_total",
		"booking_service_http_request_duration_seconds_bucket",
		"booking_service_http_request_duration_seconds_count",
		"booking_service_tickets_booked_total",
		"go_goroutines",
		"go_memstats_alloc_bytes",
		"go_memstats_heap_alloc_bytes",
	}, provider.GetRequiredMetrics())

	// Per-panel lookup: the latency panel only uses the histogram
	// buckets.
	assert.Equal(t, []string{
		"booking_service_http_request_duration_seconds_bucket",
		"booking_service_http_request_duration_seconds_bucket",
		"booking_service_http_request_duration_seconds_bucket",
	}, provider.GetPanelMetrics(&Path{2, 1}))
	assert.Nil(t, provider.GetPanelMetrics(&Path{12, 13}))
}

// Exercise the full build -> finalize -> serialize pipeline the
// generator runs.
func TestGeneratedDocument(t *testing.T) {
	assert.NoError(t, Init())
	defer Deinit()

	generate := func() []byte {
		board, err := GetDashboardByID(BookingServiceID, nil)
		assert.NoError(t, err)
		data, err := grafana.NewUploadRequest(board).Marshal()
		assert.NoError(t, err)
		return data
	}

	first := generate()

	var document struct {
		Dashboard struct {
			Title string   `json:"title"`
			Tags  []string `json:"tags"`
		} `json:"dashboard"`
		Overwrite bool              `json:"overwrite"`
		Inputs    []json.RawMessage `json:"inputs"`
	}
	assert.NoError(t, json.Unmarshal(first, &document))
	assert.Equal(t, "Booking Service Monitoring", document.Dashboard.Title)
	assert.Equal(t, []string{"booking-service", "events", "bookings"}, document.Dashboard.Tags)
	assert.True(t, document.Overwrite)
	assert.Len(t, document.Inputs, 0)

	// Two invocations produce byte-identical output.
	assert.Equal(t, string(first), string(generate()))
}

func TestBookingBoardNoUnresolvedPlaceholders(t *testing.T) {
	board, err := resolve(&bookingBoard, nil)
	assert.NoError(t, err)

	forEachPanel(board, func(panel *grafana.Panel, path *Path) error {
		for _, target := range panel.Targets {
			assert.False(t, strings.Contains(target.Expr, "{{range}}"), target.Expr)
		}
		return nil
	})
}
