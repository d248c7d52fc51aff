package dashboard

import (
	"github.com/jorzel/booking-dashboards/grafana"
)

// BookingServiceID is the uid of the booking service monitoring board.
const BookingServiceID = "booking-service"

// The queries below match the metrics the booking service exports:
// counters for created events/bookings/booked tickets labelled by
// outcome, an HTTP duration histogram labelled by method/path/status,
// and the standard Go runtime collectors.
var bookingBoard = grafana.Board{
	UID:           BookingServiceID,
	Title:         "Booking Service Monitoring",
	Description:   "Comprehensive monitoring dashboard for the Booking Service",
	Tags:          []string{"booking-service", "events", "bookings"},
	Timezone:      "browser",
	Refresh:       "30s",
	SchemaVersion: 16,
	Templating: grafana.Templating{
		List: []grafana.TemplateVar{{
			Name:  "datasource",
			Label: "Data Source",
			Type:  "datasource",
			Query: "prometheus",
		}},
	},
	Rows: []grafana.Row{{
		Title: "Overview",
		Panels: []grafana.Panel{{
			Title:      "Total Events Created",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `sum(booking_service_events_created_total)`,
				LegendFormat: "Events",
			}},
			SingleStat: &grafana.SingleStat{
				ValueName: "current",
				Format:    grafana.UnitShort,
				Sparkline: grafana.Sparkline{Show: true},
			},
		}, {
			Title:      "Total Bookings Created",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `sum(booking_service_bookings_created_total)`,
				LegendFormat: "Bookings",
			}},
			SingleStat: &grafana.SingleStat{
				ValueName: "current",
				Format:    grafana.UnitShort,
				Sparkline: grafana.Sparkline{Show: true},
			},
		}, {
			Title:      "Total Tickets Booked",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `sum(booking_service_tickets_booked_total)`,
				LegendFormat: "Tickets",
			}},
			SingleStat: &grafana.SingleStat{
				ValueName: "current",
				Format:    grafana.UnitShort,
				Sparkline: grafana.Sparkline{Show: true},
			},
		}, {
			Title:      "Request Rate (req/s)",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `rate(booking_service_http_request_duration_seconds_count[{{range}}])`,
				LegendFormat: "Rate",
			}},
			SingleStat: &grafana.SingleStat{
				ValueName: "current",
				Format:    grafana.UnitOps,
				Sparkline: grafana.Sparkline{Show: true},
			},
		}},
	}, {
		Title: "Business Metrics",
		Panels: []grafana.Panel{{
			Title:      "Events Created Over Time",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `rate(booking_service_events_created_total{status="success"}[{{range}}])`,
				LegendFormat: "Success",
			}, {
				Expr:         `rate(booking_service_events_created_total{status="error"}[{{range}}])`,
				LegendFormat: "Error",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitOps}},
			},
		}, {
			Title:      "Bookings Created Over Time",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `rate(booking_service_bookings_created_total{status="success"}[{{range}}])`,
				LegendFormat: "Success",
			}, {
				Expr:         `rate(booking_service_bookings_created_total{status="error"}[{{range}}])`,
				LegendFormat: "Error",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitOps}},
			},
		}},
	}, {
		Title: "HTTP Performance",
		Panels: []grafana.Panel{{
			Title:      "Request Rate by Endpoint",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `rate(booking_service_http_request_duration_seconds_count[{{range}}])`,
				LegendFormat: "{{method}} {{path}}",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitOps}},
			},
		}, {
			Title:      "Response Time (p50, p95, p99)",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `histogram_quantile(0.50, rate(booking_service_http_request_duration_seconds_bucket[{{range}}]))`,
				LegendFormat: "p50",
			}, {
				Expr:         `histogram_quantile(0.95, rate(booking_service_http_request_duration_seconds_bucket[{{range}}]))`,
				LegendFormat: "p95",
			}, {
				Expr:         `histogram_quantile(0.99, rate(booking_service_http_request_duration_seconds_bucket[{{range}}]))`,
				LegendFormat: "p99",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitSeconds}},
			},
		}},
	}, {
		Title: "Error Rates",
		Panels: []grafana.Panel{{
			Title:      "HTTP Error Rate by Status Code",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `rate(booking_service_http_request_duration_seconds_count{status=~"4.."}[{{range}}])`,
				LegendFormat: "4xx - {{status}}",
			}, {
				Expr:         `rate(booking_service_http_request_duration_seconds_count{status=~"5.."}[{{range}}])`,
				LegendFormat: "5xx - {{status}}",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitOps}},
			},
		}, {
			Title:      "Error Rate Percentage",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `rate(booking_service_http_request_duration_seconds_count{status=~"[45].."}[{{range}}]) / rate(booking_service_http_request_duration_seconds_count[{{range}}]) * 100`,
				LegendFormat: "Error %",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{
					Left: &grafana.Axis{
						Format: grafana.UnitPercent,
						Min:    grafana.Float64(0),
						Max:    grafana.Float64(100),
					},
				},
			},
		}},
	}, {
		Title: "System Metrics",
		Panels: []grafana.Panel{{
			Title:      "Go Goroutines",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `go_goroutines`,
				LegendFormat: "Goroutines",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitShort}},
			},
		}, {
			Title:      "Memory Usage",
			Datasource: "$datasource",
			Targets: []grafana.Target{{
				Expr:         `go_memstats_alloc_bytes`,
				LegendFormat: "Allocated",
			}, {
				Expr:         `go_memstats_heap_alloc_bytes`,
				LegendFormat: "Heap",
			}},
			Graph: &grafana.Graph{
				YAxes: grafana.YAxes{Left: &grafana.Axis{Format: grafana.UnitBytes}},
			},
		}},
	}},
}

var bookingService = &promqlProvider{
	board: &bookingBoard,
}
