// Package dashboard declares the booking service monitoring dashboards
// and knows, given the metrics a Prometheus instance holds, which of
// them can be shown.
package dashboard

import (
	"strings"

	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"

	"github.com/jorzel/booking-dashboards/grafana"
)

// DefaultRange is the range vector window queries are resolved with
// when no override is given.
const DefaultRange = "5m"

// Config controls how dashboard templates are resolved before use.
type Config struct {
	// Range is the range vector window, eg "5m".
	Range string
}

func forEachPanel(board *grafana.Board, f func(panel *grafana.Panel, path *Path) error) error {
	for r := range board.Rows {
		row := &board.Rows[r]
		for p := range row.Panels {
			if err := f(&row.Panels[p], &Path{r, p}); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveQueries(board *grafana.Board, oldnew ...string) {
	replacer := strings.NewReplacer(oldnew...)

	forEachPanel(board, func(panel *grafana.Panel, path *Path) error {
		for t := range panel.Targets {
			panel.Targets[t].Expr = replacer.Replace(panel.Targets[t].Expr)
		}
		return nil
	})
}

// resolve deep-copies the template so registered boards are never
// mutated, substitutes query placeholders and assigns panel ids.
func resolve(template *grafana.Board, cfg *Config) (*grafana.Board, error) {
	copied, err := copystructure.Copy(*template)
	if err != nil {
		return nil, err
	}
	board, ok := copied.(grafana.Board)
	if !ok {
		return nil, errors.New("couldn't deepcopy board")
	}

	window := DefaultRange
	if cfg != nil && cfg.Range != "" {
		window = cfg.Range
	}
	resolveQueries(&board, "{{range}}", window)
	board.AutoPanelIDs()

	return &board, nil
}

// GetDashboardByID returns a ready-to-serialize copy of the registered
// board with the given uid: queries resolved, panel ids assigned. It
// returns nil when no such board is registered.
func GetDashboardByID(id string, cfg *Config) (*grafana.Board, error) {
	for _, provider := range providers {
		if provider.GetBoard().UID == id {
			return resolve(provider.GetBoard(), cfg)
		}
	}
	return nil, nil
}

// GetDashboards returns resolved copies of every registered board whose
// required metrics are all present in metrics.
func GetDashboards(metrics []string, cfg *Config) ([]grafana.Board, error) {
	// For O(1) metric existence check.
	metricsMap := make(map[string]bool)
	for _, metric := range metrics {
		metricsMap[metric] = true
	}

	var boards []grafana.Board
nextProvider:
	for _, provider := range providers {
		for _, required := range provider.GetRequiredMetrics() {
			if !metricsMap[required] {
				continue nextProvider
			}
		}

		board, err := resolve(provider.GetBoard(), cfg)
		if err != nil {
			return nil, err
		}
		boards = append(boards, *board)
	}

	return boards, nil
}

// GetDashboardMetrics returns the metric names the board with the given
// uid needs, or nil for an unknown uid.
func GetDashboardMetrics(id string) []string {
	for _, provider := range providers {
		if provider.GetBoard().UID == id {
			return provider.GetRequiredMetrics()
		}
	}
	return nil
}

// Init initializes the dashboard package. It must be called first
// before any other API.
func Init() error {
	if providers == nil {
		registerProviders(
			bookingService,
		)
	}

	for _, provider := range providers {
		if err := provider.Init(); err != nil {
			return err
		}
	}
	return nil
}

// Deinit reverses what Init does.
func Deinit() {
	unregisterAllProviders()
}
