package dashboard

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/prometheus/promql"

	"github.com/jorzel/booking-dashboards/grafana"
)

type provider interface {
	Init() error
	GetPanelMetrics(path *Path) []string
	GetRequiredMetrics() []string
	GetBoard() *grafana.Board
}

var providers []provider

func registerProviders(p ...provider) {
	providers = append(providers, p...)
}

func unregisterAllProviders() {
	providers = nil
}

// promqlProvider derives the metrics a board needs by parsing its panel
// queries.
type promqlProvider struct {
	requiredMetrics []string
	pathToMetrics   map[string][]string
	board           *grafana.Board
}

// parseMetrics walks the expression AST looking for metric names. Only
// Vector and Matrix selectors have those.
func parseMetrics(query string) ([]string, error) {
	var metrics []string

	expr, err := promql.ParseExpr(query)
	if err != nil {
		return nil, err
	}

	promql.Inspect(expr, func(node promql.Node, path []promql.Node) bool {
		switch n := node.(type) {
		case *promql.VectorSelector:
			metrics = append(metrics, n.Name)
		case *promql.MatrixSelector:
			metrics = append(metrics, n.Name)
		}
		return true
	})

	return metrics, nil
}

func (p *promqlProvider) Init() error {
	// Do the bare minimum to make the queries parsable.
	replacer := strings.NewReplacer(
		"{{range}}", DefaultRange,
	)

	// Parse the board queries and derive:
	//   - For each panel, the list of the metrics used in its targets
	//   - The list of required metrics
	p.requiredMetrics = nil
	p.pathToMetrics = make(map[string][]string)
	requiredMetricsMap := make(map[string]bool)
	if err := forEachPanel(p.board, func(panel *grafana.Panel, path *Path) error {
		for _, target := range panel.Targets {
			query := replacer.Replace(target.Expr)

			metrics, err := parseMetrics(query)
			if err != nil {
				return errors.Wrap(err, query)
			}

			p.pathToMetrics[path.String()] = append(p.pathToMetrics[path.String()], metrics...)

			for _, metric := range metrics {
				requiredMetricsMap[metric] = true
			}
		}

		return nil
	}); err != nil {
		return err
	}

	for metric := range requiredMetricsMap {
		p.requiredMetrics = append(p.requiredMetrics, metric)
	}
	sort.Strings(p.requiredMetrics)

	return nil
}

func (p *promqlProvider) GetPanelMetrics(path *Path) []string {
	if metrics, ok := p.pathToMetrics[path.String()]; ok {
		return metrics
	}
	return nil
}

func (p *promqlProvider) GetRequiredMetrics() []string {
	return p.requiredMetrics
}

func (p *promqlProvider) GetBoard() *grafana.Board {
	return p.board
}
