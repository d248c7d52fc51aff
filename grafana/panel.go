package grafana

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// PanelType is the type of a panel.
type PanelType string

// The list of supported panel types.
const (
	PanelSingleStat PanelType = "singlestat"
	PanelGraph      PanelType = "graph"
)

// UnitFormat specifies the unit of the values a panel displays.
type UnitFormat string

// The list of supported unit formats.
const (
	UnitShort   UnitFormat = "short"
	UnitOps     UnitFormat = "ops"
	UnitSeconds UnitFormat = "s"
	UnitPercent UnitFormat = "percent"
	UnitBytes   UnitFormat = "bytes"
)

// Target is one query expression plus its series naming template.
type Target struct {
	Expr         string `json:"expr"`
	LegendFormat string `json:"legendFormat,omitempty"`
}

// Sparkline configures the miniature graph drawn behind a singlestat
// value.
type Sparkline struct {
	Show bool `json:"show"`
}

// SingleStat holds the options specific to singlestat panels.
type SingleStat struct {
	ValueName string     `json:"valueName"`
	Format    UnitFormat `json:"format"`
	Sparkline Sparkline  `json:"sparkline"`
}

// Axis describes one y-axis of a graph panel.
type Axis struct {
	Format UnitFormat `json:"format"`
	Min    *float64   `json:"min,omitempty"`
	Max    *float64   `json:"max,omitempty"`
}

// YAxes holds the two y-axes of a graph panel.
type YAxes struct {
	Left  *Axis `json:"left,omitempty"`
	Right *Axis `json:"right,omitempty"`
}

// Graph holds the options specific to graph panels.
type Graph struct {
	YAxes YAxes `json:"yaxes"`
}

// Panel is a single visualization backed by one or more query targets.
// Exactly one of SingleStat or Graph must be set; serialization
// dispatches on which one it is.
type Panel struct {
	ID         int
	Title      string
	Datasource string
	Targets    []Target

	SingleStat *SingleStat
	Graph      *Graph
}

// Float64 returns a pointer to v, for optional axis bounds.
func Float64(v float64) *float64 {
	return &v
}

type singleStatJSON struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Type       PanelType  `json:"type"`
	Datasource string     `json:"datasource"`
	Targets    []Target   `json:"targets"`
	ValueName  string     `json:"valueName"`
	Format     UnitFormat `json:"format"`
	Sparkline  Sparkline  `json:"sparkline"`
}

type graphJSON struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Type       PanelType `json:"type"`
	Datasource string    `json:"datasource"`
	Targets    []Target  `json:"targets"`
	YAxes      YAxes     `json:"yaxes"`
}

// MarshalJSON serializes the panel with a "type" tag so consumers (and
// UnmarshalJSON) can tell the variants apart.
func (p Panel) MarshalJSON() ([]byte, error) {
	switch {
	case p.SingleStat != nil && p.Graph == nil:
		return json.Marshal(singleStatJSON{
			ID:         p.ID,
			Title:      p.Title,
			Type:       PanelSingleStat,
			Datasource: p.Datasource,
			Targets:    p.Targets,
			ValueName:  p.SingleStat.ValueName,
			Format:     p.SingleStat.Format,
			Sparkline:  p.SingleStat.Sparkline,
		})
	case p.Graph != nil && p.SingleStat == nil:
		return json.Marshal(graphJSON{
			ID:         p.ID,
			Title:      p.Title,
			Type:       PanelGraph,
			Datasource: p.Datasource,
			Targets:    p.Targets,
			YAxes:      p.Graph.YAxes,
		})
	}
	return nil, errors.Errorf("panel %q: exactly one variant must be set", p.Title)
}

// UnmarshalJSON restores a panel from its tagged representation.
func (p *Panel) UnmarshalJSON(data []byte) error {
	var head struct {
		Type PanelType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case PanelSingleStat:
		var wire singleStatJSON
		if err := json.Unmarshal(data, &wire); err != nil {
			return err
		}
		*p = Panel{
			ID:         wire.ID,
			Title:      wire.Title,
			Datasource: wire.Datasource,
			Targets:    wire.Targets,
			SingleStat: &SingleStat{
				ValueName: wire.ValueName,
				Format:    wire.Format,
				Sparkline: wire.Sparkline,
			},
		}
	case PanelGraph:
		var wire graphJSON
		if err := json.Unmarshal(data, &wire); err != nil {
			return err
		}
		*p = Panel{
			ID:         wire.ID,
			Title:      wire.Title,
			Datasource: wire.Datasource,
			Targets:    wire.Targets,
			Graph: &Graph{
				YAxes: wire.YAxes,
			},
		}
	default:
		return errors.Errorf("unknown panel type %q", head.Type)
	}

	return nil
}
