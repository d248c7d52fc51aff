package grafana

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalSingleStat(t *testing.T) {
	panel := Panel{
		ID:         4,
		Title:      "Total Things",
		Datasource: "$datasource",
		Targets:    []Target{{Expr: "sum(things_total)", LegendFormat: "Things"}},
		SingleStat: &SingleStat{
			ValueName: "current",
			Format:    UnitShort,
			Sparkline: Sparkline{Show: true},
		},
	}

	data, err := json.Marshal(panel)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 4,
		"title": "Total Things",
		"type": "singlestat",
		"datasource": "$datasource",
		"targets": [{"expr": "sum(things_total)", "legendFormat": "Things"}],
		"valueName": "current",
		"format": "short",
		"sparkline": {"show": true}
	}`, string(data))
}

func TestMarshalGraph(t *testing.T) {
	panel := Panel{
		ID:         7,
		Title:      "Error Rate Percentage",
		Datasource: "$datasource",
		Targets:    []Target{{Expr: "some_expr", LegendFormat: "Error %"}},
		Graph: &Graph{
			YAxes: YAxes{Left: &Axis{Format: UnitPercent, Min: Float64(0), Max: Float64(100)}},
		},
	}

	data, err := json.Marshal(panel)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"title": "Error Rate Percentage",
		"type": "graph",
		"datasource": "$datasource",
		"targets": [{"expr": "some_expr", "legendFormat": "Error %"}],
		"yaxes": {"left": {"format": "percent", "min": 0, "max": 100}}
	}`, string(data))
}

func TestMarshalInvalidVariant(t *testing.T) {
	// Neither variant set.
	_, err := json.Marshal(Panel{Title: "empty"})
	assert.Error(t, err)

	// Both variants set.
	_, err = json.Marshal(Panel{
		Title:      "both",
		SingleStat: &SingleStat{},
		Graph:      &Graph{},
	})
	assert.Error(t, err)
}

func TestUnmarshalPanel(t *testing.T) {
	original := Panel{
		ID:         1,
		Title:      "A",
		Datasource: "$datasource",
		Targets:    []Target{{Expr: "up", LegendFormat: "Up"}},
		SingleStat: &SingleStat{ValueName: "current", Format: UnitShort, Sparkline: Sparkline{Show: true}},
	}

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var restored Panel
	assert.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestUnmarshalUnknownPanelType(t *testing.T) {
	var panel Panel
	err := json.Unmarshal([]byte(`{"type": "heatmap"}`), &panel)
	assert.Error(t, err)
}
