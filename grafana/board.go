// Package grafana models the subset of the Grafana dashboard document
// we generate, and the envelope accepted by the dashboard import API.
package grafana

// Templating holds the dashboard template variables.
type Templating struct {
	List []TemplateVar `json:"list"`
}

// TemplateVar is a dashboard-level substitution token, referenced by
// panels as $name.
type TemplateVar struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
	Type  string `json:"type"`
	Query string `json:"query"`
}

// Row is a horizontal grouping of panels.
type Row struct {
	Title  string  `json:"title"`
	Panels []Panel `json:"panels"`
}

// Board is a Grafana dashboard document.
type Board struct {
	UID           string     `json:"uid,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Tags          []string   `json:"tags"`
	Timezone      string     `json:"timezone"`
	Refresh       string     `json:"refresh"`
	SchemaVersion int        `json:"schemaVersion"`
	Templating    Templating `json:"templating"`
	Rows          []Row      `json:"rows"`
}

// panelIDBase is the id given to the first panel. Grafana only requires
// ids to be unique within a dashboard; starting at 1 keeps deep links
// stable across regenerations.
const panelIDBase = 1

// AutoPanelIDs assigns a sequential integer id to every panel, walking
// rows in order and panels within each row in order. Calling it again
// reassigns the same ids.
func (b *Board) AutoPanelIDs() {
	id := panelIDBase
	for r := range b.Rows {
		for p := range b.Rows[r].Panels {
			b.Rows[r].Panels[p].ID = id
			id++
		}
	}
}
