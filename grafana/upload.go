package grafana

import (
	"bytes"
	"encoding/json"
	"io"
)

// ImportInput is a templated input of Grafana's dashboard import API.
// We don't use any, but the API expects the field to be present.
type ImportInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	PluginID string `json:"pluginId,omitempty"`
	Value    string `json:"value"`
}

// UploadRequest is the envelope accepted by POST /api/dashboards/import.
type UploadRequest struct {
	Dashboard *Board        `json:"dashboard"`
	Overwrite bool          `json:"overwrite"`
	Inputs    []ImportInput `json:"inputs"`
}

// NewUploadRequest wraps a board in an import envelope. Overwrite is
// always set so re-running the generator updates the existing
// dashboard in place.
func NewUploadRequest(board *Board) UploadRequest {
	return UploadRequest{
		Dashboard: board,
		Overwrite: true,
		Inputs:    []ImportInput{},
	}
}

// Encode writes the envelope to w as 2-space-indented JSON with a
// trailing newline. An unrepresentable value in the board (unknown
// panel variant, non-finite number) fails the whole write.
func (r UploadRequest) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// Marshal returns the document Encode would write.
func (r UploadRequest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
