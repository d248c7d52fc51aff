package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

type mockValueNone struct{}

func (mockValueNone) Type() model.ValueType { return model.ValNone }
func (mockValueNone) String() string        { return "none" }

// mockPrometheus serves canned metric names from files under
// <dataDir>/testdata, keyed by the job label of the discovery query.
type mockPrometheus struct {
	dataDir string
}

var _ v1.API = &mockPrometheus{}

func newPrometheusMock(dataDir string) *mockPrometheus {
	return &mockPrometheus{
		dataDir: dataDir,
	}
}

func getLabelValue(expression, label string) string {
	index := strings.Index(expression, label)
	if index == -1 {
		return ""
	}

	start := index + len(label) + 2 /* =" */
	end := strings.Index(expression[start:], `"`)
	if end == -1 {
		return ""
	}

	return expression[start : start+end]
}

type metricsResponse struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
}

// Query answers the count by(__name__) discovery queries.
func (mock *mockPrometheus) Query(ctx context.Context, query string, ts time.Time) (model.Value, error) {
	job := getLabelValue(query, "job")

	data, err := ioutil.ReadFile(filepath.Join(mock.dataDir, "testdata", fmt.Sprintf("metrics-%s.json", job)))
	if err != nil {
		// Treat the absence of mock data as an absence of the data that has been asked for.
		return model.Vector{}, nil
	}

	response := metricsResponse{}
	if err = json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	vector := make(model.Vector, 0, len(response.Data))
	for _, name := range response.Data {
		vector = append(vector, &model.Sample{
			Metric: model.Metric{model.MetricNameLabel: model.LabelValue(name)},
			Value:  1,
		})
	}
	return vector, nil
}

// QueryRange performs a query for the given range.
func (mock *mockPrometheus) QueryRange(ctx context.Context, query string, r v1.Range) (model.Value, error) {
	return &mockValueNone{}, errors.New("Not implemented")
}

// LabelValues performs a query for the values of the given label.
func (mock *mockPrometheus) LabelValues(ctx context.Context, label string) (model.LabelValues, error) {
	return nil, errors.New("Not implemented")
}

// Series finds series by label matchers.
func (mock *mockPrometheus) Series(ctx context.Context, matches []string, startTime, endTime time.Time) ([]model.LabelSet, error) {
	return nil, errors.New("Not implemented")
}
