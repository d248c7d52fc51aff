package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLabelValue(t *testing.T) {
	tests := []struct {
		expression, label string
		expected          string
	}{
		{`{job="nodes"}`, "name", ""},
		{`{job="booking-service"}`, "job", "booking-service"},
		{`count by(__name__)({job="booking-service"})`, "job", "booking-service"},
		{`{job="booking-service",instance="booking-0"}`, "instance", "booking-0"},
	}

	for _, test := range tests {
		got := getLabelValue(test.expression, test.label)
		assert.Equal(t, test.expected, got)
	}
}
