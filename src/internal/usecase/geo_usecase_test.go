package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tolleasy-service/src/internal/model"
)

func TestCongestionLevel(t *testing.T) {
	cases := []struct {
		ratio    float64
		expected string
	}{
		{1.0, "Clear"},
		{1.19, "Clear"},
		{1.2, "Moderate traffic"},
		{1.49, "Moderate traffic"},
		{1.5, "Heavy traffic"},
		{1.99, "Heavy traffic"},
		{2.0, "Severe congestion"},
		{3.5, "Severe congestion"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, congestionLevel(tc.ratio), "ratio %.2f", tc.ratio)
	}
}

func TestOverallTraffic(t *testing.T) {
	probes := func(levels ...string) []model.DirectionProbe {
		out := make([]model.DirectionProbe, 0, len(levels))
		for _, level := range levels {
			out = append(out, model.DirectionProbe{CongestionLevel: level})
		}
		return out
	}

	cases := []struct {
		name          string
		levels        []model.DirectionProbe
		expectedText  string
		expectedScore int
	}{
		{
			"three severe directions",
			probes("Severe congestion", "Severe congestion", "Severe congestion", "Clear"),
			"Severe traffic congestion in the area", 10,
		},
		{
			"one severe direction",
			probes("Severe congestion", "Clear", "Clear"),
			"Heavy traffic in the area", 7,
		},
		{
			"three heavy directions",
			probes("Heavy traffic", "Heavy traffic", "Heavy traffic"),
			"Heavy traffic in the area", 7,
		},
		{
			"one heavy direction",
			probes("Heavy traffic", "Clear"),
			"Moderate traffic in the area", 4,
		},
		{
			"three moderate directions",
			probes("Moderate traffic", "Moderate traffic", "Moderate traffic"),
			"Moderate traffic in the area", 4,
		},
		{
			"all clear",
			probes("Clear", "Clear", "Moderate traffic"),
			"Generally clear traffic in the area", 1,
		},
		{
			"no probes",
			probes(),
			"Generally clear traffic in the area", 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, score := overallTraffic(tc.levels)
			assert.Equal(t, tc.expectedText, text)
			assert.Equal(t, tc.expectedScore, score)
		})
	}
}
