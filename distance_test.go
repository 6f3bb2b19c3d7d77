package go_diveknn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randRecord(r *rand.Rand) Record {
	var f Features
	for i := range f {
		f[i] = r.Float64() * 40
	}
	return MustRecord(f, string(Labels[r.Intn(len(Labels))]))
}

func Test_TemperatureDistance_ZeroForSameTemperatures(t *testing.T) {
	a := MustRecord(Features{MeanDepth: 1, MeanTemp: 3, MedianTemp: 5, SDTemp: 1, IQRTemp: 2}, "S")
	b := MustRecord(Features{MeanDepth: 9, MeanTemp: 30, MedianTemp: 5, SDTemp: 1, IQRTemp: 2}, "T")
	assert.Equal(t, 0.0, TemperatureDistance.Distance(a, b))
}

func Test_TemperatureDistance_CountsIQRTwice(t *testing.T) {
	a := MustRecord(Features{}, "S")
	b := MustRecord(Features{MedianTemp: 1, SDTemp: 2, IQRTemp: 2}, "S")
	assert.InDelta(t, math.Sqrt(13), TemperatureDistance.Distance(a, b), 1e-12)

	c := MustRecord(Features{IQRTemp: 3}, "S")
	assert.InDelta(t, math.Sqrt(18), TemperatureDistance.Distance(a, c), 1e-12)
}

func Test_AllFeaturesDistance(t *testing.T) {
	a := MustRecord(Features{}, "S")
	b := MustRecord(Features{1, 1, 1, 1, 1, 1, 1, 1}, "S")
	assert.InDelta(t, math.Sqrt(8), AllFeaturesDistance.Distance(a, b), 1e-12)
}

func Test_Metrics_NonNegativeAndSymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	records := make([]Record, 50)
	for i := range records {
		records[i] = randRecord(r)
	}
	scale, err := ComputeScale(records)
	require.NoError(t, err)

	for _, name := range MetricNames {
		metric, err := NewMetric(name, scale)
		require.NoError(t, err, name)
		for i := 1; i < len(records); i++ {
			d := metric.Distance(records[i-1], records[i])
			assert.True(t, d >= 0, "%s: %f", name, d)
			assert.InDelta(t, d, metric.Distance(records[i], records[i-1]), 1e-12, name)
		}
	}
}

func Test_ScaledDistance(t *testing.T) {
	records := []Record{
		MustRecord(Features{1, 1, 1, 1, 1, 1, 1, 1}, "S"),
		MustRecord(Features{3, 3, 3, 3, 3, 3, 3, 3}, "T"),
	}
	scale, err := ComputeScale(records)
	require.NoError(t, err)

	// Every feature has a deviation of 1, so each standardized gap is 2.
	scaled, err := NewMetric(MetricScaled, scale)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, scaled.Distance(records[0], records[1]), 1e-12)

	scaledAll, err := NewMetric(MetricScaledAll, scale)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32), scaledAll.Distance(records[0], records[1]), 1e-12)
}

func Test_NewMetric_Degenerate(t *testing.T) {
	scale, err := ComputeScale([]Record{MustRecord(Features{1, 2, 3, 4, 5, 6, 7, 8}, "S")})
	require.NoError(t, err)

	metric, err := NewMetric(MetricScaled, scale)
	assert.Nil(t, metric)
	var degenerate *DegenerateScalingError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, MedianDepth, degenerate.Feature)

	// Raw metrics do not depend on the scale.
	metric, err = NewMetric(MetricTemperature, scale)
	assert.NoError(t, err)
	assert.NotNil(t, metric)
}

func Test_NewMetric_Unknown(t *testing.T) {
	_, err := NewMetric("manhattan", ScaleStatistics{})
	assert.EqualError(t, err, "invalid metric manhattan: unknown distance metric")
}
