package go_diveknn

import (
	"math"
)

// DistanceMetric measures the dissimilarity of two records.
// Implementations must be safe for concurrent use.
type DistanceMetric interface {
	Distance(a, b Record) float64
}

// DistanceFunc adapts a plain function to DistanceMetric.
type DistanceFunc func(a, b Record) float64

func (f DistanceFunc) Distance(a, b Record) float64 {
	return f(a, b)
}

// Metric names accepted by NewMetric.
const (
	MetricTemperature = "temperature"
	MetricAll         = "all"
	MetricScaled      = "scaled"
	MetricScaledAll   = "scaled-all"
)

// MetricNames lists the built-in metrics, default first.
var MetricNames = []string{MetricTemperature, MetricAll, MetricScaled, MetricScaledAll}

// scaledFeatures are the descriptors compared by the "scaled" metric.
var scaledFeatures = []Feature{MedianDepth, SDDepth, MeanTemp, IQRTemp}

var allFeatures = []Feature{
	MeanDepth, MedianDepth, SDDepth, IQRDepth,
	MeanTemp, MedianTemp, SDTemp, IQRTemp,
}

// TemperatureDistance is the default metric. It compares medianTemp, sdTemp
// and iqrTemp, with the iqrTemp term counted twice.
var TemperatureDistance DistanceMetric = DistanceFunc(func(a, b Record) float64 {
	median := a.MedianTemp() - b.MedianTemp()
	sd := a.SDTemp() - b.SDTemp()
	iqr := a.IQRTemp() - b.IQRTemp()
	return math.Sqrt(median*median + iqr*iqr + sd*sd + iqr*iqr)
})

// AllFeaturesDistance is the Euclidean distance over all eight raw descriptors.
var AllFeaturesDistance DistanceMetric = DistanceFunc(func(a, b Record) float64 {
	return euclidean(a, b, allFeatures)
})

func euclidean(a, b Record, features []Feature) float64 {
	sum := 0.0
	for _, f := range features {
		d := a.features[f] - b.features[f]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ScaledDistance is the Euclidean distance over standardized features.
type ScaledDistance struct {
	scale    ScaleStatistics
	features []Feature
}

// NewScaledDistance fails with a DegenerateScalingError when any of the
// features has a zero standard deviation.
func NewScaledDistance(scale ScaleStatistics, features ...Feature) (*ScaledDistance, error) {
	if f, ok := scale.Degenerate(features...); ok {
		return nil, &DegenerateScalingError{Feature: f}
	}
	return &ScaledDistance{scale: scale, features: append([]Feature(nil), features...)}, nil
}

func (s *ScaledDistance) Distance(a, b Record) float64 {
	sum := 0.0
	for _, f := range s.features {
		// The mean cancels out; only the deviation matters.
		d := (a.features[f] - b.features[f]) / s.scale.StdDev.features[f]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// NewMetric resolves a metric by name against the given scale.
func NewMetric(name string, scale ScaleStatistics) (DistanceMetric, error) {
	switch name {
	case "", MetricTemperature:
		return TemperatureDistance, nil
	case MetricAll:
		return AllFeaturesDistance, nil
	case MetricScaled:
		return scaledMetric(scale, scaledFeatures)
	case MetricScaledAll:
		return scaledMetric(scale, allFeatures)
	default:
		return nil, &InvalidConfigError{Field: "metric", Value: name, Reason: "unknown distance metric"}
	}
}

func scaledMetric(scale ScaleStatistics, features []Feature) (DistanceMetric, error) {
	m, err := NewScaledDistance(scale, features...)
	if err != nil {
		return nil, err
	}
	return m, nil
}
