package go_diveknn

import (
	"gonum.org/v1/gonum/stat"
)

// ScaleStatistics holds the per-feature mean and population standard
// deviation of a record collection, each packed into a Record.
type ScaleStatistics struct {
	Mean   Record
	StdDev Record
}

// ComputeScale calculates ScaleStatistics over records.
// The standard deviation uses divisor n, so a single record yields zeros.
func ComputeScale(records []Record) (ScaleStatistics, error) {
	if len(records) == 0 {
		return ScaleStatistics{}, ErrNoRecords
	}
	column := make([]float64, len(records))
	var mean, sd Features
	for f := Feature(0); f < NumFeatures; f++ {
		for i, r := range records {
			column[i] = r.features[f]
		}
		mean[f], sd[f] = stat.PopMeanStdDev(column, nil)
	}
	return ScaleStatistics{Mean: aggregate(mean), StdDev: aggregate(sd)}, nil
}

// Standardize returns the z-score of v for feature f.
func (s ScaleStatistics) Standardize(f Feature, v float64) (float64, error) {
	sd := s.StdDev.features[f]
	if sd == 0 {
		return 0, &DegenerateScalingError{Feature: f}
	}
	return (v - s.Mean.features[f]) / sd, nil
}

// Degenerate returns the first of features with a zero standard deviation.
func (s ScaleStatistics) Degenerate(features ...Feature) (Feature, bool) {
	for _, f := range features {
		if s.StdDev.features[f] == 0 {
			return f, true
		}
	}
	return 0, false
}
