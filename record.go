package go_diveknn

import (
	"strings"
)

// Label is the category code of a dive.
type Label string

const (
	LabelS  Label = "S"
	LabelT  Label = "T"
	LabelU  Label = "U"
	LabelV  Label = "V"
	LabelTX Label = "TX"
)

// Labels is the closed label set in voting order.
// Ties in a vote resolve towards the front of this list.
var Labels = [...]Label{LabelS, LabelT, LabelU, LabelV, LabelTX}

// ParseLabel normalizes s to upper case and checks it against Labels.
func ParseLabel(s string) (Label, error) {
	label := Label(strings.ToUpper(strings.TrimSpace(s)))
	if label.ordinal() < 0 {
		return "", &UnknownLabelError{Label: s}
	}
	return label, nil
}

func (l Label) ordinal() int {
	for i, known := range Labels {
		if l == known {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of Labels.
func (l Label) Valid() bool {
	return l.ordinal() >= 0
}

func (l Label) String() string {
	return string(l)
}

// Feature indexes one of the eight numeric descriptors of a dive.
type Feature int

const (
	MeanDepth Feature = iota
	MedianDepth
	SDDepth
	IQRDepth
	MeanTemp
	MedianTemp
	SDTemp
	IQRTemp
	NumFeatures
)

var featureNames = [NumFeatures]string{
	"MeanDepth", "MedianDepth", "SDDepth", "IQRDepth",
	"MeanTemp", "MedianTemp", "SDTemp", "IQRTemp",
}

func (f Feature) String() string {
	if f < 0 || f >= NumFeatures {
		return "Feature(?)"
	}
	return featureNames[f]
}

// Features holds the descriptors in file order.
type Features [NumFeatures]float64

// Record is the immutable statistical summary of one dive.
type Record struct {
	features Features
	label    Label
}

// NewRecord builds a Record. The label is upper-cased and must belong to Labels.
func NewRecord(features Features, label string) (Record, error) {
	l, err := ParseLabel(label)
	if err != nil {
		return Record{}, err
	}
	return Record{features: features, label: l}, nil
}

// MustRecord is like NewRecord but panics on an unknown label.
func MustRecord(features Features, label string) Record {
	r, err := NewRecord(features, label)
	if err != nil {
		panic(err)
	}
	return r
}

// Query builds an unlabeled record to classify with Classifier.Predict.
func Query(features Features) Record {
	return Record{features: features}
}

// aggregate builds an unlabeled record holding per-feature statistics.
func aggregate(features Features) Record {
	return Record{features: features}
}

func (r Record) Label() Label {
	return r.label
}

func (r Record) Feature(f Feature) float64 {
	return r.features[f]
}

// Features returns a copy of all descriptors.
func (r Record) Features() Features {
	return r.features
}

func (r Record) MeanDepth() float64   { return r.features[MeanDepth] }
func (r Record) MedianDepth() float64 { return r.features[MedianDepth] }
func (r Record) SDDepth() float64     { return r.features[SDDepth] }
func (r Record) IQRDepth() float64    { return r.features[IQRDepth] }
func (r Record) MeanTemp() float64    { return r.features[MeanTemp] }
func (r Record) MedianTemp() float64  { return r.features[MedianTemp] }
func (r Record) SDTemp() float64      { return r.features[SDTemp] }
func (r Record) IQRTemp() float64     { return r.features[IQRTemp] }
