package go_diveknn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewRecord_UpperCasesLabel(t *testing.T) {
	for input, want := range map[string]Label{"s": LabelS, "t": LabelT, "U": LabelU, "v": LabelV, "tx": LabelTX, "Tx": LabelTX} {
		r, err := NewRecord(Features{1, 2, 3, 4, 5, 6, 7, 8}, input)
		assert.NoError(t, err)
		assert.Equal(t, want, r.Label())
	}
}

func Test_NewRecord_UnknownLabel(t *testing.T) {
	_, err := NewRecord(Features{}, "x")
	assert.EqualError(t, err, `unknown label "x": label must be one of [S T U V TX]`)

	var labelErr *UnknownLabelError
	assert.ErrorAs(t, err, &labelErr)
	assert.Equal(t, "x", labelErr.Label)
}

func Test_Record_Accessors(t *testing.T) {
	r := MustRecord(Features{1, 2, 3, 4, 5, 6, 7, 8}, "S")
	assert.Equal(t, 1.0, r.MeanDepth())
	assert.Equal(t, 2.0, r.MedianDepth())
	assert.Equal(t, 3.0, r.SDDepth())
	assert.Equal(t, 4.0, r.IQRDepth())
	assert.Equal(t, 5.0, r.MeanTemp())
	assert.Equal(t, 6.0, r.MedianTemp())
	assert.Equal(t, 7.0, r.SDTemp())
	assert.Equal(t, 8.0, r.IQRTemp())
	assert.Equal(t, 6.0, r.Feature(MedianTemp))

	// Features hands out a copy.
	features := r.Features()
	features[MeanDepth] = 100
	assert.Equal(t, 1.0, r.MeanDepth())
}

func Test_MustRecord_Panic(t *testing.T) {
	assert.Panics(t, func() { MustRecord(Features{}, "W") })
}

func Test_Feature_String(t *testing.T) {
	assert.Equal(t, "MeanDepth", MeanDepth.String())
	assert.Equal(t, "IQRTemp", IQRTemp.String())
	assert.Equal(t, "Feature(?)", NumFeatures.String())
}

func Test_Label_Valid(t *testing.T) {
	assert.True(t, LabelTX.Valid())
	assert.False(t, Label("").Valid())
	assert.False(t, Label("s").Valid())
}
