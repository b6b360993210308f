package inventory

import "math"

// Record is the normalized inventory row produced for one video file.
//
// AudioCodec and AudioLangs are ";"-joined lists with matching cardinality:
// the Nth segment of each belongs to the Nth audio stream in probe order. A
// stream without a language tag contributes an empty segment.
type Record struct {
	Path          string
	Filename      string
	Container     string
	DurationMin   float64
	SizeMB        float64
	VideoCodec    string
	AudioCodec    string
	AudioLangs    string
	Resolution    string
	SAR           string
	DAR           string
	EstSizeH265MB float64
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
