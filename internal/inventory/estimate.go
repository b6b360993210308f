package inventory

import "strings"

// h265Ratios maps a source video codec to the expected size ratio after an
// H.265 re-encode. Unlisted codecs fall back to defaultH265Ratio.
var h265Ratios = map[string]float64{
	"mpeg2video": 0.3,
	"mpeg4":      0.45,
	"h264":       0.65,
	"vp8":        0.6,
	"hevc":       1.0,
	"wmv3":       0.4,
	"divx":       0.4,
	"h263":       0.3,
}

const defaultH265Ratio = 0.5

// H265Ratio returns the estimation ratio for a codec, case-insensitively.
func H265Ratio(codec string) float64 {
	if ratio, ok := h265Ratios[strings.ToLower(strings.TrimSpace(codec))]; ok {
		return ratio
	}
	return defaultH265Ratio
}

// EstimateH265MB returns the estimated re-encoded size in MiB for a record of
// the given size and video codec, rounded to two decimals.
func EstimateH265MB(sizeMB float64, codec string) float64 {
	return Round2(sizeMB * H265Ratio(codec))
}
