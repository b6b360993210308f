package inventory_test

import (
	"errors"
	"strings"
	"testing"

	"reelscan/internal/inventory"
)

const fullDocument = `{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080,
     "sample_aspect_ratio": "1:1", "display_aspect_ratio": "16:9"},
    {"index": 1, "codec_type": "audio", "codec_name": "aac", "tags": {"language": "eng"}}
  ],
  "format": {"format_name": "matroska,webm", "duration": "125.400000", "size": "1048576000"}
}`

func TestExtractDerivesRecord(t *testing.T) {
	record, err := inventory.Extract("/media/movies/sample.mkv", []byte(fullDocument))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if record.Path != "/media/movies/sample.mkv" {
		t.Fatalf("unexpected path: %q", record.Path)
	}
	if record.Filename != "sample.mkv" {
		t.Fatalf("unexpected filename: %q", record.Filename)
	}
	if record.Container != "matroska,webm" {
		t.Fatalf("unexpected container: %q", record.Container)
	}
	if record.DurationMin != 2.09 {
		t.Fatalf("unexpected duration: %v", record.DurationMin)
	}
	if record.SizeMB != 1000.00 {
		t.Fatalf("unexpected size: %v", record.SizeMB)
	}
	if record.VideoCodec != "h264" {
		t.Fatalf("unexpected video codec: %q", record.VideoCodec)
	}
	if record.AudioCodec != "aac" || record.AudioLangs != "eng" {
		t.Fatalf("unexpected audio fields: %q / %q", record.AudioCodec, record.AudioLangs)
	}
	if record.Resolution != "1920x1080" {
		t.Fatalf("unexpected resolution: %q", record.Resolution)
	}
	if record.SAR != "1:1" || record.DAR != "16:9" {
		t.Fatalf("unexpected aspect ratios: %q / %q", record.SAR, record.DAR)
	}
}

func TestExtractSkipReasons(t *testing.T) {
	cases := []struct {
		name     string
		document string
		want     error
	}{
		{"malformed", "not json", inventory.ErrParse},
		{"missing format", `{"streams": [{"codec_type": "video", "codec_name": "h264"}]}`, inventory.ErrMissingFormat},
		{"missing video stream", `{"streams": [{"codec_type": "audio", "codec_name": "aac"}], "format": {"format_name": "avi"}}`, inventory.ErrMissingVideoStream},
		{"no streams at all", `{"format": {"format_name": "avi"}}`, inventory.ErrMissingVideoStream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inventory.Extract("/x/y.avi", []byte(tc.document))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestExtractFirstVideoStreamOnly(t *testing.T) {
	document := `{
  "streams": [
    {"codec_type": "audio", "codec_name": "dts", "tags": {"language": "fra"}},
    {"codec_type": "video", "codec_name": "mpeg2video", "width": 720, "height": 576},
    {"codec_type": "video", "codec_name": "mjpeg", "width": 120, "height": 90}
  ],
  "format": {"format_name": "mpeg", "duration": "60", "size": "1048576"}
}`
	record, err := inventory.Extract("/x/y.mpg", []byte(document))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if record.VideoCodec != "mpeg2video" {
		t.Fatalf("expected first video stream, got %q", record.VideoCodec)
	}
	if record.Resolution != "720x576" {
		t.Fatalf("unexpected resolution: %q", record.Resolution)
	}
	if record.DurationMin != 1.0 {
		t.Fatalf("unexpected duration: %v", record.DurationMin)
	}
	if record.SizeMB != 1.0 {
		t.Fatalf("unexpected size: %v", record.SizeMB)
	}
}

func TestExtractAudioCardinalityMatches(t *testing.T) {
	cases := []struct {
		name       string
		streams    string
		wantCodecs string
		wantLangs  string
	}{
		{
			"zero audio streams",
			`{"codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720}`,
			"",
			"",
		},
		{
			"untagged language yields empty segment",
			`{"codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720},
			 {"codec_type": "audio", "codec_name": "aac", "tags": {"language": "eng"}},
			 {"codec_type": "audio", "codec_name": "mp3"}`,
			"aac;mp3",
			"eng;",
		},
		{
			"three streams preserve order",
			`{"codec_type": "video", "codec_name": "h264"},
			 {"codec_type": "audio", "codec_name": "dts", "tags": {"language": "jpn"}},
			 {"codec_type": "audio", "codec_name": "ac3"},
			 {"codec_type": "audio", "codec_name": "aac", "tags": {"language": "spa"}}`,
			"dts;ac3;aac",
			"jpn;;spa",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			document := `{"streams": [` + tc.streams + `], "format": {"format_name": "matroska", "duration": "10", "size": "100"}}`
			record, err := inventory.Extract("/x/y.mkv", []byte(document))
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if record.AudioCodec != tc.wantCodecs {
				t.Fatalf("unexpected codecs: %q", record.AudioCodec)
			}
			if record.AudioLangs != tc.wantLangs {
				t.Fatalf("unexpected langs: %q", record.AudioLangs)
			}
			codecCount := len(strings.Split(record.AudioCodec, ";"))
			langCount := len(strings.Split(record.AudioLangs, ";"))
			if codecCount != langCount {
				t.Fatalf("segment cardinality mismatch: %d codecs vs %d langs", codecCount, langCount)
			}
		})
	}
}

func TestExtractToleratesMissingNumericFields(t *testing.T) {
	document := `{
  "streams": [{"codec_type": "video", "codec_name": "vp8"}],
  "format": {"format_name": "webm", "duration": "N/A"}
}`
	record, err := inventory.Extract("/x/y.webm", []byte(document))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if record.DurationMin != 0 {
		t.Fatalf("expected zero duration, got %v", record.DurationMin)
	}
	if record.SizeMB != 0 {
		t.Fatalf("expected zero size, got %v", record.SizeMB)
	}
	if record.Resolution != "" {
		t.Fatalf("expected empty resolution, got %q", record.Resolution)
	}
}
