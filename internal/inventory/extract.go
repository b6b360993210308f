package inventory

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"reelscan/internal/ffprobe"
)

const mebibyte = 1048576

// Skip reasons surfaced by Extract. Each maps to one error-log entry; none
// aborts a run.
var (
	ErrParse              = errors.New("malformed probe document")
	ErrMissingFormat      = errors.New("no format block in probe document")
	ErrMissingVideoStream = errors.New("no video stream in probe document")
)

// Extract derives an inventory record from a raw probe document.
//
// Only the first video stream is considered when several exist; all audio
// streams contribute, in document order. An absent or non-numeric duration is
// treated as zero, not an error.
func Extract(path string, raw []byte) (Record, error) {
	result, err := ffprobe.Parse(raw)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if result.Format == nil {
		return Record{}, ErrMissingFormat
	}

	video, ok := result.FirstVideoStream()
	if !ok {
		return Record{}, ErrMissingVideoStream
	}

	audio := result.AudioStreams()
	codecs := make([]string, len(audio))
	langs := make([]string, len(audio))
	for i, stream := range audio {
		codecs[i] = stream.CodecName
		langs[i] = stream.Tags.Language
	}

	resolution := ""
	if video.Width > 0 && video.Height > 0 {
		resolution = fmt.Sprintf("%dx%d", video.Width, video.Height)
	}

	return Record{
		Path:        path,
		Filename:    filepath.Base(path),
		Container:   result.Format.FormatName,
		DurationMin: Round2(result.Format.DurationSeconds() / 60),
		SizeMB:      Round2(float64(result.Format.SizeBytes()) / mebibyte),
		VideoCodec:  video.CodecName,
		AudioCodec:  strings.Join(codecs, ";"),
		AudioLangs:  strings.Join(langs, ";"),
		Resolution:  resolution,
		SAR:         video.SampleAspectRatio,
		DAR:         video.DisplayAspectRatio,
	}, nil
}
