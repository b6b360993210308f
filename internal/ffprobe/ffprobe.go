package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoDocument indicates ffprobe produced no usable structured output.
// Callers treat this as a per-file skip, not a fatal error.
var ErrNoDocument = errors.New("ffprobe: no document")

// Document is the raw outcome of one ffprobe invocation.
type Document struct {
	Raw         []byte
	Diagnostics string
}

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  *Format  `json:"format"`
}

// StreamTags carries the per-stream tag map fields reelscan reads.
type StreamTags struct {
	Language string `json:"language"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index              int        `json:"index"`
	CodecName          string     `json:"codec_name"`
	CodecType          string     `json:"codec_type"`
	Width              int        `json:"width"`
	Height             int        `json:"height"`
	SampleAspectRatio  string     `json:"sample_aspect_ratio"`
	DisplayAspectRatio string     `json:"display_aspect_ratio"`
	Tags               StreamTags `json:"tags"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

// Inspect executes ffprobe against the provided path and returns the raw
// document plus any diagnostic text. The caller bounds the invocation through
// ctx; a killed or timed-out process yields ErrNoDocument.
func Inspect(ctx context.Context, binary string, path string) (Document, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Document{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	diagnostics := strings.TrimSpace(stderr.String())
	raw := stdout.Bytes()

	// ffprobe can exit non-zero after emitting a usable document; the payload
	// decides, not the exit status.
	if !bytes.Contains(raw, []byte("{")) {
		if runErr != nil {
			return Document{Diagnostics: diagnostics}, fmt.Errorf("%w: %v", ErrNoDocument, runErr)
		}
		return Document{Diagnostics: diagnostics}, ErrNoDocument
	}

	return Document{Raw: append([]byte(nil), raw...), Diagnostics: diagnostics}, nil
}

// Parse decodes a raw ffprobe document.
func Parse(raw []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// FirstVideoStream returns the first stream tagged as video, in document order.
func (r Result) FirstVideoStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			return stream, true
		}
	}
	return Stream{}, false
}

// AudioStreams returns all audio streams preserving document order.
func (r Result) AudioStreams() []Stream {
	var audio []Stream
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			audio = append(audio, stream)
		}
	}
	return audio
}

// DurationSeconds returns the container duration in seconds, or 0 when absent
// or non-numeric.
func (f *Format) DurationSeconds() float64 {
	if f == nil {
		return 0
	}
	return parseFloat(f.Duration)
}

// SizeBytes returns the reported container size in bytes, or 0 when absent or
// non-numeric.
func (f *Format) SizeBytes() int64 {
	if f == nil {
		return 0
	}
	size := parseFloat(f.Size)
	if size < 0 {
		return 0
	}
	return int64(size)
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}
