package ffprobe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"reelscan/internal/ffprobe"
)

const sampleDocument = `{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080,
     "sample_aspect_ratio": "1:1", "display_aspect_ratio": "16:9"},
    {"index": 1, "codec_type": "audio", "codec_name": "aac", "tags": {"language": "eng"}},
    {"index": 2, "codec_type": "audio", "codec_name": "ac3"}
  ],
  "format": {"format_name": "matroska,webm", "duration": "125.400000", "size": "1048576000"}
}`

func writeFakeProber(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffprobe")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write fake prober: %v", err)
	}
	return path
}

func TestInspectCapturesDocumentAndDiagnostics(t *testing.T) {
	binary := writeFakeProber(t, `echo 'benign warning' >&2
cat <<'EOF'
`+sampleDocument+`
EOF`)

	doc, err := ffprobe.Inspect(context.Background(), binary, "/tmp/input.mkv")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if doc.Diagnostics != "benign warning" {
		t.Fatalf("unexpected diagnostics: %q", doc.Diagnostics)
	}
	if !strings.Contains(string(doc.Raw), "matroska") {
		t.Fatalf("unexpected document: %s", doc.Raw)
	}
}

func TestInspectReportsNoDocumentOnEmptyOutput(t *testing.T) {
	binary := writeFakeProber(t, `echo 'unreadable input' >&2
exit 1`)

	doc, err := ffprobe.Inspect(context.Background(), binary, "/tmp/input.mkv")
	if !errors.Is(err, ffprobe.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
	if doc.Diagnostics != "unreadable input" {
		t.Fatalf("expected diagnostics preserved, got %q", doc.Diagnostics)
	}
}

func TestInspectReportsNoDocumentWhenBinaryMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := ffprobe.Inspect(context.Background(), missing, "/tmp/input.mkv")
	if !errors.Is(err, ffprobe.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestInspectHonorsContextTimeout(t *testing.T) {
	binary := writeFakeProber(t, `sleep 30`)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := ffprobe.Inspect(ctx, binary, "/tmp/input.mkv")
	if !errors.Is(err, ffprobe.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument after timeout, got %v", err)
	}
}

func TestParseAndStreamSelection(t *testing.T) {
	result, err := ffprobe.Parse([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	video, ok := result.FirstVideoStream()
	if !ok {
		t.Fatal("expected a video stream")
	}
	if video.CodecName != "h264" || video.Width != 1920 || video.Height != 1080 {
		t.Fatalf("unexpected video stream: %#v", video)
	}
	if video.SampleAspectRatio != "1:1" || video.DisplayAspectRatio != "16:9" {
		t.Fatalf("unexpected aspect ratios: %#v", video)
	}

	audio := result.AudioStreams()
	if len(audio) != 2 {
		t.Fatalf("expected 2 audio streams, got %d", len(audio))
	}
	if audio[0].CodecName != "aac" || audio[0].Tags.Language != "eng" {
		t.Fatalf("unexpected first audio stream: %#v", audio[0])
	}
	if audio[1].CodecName != "ac3" || audio[1].Tags.Language != "" {
		t.Fatalf("unexpected second audio stream: %#v", audio[1])
	}

	if result.Format == nil {
		t.Fatal("expected format block")
	}
	if result.Format.DurationSeconds() != 125.4 {
		t.Fatalf("unexpected duration: %v", result.Format.DurationSeconds())
	}
	if result.Format.SizeBytes() != 1048576000 {
		t.Fatalf("unexpected size: %d", result.Format.SizeBytes())
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	if _, err := ffprobe.Parse([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFormatHelpersToleratesMissingValues(t *testing.T) {
	var f *ffprobe.Format
	if f.DurationSeconds() != 0 {
		t.Fatal("nil format duration should be 0")
	}
	if f.SizeBytes() != 0 {
		t.Fatal("nil format size should be 0")
	}

	bad := &ffprobe.Format{Duration: "N/A", Size: "-12"}
	if bad.DurationSeconds() != 0 {
		t.Fatalf("non-numeric duration should be 0, got %v", bad.DurationSeconds())
	}
	if bad.SizeBytes() != 0 {
		t.Fatalf("negative size should clamp to 0, got %d", bad.SizeBytes())
	}
}
