package scanner

import (
	"context"
	"time"

	"reelscan/internal/ffprobe"
)

// Prober abstracts the external probing tool so runs can be exercised with
// canned documents in tests.
type Prober interface {
	Inspect(ctx context.Context, path string) (ffprobe.Document, error)
}

type execProber struct {
	binary  string
	timeout time.Duration
}

// NewProber returns a Prober backed by the ffprobe executable, bounding each
// invocation with the given timeout.
func NewProber(binary string, timeout time.Duration) Prober {
	return &execProber{binary: binary, timeout: timeout}
}

func (p *execProber) Inspect(ctx context.Context, path string) (ffprobe.Document, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return ffprobe.Inspect(ctx, p.binary, path)
}
