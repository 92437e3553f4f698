// Package converter holds the conversion operator implementations. The only
// one today is a stub: there is no document engine behind this service, the
// output is the input relabeled with the Office content type.
package converter

import (
	"context"
	"time"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

// Stub simulates a conversion backend. Delay models the processing time of a
// real engine; the call still honours context cancellation so callers can
// bound it with a timeout.
type Stub struct {
	delay time.Duration
}

func NewStub(delay time.Duration) *Stub {
	return &Stub{delay: delay}
}

func (s *Stub) Convert(ctx context.Context, data []byte, _ domain.Format) ([]byte, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
