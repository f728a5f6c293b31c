package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// WithExternalSegment executes an outgoing service call within an external
// segment so provider round-trips show up in traces
func WithExternalSegment(ctx context.Context, serviceName, operation, url string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.ExternalSegment{
		StartTime: txn.StartSegmentNow(),
		URL:       url,
		Procedure: operation,
		Library:   serviceName,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}

	return err
}
