package ports

import (
	"context"
	"time"
)

// AccountActivity is a best-effort account bookkeeping event, currently the
// last-login touch emitted after a successful login.
type AccountActivity struct {
	UserID  string
	LoginAt time.Time
}

// ActivityRecorder persists account activity. Failures are logged, never
// surfaced to the flow that emitted the event.
type ActivityRecorder interface {
	Record(ctx context.Context, activity AccountActivity) error
}
