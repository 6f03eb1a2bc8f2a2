package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/siderolabs/go-retry/retry"
)

// defaultPollInterval is the pause between readiness probes.
const defaultPollInterval = 5 * time.Second

// Check probes a resource once. It returns true when the resource is ready,
// false to keep polling, or an error to abort.
type Check func(ctx context.Context) (bool, error)

// PollForReadiness runs the check at a constant interval until it reports
// ready, the timeout elapses, or the check fails with a non-transient error.
func PollForReadiness(ctx context.Context, timeout time.Duration, check Check) error {
	err := retry.Constant(timeout, retry.WithUnits(defaultPollInterval)).
		RetryWithContext(ctx, func(ctx context.Context) error {
			ready, checkErr := check(ctx)
			if checkErr != nil {
				return checkErr
			}

			if !ready {
				return retry.ExpectedError(ErrNotReady)
			}

			return nil
		})
	if err != nil {
		return fmt.Errorf("poll for readiness: %w", err)
	}

	return nil
}
