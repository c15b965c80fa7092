package info

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"
)

type probePayload struct {
	Status   string   `json:"status"`
	Checks   int      `json:"checks,omitempty"`
	Versions []string `json:"versions,omitempty"`
}

func (ih *InfoHandler) respondProbe(w http.ResponseWriter, r *http.Request, payload probePayload) {
	ih.RespondWithJSON(w, r, http.StatusOK, payload)
}

// runChecks runs every check under one shared deadline and joins the
// failures, so a readiness response names each broken dependency.
func (ih *InfoHandler) runChecks(ctx context.Context, checks []ProbeFunc) error {
	if len(checks) == 0 {
		return nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, ih.probeTimeout)
	defer cancel()

	var errs []error
	for idx, check := range checks {
		if check == nil {
			continue
		}
		if err := check(probeCtx); err != nil {
			errs = append(errs, probeError(idx+1, ih.probeTimeout, err))
		}
	}
	return errors.Join(errs...)
}

func probeError(n int, timeout time.Duration, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("probe %d timed out after %s: %w", n, timeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("probe %d was cancelled: %w", n, err)
	default:
		return fmt.Errorf("probe %d failed: %w", n, err)
	}
}

func filterProbes(checks []ProbeFunc) []ProbeFunc {
	filtered := slices.DeleteFunc(slices.Clone(checks), func(check ProbeFunc) bool {
		return check == nil
	})
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
