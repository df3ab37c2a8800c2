package reconcile

import (
	"fmt"
	"strings"
)

// FetchError wraps a network, auth, or decoding failure while polling a
// vendor feed. It isolates the whole vendor: the run for that vendor stops,
// other vendors are unaffected.
type FetchError struct {
	VendorID string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for vendor %s: %v", e.VendorID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ResolutionError wraps a product or condition lookup/creation failure for
// one product group. It isolates that group only: the group is counted as
// skipped and the vendor's remaining groups proceed.
type ResolutionError struct {
	GroupKey string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolution failed for group %q: %v", e.GroupKey, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// CommitError aggregates store write failures from one batch. Operations
// that did apply stay applied; the summary counts reflect partial success.
type CommitError struct {
	Failed int
	Errs   []error
}

func (e *CommitError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("commit failed for %d operation(s): %s", e.Failed, strings.Join(msgs, "; "))
}

func (e *CommitError) Unwrap() []error { return e.Errs }
