package vacation

// Outcome distinguishes the three ways an absence lookup can end. A failed
// lookup must never be read as "nobody is away", so an empty resolved set
// and a failure are separate values.
type Outcome int

const (
	// OutcomeResolved means the tracker answered; Away holds the result,
	// which may legitimately be empty.
	OutcomeResolved Outcome = iota
	// OutcomeUnconfigured means no tracker is wired up at all.
	OutcomeUnconfigured
	// OutcomeFailed means the tracker was queried but the call failed.
	OutcomeFailed
)

// Result is the answer to "who is away today".
type Result struct {
	Outcome Outcome
	Away    map[string]bool
	Err     error
}

// Resolved wraps a successfully fetched away set.
func Resolved(away map[string]bool) Result {
	if away == nil {
		away = make(map[string]bool)
	}
	return Result{Outcome: OutcomeResolved, Away: away}
}

// Unconfigured reports that absence tracking is disabled.
func Unconfigured() Result {
	return Result{Outcome: OutcomeUnconfigured, Away: make(map[string]bool)}
}

// Failed reports that the lookup could not be completed.
func Failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Away: make(map[string]bool), Err: err}
}

// AwayOrEmpty returns the away set for callers that deliberately fail open:
// on failure or when unconfigured it is empty, so reminders still go out.
func (r Result) AwayOrEmpty() map[string]bool {
	return r.Away
}
