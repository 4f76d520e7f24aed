package standup

import (
	"errors"
	"sync"
	"time"

	"standup-bot/internal/domain/contract"
	"standup-bot/internal/domain/entity"
	"standup-bot/internal/roster"
)

const (
	dateLayout = "2006-01-02"

	stateKeyThreadTS   = "daily_thread_ts"
	stateKeyThreadDate = "daily_thread_date"

	// ackReaction confirms to a member that their report was persisted.
	// No reaction means the report was not saved and should be re-sent.
	ackReaction = "white_check_mark"

	// additionSeparator joins follow-up replies onto an existing report.
	additionSeparator = "\n\n[Addition:]:\n"
)

// ErrNotConfigured is returned when an operation needs a Slack channel that
// was never configured.
var ErrNotConfigured = errors.New("slack channel not configured")

// Service coordinates the daily standup: it owns the active thread handle,
// records incoming reports, and chases members who have not reported yet.
type Service struct {
	slackClient contract.SlackClient
	dm          contract.DataManager
	roster      *roster.Roster
	resolver    contract.AbsenceResolver
	channelID   string

	now func() time.Time

	// mu guards thread. The handle is replaced wholesale so concurrent
	// readers see either the previous thread or the new one, never a mix.
	mu     sync.RWMutex
	thread *entity.ThreadState
}

func New(
	slackClient contract.SlackClient,
	dm contract.DataManager,
	r *roster.Roster,
	resolver contract.AbsenceResolver,
	channelID string,
) *Service {
	return &Service{
		slackClient: slackClient,
		dm:          dm,
		roster:      r,
		resolver:    resolver,
		channelID:   channelID,
		now:         time.Now,
	}
}

// today is computed once per entry point and passed down, so a single
// invocation never straddles a midnight rollover.
func (s *Service) today() string {
	return s.now().Format(dateLayout)
}

func (s *Service) currentThread() (entity.ThreadState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.thread == nil {
		return entity.ThreadState{}, false
	}
	return *s.thread, true
}

func (s *Service) replaceThread(state entity.ThreadState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.thread = &state
}
