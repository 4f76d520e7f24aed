package standup

import (
	"context"
	"fmt"
	"strings"

	"standup-bot/internal/domain/entity"
	"standup-bot/internal/logger"
	"standup-bot/internal/vacation"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// OpenDailyThread posts the standup prompt and makes the returned message
// the active thread for today. The handle is persisted best-effort so a
// restart recovers it instead of posting a second thread. Calling this
// twice in one day replaces the active thread; replies still pointing at
// the old handle are no longer collected.
func (s *Service) OpenDailyThread(ctx context.Context) (string, error) {
	if s.slackClient == nil || s.channelID == "" {
		logger.Log.Error("Cannot open daily thread: Slack channel not configured")
		return "", ErrNotConfigured
	}

	today := s.today()

	_, ts, err := s.slackClient.PostMessage(s.channelID, slack.MsgOptionText(standupPrompt(), false))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to post daily standup thread")
		return "", fmt.Errorf("failed to post daily standup thread: %w", err)
	}

	state := entity.ThreadState{Date: today, MessageTS: ts}
	s.replaceThread(state)
	logger.Log.WithFields(logrus.Fields{"thread_ts": ts, "date": today}).
		Info("Posted daily standup thread")

	// Persistence is best-effort: the in-memory handle stays valid for the
	// rest of the process lifetime even if the store is down.
	if err := s.dm.State().Set(stateKeyThreadTS, ts); err != nil {
		logger.Log.WithError(err).Warn("Could not persist daily thread timestamp")
	} else if err := s.dm.State().Set(stateKeyThreadDate, today); err != nil {
		logger.Log.WithError(err).Warn("Could not persist daily thread date")
	}

	s.announceVacations(ctx, state, today)

	return ts, nil
}

// RestoreThreadState reloads the persisted thread handle on startup so a
// mid-day restart keeps routing replies into the same thread.
func (s *Service) RestoreThreadState() {
	ts, err := s.dm.State().Get(stateKeyThreadTS)
	if err != nil {
		logger.Log.WithError(err).Warn("Could not restore daily thread state")
		return
	}
	if ts == "" {
		logger.Log.Debug("No persisted daily thread state found")
		return
	}

	date, err := s.dm.State().Get(stateKeyThreadDate)
	if err != nil {
		logger.Log.WithError(err).Warn("Could not restore daily thread date")
		return
	}
	if date == "" {
		// Older deployments only stored the timestamp.
		date = s.today()
	}

	s.replaceThread(entity.ThreadState{Date: date, MessageTS: ts})
	logger.Log.WithFields(logrus.Fields{"thread_ts": ts, "date": date}).
		Info("Restored daily thread state")
}

// announceVacations posts today's absence status as a reply in the standup
// thread. Unlike the reminder flow, this call site shows users the
// difference between "nobody away" and "lookup failed".
func (s *Service) announceVacations(ctx context.Context, thread entity.ThreadState, today string) {
	result := s.resolver.AwayToday(ctx, today)

	var text string
	switch result.Outcome {
	case vacation.OutcomeUnconfigured:
		return
	case vacation.OutcomeFailed:
		text = "⚠️ Couldn't reach the vacation tracker, absence info is unavailable today."
	case vacation.OutcomeResolved:
		if len(result.Away) == 0 {
			text = "Everyone is around today ✅"
		} else {
			text = "🌴 On vacation today: " + strings.Join(s.displayNames(result.Away), ", ")
		}
	}

	_, _, err := s.slackClient.PostMessage(s.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(thread.MessageTS),
	)
	if err != nil {
		logger.Log.WithError(err).Warn("Could not post vacation status")
	}
}

// displayNames maps user IDs to display names, in roster order.
func (s *Service) displayNames(userIDs map[string]bool) []string {
	var names []string
	for _, m := range s.roster.Members() {
		if userIDs[m.SlackUserID] {
			names = append(names, m.DisplayName)
		}
	}
	return names
}
