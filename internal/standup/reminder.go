package standup

import (
	"context"
	"fmt"
	"strings"

	"standup-bot/internal/logger"
	"standup-bot/internal/vacation"

	"github.com/slack-go/slack"
)

// NotifyMissing reminds every tracked member who has neither reported in
// today's thread nor is away. When the absence lookup fails the reminder
// still goes out to everyone unreported: over-pinging someone on vacation
// beats silently skipping the chase.
func (s *Service) NotifyMissing(ctx context.Context) error {
	today := s.today()

	thread, ok := s.currentThread()
	if !ok || thread.Date != today {
		logger.Log.Warn("No daily thread found for today, skipping missing-report check")
		return nil
	}

	reported, err := s.dm.Report().ReportedUserIDs(today)
	if err != nil {
		logger.Log.WithError(err).Error("Could not load today's reports")
		return fmt.Errorf("failed to load today's reports: %w", err)
	}
	reportedSet := make(map[string]bool, len(reported))
	for _, id := range reported {
		reportedSet[id] = true
	}

	result := s.resolver.AwayToday(ctx, today)
	if result.Outcome == vacation.OutcomeFailed {
		logger.Log.Warn("Absence lookup failed, reminding as if nobody were away")
	}
	away := result.AwayOrEmpty()

	var missing []string
	for _, id := range s.roster.TrackedUserIDs() {
		if reportedSet[id] || away[id] {
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		logger.Log.Info("All users have reported")
		return nil
	}

	mentions := make([]string, len(missing))
	for i, id := range missing {
		mentions[i] = fmt.Sprintf("<@%s>", id)
	}
	text := fmt.Sprintf("Hey %s, waiting for your update! ⏳", strings.Join(mentions, " "))

	_, _, err = s.slackClient.PostMessage(s.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(thread.MessageTS),
	)
	if err != nil {
		logger.Log.WithError(err).Error("Could not post reminder")
		return fmt.Errorf("failed to post reminder: %w", err)
	}

	logger.Log.WithField("missing", missing).Info("Reminded users")
	return nil
}
