package standup

import (
	"context"
	"fmt"

	"standup-bot/internal/domain/entity"
	"standup-bot/internal/logger"

	"github.com/slack-go/slack"
)

// HandleMessage processes one inbound chat message. Only non-bot replies
// inside today's standup thread are recorded; everything else is dropped.
// The ack reaction is added only after the report is persisted, so a
// missing checkmark tells the member their report was not captured.
func (s *Service) HandleMessage(ctx context.Context, msg entity.ChatMessage) {
	today := s.today()

	thread, ok := s.currentThread()
	if !ok || thread.Date != today {
		return
	}
	// Exact handle match: replies to any other thread are not reports.
	if msg.ThreadTimestamp == "" || msg.ThreadTimestamp != thread.MessageTS {
		return
	}
	if msg.IsBot {
		return
	}

	logger.Log.WithField("user", msg.UserID).Info("Received standup report")

	if err := s.recordReport(msg, today); err != nil {
		logger.Log.WithError(err).WithField("user", msg.UserID).
			Error("Could not save standup report, withholding ack")
		return
	}

	item := slack.NewRefToMessage(s.channelID, msg.Timestamp)
	if err := s.slackClient.AddReaction(ackReaction, item); err != nil {
		logger.Log.WithError(err).Warn("Could not add ack reaction")
	}
}

// recordReport inserts a member's first report of the day, or appends any
// follow-up reply to the stored text behind a visible separator. The
// read-modify-write is unguarded: Slack delivers one user's messages in
// order, so concurrent merges for the same member do not happen in
// practice.
func (s *Service) recordReport(msg entity.ChatMessage, today string) error {
	existing, err := s.dm.Report().GetByUserAndDate(msg.UserID, today)
	if err != nil {
		return fmt.Errorf("failed to look up existing report: %w", err)
	}

	if existing != nil {
		merged := existing.RawText + additionSeparator + msg.Text
		if err := s.dm.Report().UpdateText(msg.UserID, today, merged); err != nil {
			return fmt.Errorf("failed to append to report: %w", err)
		}
		logger.Log.WithField("user", msg.UserID).Info("Appended to existing standup report")
		return nil
	}

	report := &entity.Report{
		SlackUserID: msg.UserID,
		ReportDate:  today,
		RawText:     msg.Text,
		MessageTS:   msg.Timestamp,
	}
	if err := s.dm.Report().Create(report); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	logger.Log.WithField("user", msg.UserID).Info("Recorded new standup report")
	return nil
}
