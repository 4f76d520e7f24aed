package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessage sends a message to a Slack channel and returns the
	// channel and timestamp of the posted message
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// AddReaction adds an emoji reaction to a message
	AddReaction(name string, item slack.ItemRef) error
}
