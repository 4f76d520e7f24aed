package entity

import "time"

// Member is one tracked person from the roster. Exempt members are still
// matched against vacation data but never chased for a report.
type Member struct {
	SlackUserID string `json:"id"`
	DisplayName string `json:"name"`
	Exempt      bool   `json:"exempt"`
}

// ThreadState identifies the standup thread that is currently collecting
// reports. Date uses the YYYY-MM-DD layout.
type ThreadState struct {
	Date      string
	MessageTS string
}

// Report is one member's standup status for one day. Follow-up replies are
// appended to RawText, never overwrite it.
type Report struct {
	ID          int64
	SlackUserID string
	ReportDate  string
	RawText     string
	MessageTS   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChatMessage is an inbound Slack message, reduced to the fields the
// standup router cares about.
type ChatMessage struct {
	UserID          string
	Text            string
	Timestamp       string
	ThreadTimestamp string
	IsBot           bool
}
