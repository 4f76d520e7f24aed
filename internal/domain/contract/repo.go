package contract

import (
	"standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	State() StateRepo
	Report() ReportRepo
}

// StateRepo is a small key/value store for process state that must survive
// restarts, such as the active thread timestamp.
type StateRepo interface {
	Set(key, value string) error
	// Get returns an empty string and no error when the key is absent.
	Get(key string) (string, error)
}

// ReportRepo defines the contract for the standup report repository
type ReportRepo interface {
	Create(report *entity.Report) error
	// GetByUserAndDate returns nil and no error when no report exists.
	GetByUserAndDate(slackUserID, date string) (*entity.Report, error)
	UpdateText(slackUserID, date, rawText string) error
	ReportedUserIDs(date string) ([]string, error)
}
