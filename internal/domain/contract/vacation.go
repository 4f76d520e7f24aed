package contract

import (
	"context"

	"standup-bot/internal/vacation"
)

// AbsenceResolver answers which roster members are away on a given date.
type AbsenceResolver interface {
	AwayToday(ctx context.Context, date string) vacation.Result
}
