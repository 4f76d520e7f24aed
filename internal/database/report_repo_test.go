package database

import (
	"testing"

	"standup-bot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	reportRepo := newReportRepo(db.conn)

	t.Run("should create report successfully", func(t *testing.T) {
		report := &entity.Report{
			SlackUserID: "U123456789",
			ReportDate:  "2026-08-31",
			RawText:     "Yesterday did X, today will do Y",
			MessageTS:   "1234567890.123456",
		}

		err := reportRepo.Create(report)

		require.NoError(t, err)
		assert.NotZero(t, report.ID)
	})

	t.Run("should reject second report for same user and day", func(t *testing.T) {
		report := &entity.Report{
			SlackUserID: "U123456789",
			ReportDate:  "2026-08-31",
			RawText:     "duplicate",
			MessageTS:   "1234567890.999999",
		}

		err := reportRepo.Create(report)

		assert.Error(t, err)
	})

	t.Run("should allow same user on a different day", func(t *testing.T) {
		report := &entity.Report{
			SlackUserID: "U123456789",
			ReportDate:  "2026-09-01",
			RawText:     "next day",
			MessageTS:   "1234567891.123456",
		}

		err := reportRepo.Create(report)

		require.NoError(t, err)
	})
}

func TestReportRepo_GetByUserAndDate(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	reportRepo := newReportRepo(db.conn)

	report := &entity.Report{
		SlackUserID: "U123456789",
		ReportDate:  "2026-08-31",
		RawText:     "My report",
		MessageTS:   "1234567890.123456",
	}
	require.NoError(t, reportRepo.Create(report))

	t.Run("should return report when found", func(t *testing.T) {
		got, err := reportRepo.GetByUserAndDate("U123456789", "2026-08-31")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, report.ID, got.ID)
		assert.Equal(t, "My report", got.RawText)
		assert.Equal(t, "1234567890.123456", got.MessageTS)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("should return nil when user has no report", func(t *testing.T) {
		got, err := reportRepo.GetByUserAndDate("U999999999", "2026-08-31")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should return nil for a different day", func(t *testing.T) {
		got, err := reportRepo.GetByUserAndDate("U123456789", "2026-09-01")

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestReportRepo_UpdateText(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	reportRepo := newReportRepo(db.conn)

	report := &entity.Report{
		SlackUserID: "U123456789",
		ReportDate:  "2026-08-31",
		RawText:     "first",
		MessageTS:   "1234567890.123456",
	}
	require.NoError(t, reportRepo.Create(report))

	t.Run("should replace stored text", func(t *testing.T) {
		err := reportRepo.UpdateText("U123456789", "2026-08-31", "first\n\n[Addition:]:\nsecond")

		require.NoError(t, err)

		got, err := reportRepo.GetByUserAndDate("U123456789", "2026-08-31")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "first\n\n[Addition:]:\nsecond", got.RawText)
	})

	t.Run("should fail when no report exists", func(t *testing.T) {
		err := reportRepo.UpdateText("U999999999", "2026-08-31", "text")

		assert.Error(t, err)
	})
}

func TestReportRepo_ReportedUserIDs(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	reportRepo := newReportRepo(db.conn)

	t.Run("should return nothing for an empty day", func(t *testing.T) {
		ids, err := reportRepo.ReportedUserIDs("2026-08-31")

		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("should return only users who reported that day", func(t *testing.T) {
		for _, r := range []*entity.Report{
			{SlackUserID: "U111", ReportDate: "2026-08-31", RawText: "a", MessageTS: "1.1"},
			{SlackUserID: "U222", ReportDate: "2026-08-31", RawText: "b", MessageTS: "1.2"},
			{SlackUserID: "U333", ReportDate: "2026-09-01", RawText: "c", MessageTS: "1.3"},
		} {
			require.NoError(t, reportRepo.Create(r))
		}

		ids, err := reportRepo.ReportedUserIDs("2026-08-31")

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"U111", "U222"}, ids)
	})
}
