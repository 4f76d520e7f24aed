package database

import (
	"database/sql"
	"fmt"

	"standup-bot/internal/domain/contract"
	"standup-bot/internal/domain/entity"
)

type reportRepo struct {
	db dbConn
}

func newReportRepo(db dbConn) contract.ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(report *entity.Report) error {
	query := `
		INSERT INTO standup_reports (slack_user_id, report_date, raw_text, message_ts)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		report.SlackUserID,
		report.ReportDate,
		report.RawText,
		report.MessageTS,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	report.ID = id
	return nil
}

func (r *reportRepo) GetByUserAndDate(slackUserID, date string) (*entity.Report, error) {
	report := &entity.Report{}
	query := `
		SELECT id, slack_user_id, report_date, raw_text, message_ts, created_at, updated_at
		FROM standup_reports
		WHERE slack_user_id = ? AND report_date = ?
	`

	err := r.db.QueryRow(query, slackUserID, date).Scan(
		&report.ID,
		&report.SlackUserID,
		&report.ReportDate,
		&report.RawText,
		&report.MessageTS,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return report, nil
}

func (r *reportRepo) UpdateText(slackUserID, date, rawText string) error {
	query := `
		UPDATE standup_reports SET
			raw_text = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE slack_user_id = ? AND report_date = ?
	`

	result, err := r.db.Exec(query, rawText, slackUserID, date)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("no report found for user %s on %s", slackUserID, date)
	}

	return nil
}

func (r *reportRepo) ReportedUserIDs(date string) ([]string, error) {
	query := `SELECT slack_user_id FROM standup_reports WHERE report_date = ?`

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get reported users: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reported user: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reported users: %w", err)
	}

	return userIDs, nil
}
