package database

import (
	"standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	stateRepo  contract.StateRepo
	reportRepo contract.ReportRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:         db,
		stateRepo:  newStateRepo(db.conn),
		reportRepo: newReportRepo(db.conn),
	}
}

// State returns the bot state repository
func (i *instance) State() contract.StateRepo {
	return i.stateRepo
}

// Report returns the standup report repository
func (i *instance) Report() contract.ReportRepo {
	return i.reportRepo
}
