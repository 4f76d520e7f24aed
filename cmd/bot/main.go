package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"standup-bot/internal/config"
	"standup-bot/internal/database"
	"standup-bot/internal/handlers"
	"standup-bot/internal/logger"
	"standup-bot/internal/roster"
	"standup-bot/internal/scheduler"
	"standup-bot/internal/standup"
	"standup-bot/internal/vacation"
	"standup-bot/migrator/sqlite"

	"github.com/slack-go/slack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load configuration: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Log.Info("Migrations completed successfully")

	dm := database.NewInstance(db)

	team, err := roster.Load(cfg.RosterPath)
	if err != nil {
		logger.Log.Fatalf("Failed to load roster: %v", err)
	}
	logger.Log.Infof("Roster loaded with %d members", len(team.Members()))

	api := slack.New(cfg.SlackBotToken, slack.OptionAppLevelToken(cfg.SlackAppToken))
	resolver := vacation.NewResolver(cfg.VacationAPIURL, cfg.VacationAPIKey, team)

	svc := standup.New(api, dm, team, resolver, cfg.ChannelID)
	svc.RestoreThreadState()

	sched := scheduler.New(svc, cfg.CronOpenThread, cfg.CronChaseReports)
	if err := sched.Start(); err != nil {
		logger.Log.Fatalf("Failed to start scheduler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	socket := handlers.NewSocket(api, svc)
	go func() {
		if err := socket.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Log.WithError(err).Error("Socket Mode loop exited")
		}
	}()

	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "OK")
		})
		if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
			logger.Log.WithError(err).Error("Health server stopped")
		}
	}()

	logger.Log.Info("Standup bot started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	cancel()
	sched.Stop()
	logger.Log.Info("Standup bot stopped")
}
