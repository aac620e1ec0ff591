package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/repositories"
	"taskboard/internal/scheduler"
	"taskboard/internal/services"

	_ "github.com/lib/pq"
)

// RunReminders executes one reminder batch and returns the process exit
// code: non-zero only when the task scan fails. Delivery failures are
// reported in the summary and do not change the exit code. The daily
// cron trigger is responsible for not overlapping runs.
func RunReminders() int {
	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Printf("[reminders][fatal] failed to connect to database: %v", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	userRepo := repositories.NewUserRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	var tgService *services.TelegramService
	if cfg.Telegram.BotToken != "" {
		tgService, err = services.NewTelegramService(cfg.Telegram.BotToken)
		if err != nil {
			log.Printf("[tg][warn] disabled: %v", err)
			tgService = nil
		}
	}

	clock := scheduler.SystemClock()
	notifier := services.NewReminderNotifier(userRepo, emailService, tgService, clock)
	dispatcher := scheduler.NewDispatcher(taskRepo, notifier, clock)

	report, err := dispatcher.Run(context.Background())
	if err != nil {
		log.Printf("[reminders][fatal] %v", err)
		return 1
	}

	fmt.Println(report.Summary())
	for _, f := range report.Failures {
		fmt.Printf("  failed: task=%d recipient=%d event=%s: %s\n", f.TaskID, f.RecipientID, f.Event, f.Reason)
	}
	return 0
}
