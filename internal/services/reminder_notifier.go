package services

import (
	"context"
	"fmt"
	"log"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
	"taskboard/internal/scheduler"
)

// ReminderNotifier delivers scheduler events to users. Email is the
// channel of record: an email failure is reported back to the
// dispatcher. Telegram is best-effort on top and only ever logged.
type ReminderNotifier struct {
	users  repositories.UserRepository
	emails EmailService
	tg     *TelegramService
	clock  scheduler.Clock
}

var _ scheduler.Notifier = (*ReminderNotifier)(nil)

func NewReminderNotifier(users repositories.UserRepository, emails EmailService, tg *TelegramService, clock scheduler.Clock) *ReminderNotifier {
	return &ReminderNotifier{users: users, emails: emails, tg: tg, clock: clock}
}

func (n *ReminderNotifier) SendReminder(recipientID int64, task models.Task, event scheduler.Event) error {
	user, err := n.users.GetByID(context.Background(), recipientID)
	if err != nil {
		return fmt.Errorf("resolve recipient %d: %w", recipientID, err)
	}

	if err := n.emails.SendTaskReminderEmail(user.Email, task, event); err != nil {
		return err
	}

	if user.TelegramChatID != nil {
		text := fmt.Sprintf("⏰ <b>%s</b>\n%s", task.Title, event.Line())
		if err := n.tg.SendMessage(*user.TelegramChatID, text); err != nil {
			log.Printf("[reminders][tg][warn] user=%d task=%d: %v", user.ID, task.ID, err)
		}
	}
	return nil
}

func (n *ReminderNotifier) SendOverdue(recipientID int64, task models.Task) error {
	user, err := n.users.GetByID(context.Background(), recipientID)
	if err != nil {
		return fmt.Errorf("resolve recipient %d: %w", recipientID, err)
	}

	daysOverdue := 0
	if task.DueDate != nil {
		daysOverdue = scheduler.DaysBetween(*task.DueDate, n.clock.Now())
	}

	if err := n.emails.SendTaskOverdueEmail(user.Email, task, daysOverdue); err != nil {
		return err
	}

	if user.TelegramChatID != nil {
		text := fmt.Sprintf("⚠️ <b>%s</b>\nThis task is overdue by %d day(s).", task.Title, daysOverdue)
		if err := n.tg.SendMessage(*user.TelegramChatID, text); err != nil {
			log.Printf("[reminders][tg][warn] user=%d task=%d: %v", user.ID, task.ID, err)
		}
	}
	return nil
}
