package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"taskboard/internal/models"
	"taskboard/internal/scheduler"
)

type EmailService interface {
	SendTaskReminderEmail(to string, task models.Task, event scheduler.Event) error
	SendTaskOverdueEmail(to string, task models.Task, daysOverdue int) error
	SendTaskAssignedEmail(to string, task models.Task) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendTaskReminderEmail(to string, task models.Task, event scheduler.Event) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Task Reminder: "+task.Title)

	body := fmt.Sprintf(`
		<h3>%s</h3>
		<p>Task: %s</p>
		<p>Priority: %s</p>
		<p>Due Date: %s</p>
		<p>Status: %s</p>
		<p>Please complete this task before the due date.</p>
	`, event.Line(), task.Title, titleCase(string(task.Priority)), formatDueDate(task), statusLabel(task.Status))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}

func (s *emailService) SendTaskOverdueEmail(to string, task models.Task, daysOverdue int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Overdue Task: "+task.Title)

	body := fmt.Sprintf(`
		<h3>This task is overdue!</h3>
		<p>Task: %s</p>
		<p>Priority: %s</p>
		<p>Due Date: %s</p>
		<p>Days Overdue: %d</p>
		<p>Status: %s</p>
		<p>Please update the task status or complete it as soon as possible.</p>
	`, task.Title, titleCase(string(task.Priority)), formatDueDate(task), daysOverdue, statusLabel(task.Status))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue email: %w", err)
	}

	return nil
}

func (s *emailService) SendTaskAssignedEmail(to string, task models.Task) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Task Assigned: "+task.Title)

	body := fmt.Sprintf(`
		<h3>You have been assigned a new task.</h3>
		<p>Task: %s</p>
		<p>Priority: %s</p>
		<p>Due Date: %s</p>
		<p>Status: %s</p>
	`, task.Title, titleCase(string(task.Priority)), formatDueDate(task), statusLabel(task.Status))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}

	return nil
}

func formatDueDate(task models.Task) string {
	if task.DueDate == nil {
		return "Not set"
	}
	return task.DueDate.Format("2006-01-02")
}

func statusLabel(status models.TaskStatus) string {
	return titleCase(strings.ReplaceAll(string(status), "_", " "))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
