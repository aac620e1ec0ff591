package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
	"taskboard/internal/scheduler"
)

type stubUserRepo struct {
	users map[int64]*models.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *models.User) error { return nil }
func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}
func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *stubUserRepo) UpdateRefresh(_ context.Context, _ int64, _ string, _ time.Time) error {
	return nil
}
func (r *stubUserRepo) GetByRefreshToken(_ context.Context, _ string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *stubUserRepo) ClearRefresh(_ context.Context, _ int64) error { return nil }

type sentMail struct {
	to    string
	event scheduler.Event
	days  int
}

type stubEmailService struct {
	sent []sentMail
	err  error
}

func (s *stubEmailService) SendTaskReminderEmail(to string, _ models.Task, event scheduler.Event) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, event: event})
	return nil
}

func (s *stubEmailService) SendTaskOverdueEmail(to string, _ models.Task, daysOverdue int) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, event: scheduler.EventOverdue, days: daysOverdue})
	return nil
}

func (s *stubEmailService) SendTaskAssignedEmail(_ string, _ models.Task) error { return nil }

type stubClock struct{ t time.Time }

func (c stubClock) Now() time.Time { return c.t }

func TestReminderNotifierSendReminder(t *testing.T) {
	users := &stubUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Email: "owner@example.com"},
	}}
	emails := &stubEmailService{}
	n := NewReminderNotifier(users, emails, nil, stubClock{time.Now()})

	err := n.SendReminder(1, models.Task{ID: 5, Title: "Quarterly report"}, scheduler.EventSevenDay)

	require.NoError(t, err)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, "owner@example.com", emails.sent[0].to)
	assert.Equal(t, scheduler.EventSevenDay, emails.sent[0].event)
}

func TestReminderNotifierUnknownRecipient(t *testing.T) {
	n := NewReminderNotifier(&stubUserRepo{}, &stubEmailService{}, nil, stubClock{time.Now()})

	err := n.SendReminder(99, models.Task{ID: 5}, scheduler.EventSevenDay)

	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestReminderNotifierEmailFailurePropagates(t *testing.T) {
	users := &stubUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Email: "owner@example.com"},
	}}
	emails := &stubEmailService{err: errors.New("smtp: connection refused")}
	n := NewReminderNotifier(users, emails, nil, stubClock{time.Now()})

	err := n.SendReminder(1, models.Task{ID: 5}, scheduler.EventSevenDay)
	assert.Error(t, err)
}

func TestReminderNotifierSendOverdueComputesDays(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)

	users := &stubUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Email: "owner@example.com"},
	}}
	emails := &stubEmailService{}
	n := NewReminderNotifier(users, emails, nil, stubClock{now})

	err := n.SendOverdue(1, models.Task{ID: 5, DueDate: &due})

	require.NoError(t, err)
	require.Len(t, emails.sent, 1)
	assert.Equal(t, 3, emails.sent[0].days)
}
