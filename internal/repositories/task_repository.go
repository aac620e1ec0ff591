package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/models"
)

var ErrTaskNotFound = fmt.Errorf("task not found")

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error
	UpdateAssignee(ctx context.Context, id int64, assigneeID int64) error

	// reminder scan: every non-completed task with a due date
	OpenTasksWithDueDates(ctx context.Context) ([]models.Task, error)

	// dashboard aggregates, all scoped to tasks visible to the user
	// (project owner, task owner or assignee)
	CountVisible(ctx context.Context, userID int64) (int, error)
	CountVisibleByStatus(ctx context.Context, userID int64, status models.TaskStatus) (int, error)
	OverdueByPriority(ctx context.Context, userID int64, now time.Time) (map[string]int, error)
	DueWithin(ctx context.Context, userID int64, from, to time.Time) ([]models.Task, error)
	ListAssignedOpen(ctx context.Context, userID int64) ([]models.Task, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, project_id, owner_id, assignee_id, title, description, priority, due_date, status, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }, t *models.Task) error {
	return row.Scan(
		&t.ID, &t.ProjectID, &t.OwnerID, &t.AssigneeID, &t.Title, &t.Description,
		&t.Priority, &t.DueDate, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
}

// visibleTasksCond restricts a query to tasks the user may see. The
// placeholder number is always $1.
const visibleTasksCond = `(owner_id = $1 OR assignee_id = $1
   OR project_id IN (SELECT id FROM projects WHERE owner_id = $1))`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (
			project_id, owner_id, assignee_id, title, description,
			priority, due_date, status, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		task.ProjectID, task.OwnerID, task.AssigneeID, task.Title, task.Description,
		task.Priority, task.DueDate, task.Status, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{}
	err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id), task)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	baseQuery := `SELECT ` + taskColumns + ` FROM tasks`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argID))
		args = append(args, *filter.ProjectID)
		argID++
	}
	if filter.OwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", argID))
		args = append(args, *filter.OwnerID)
		argID++
	}
	if filter.AssigneeID != nil {
		conditions = append(conditions, fmt.Sprintf("assignee_id = $%d", argID))
		args = append(args, *filter.AssigneeID)
		argID++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argID))
		args = append(args, *filter.Priority)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY created_at DESC"

	return r.queryTasks(ctx, baseQuery, args...)
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET
			assignee_id=$1, title=$2, description=$3, priority=$4,
			due_date=$5, status=$6, updated_at=$7
		WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query,
		task.AssigneeID, task.Title, task.Description, task.Priority,
		task.DueDate, task.Status, task.UpdatedAt, task.ID,
	)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, to models.TaskStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status=$1, updated_at=NOW() WHERE id=$2`, to, id)
	return err
}

func (r *taskRepository) UpdateAssignee(ctx context.Context, id int64, assigneeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET assignee_id=$1, updated_at=NOW() WHERE id=$2`, assigneeID, id)
	return err
}

func (r *taskRepository) OpenTasksWithDueDates(ctx context.Context) ([]models.Task, error) {
	q := `
SELECT ` + taskColumns + `
FROM tasks
WHERE due_date IS NOT NULL
  AND status != 'completed'
ORDER BY due_date ASC`
	return r.queryTasks(ctx, q)
}

func (r *taskRepository) CountVisible(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE `+visibleTasksCond, userID).Scan(&n)
	return n, err
}

func (r *taskRepository) CountVisibleByStatus(ctx context.Context, userID int64, status models.TaskStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE `+visibleTasksCond+` AND status = $2`,
		userID, status).Scan(&n)
	return n, err
}

func (r *taskRepository) OverdueByPriority(ctx context.Context, userID int64, now time.Time) (map[string]int, error) {
	q := `
SELECT priority, COUNT(*)
FROM tasks
WHERE ` + visibleTasksCond + `
  AND due_date < $2
  AND status != 'completed'
GROUP BY priority`
	rows, err := r.db.QueryContext(ctx, q, userID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var priority string
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, err
		}
		out[priority] = count
	}
	return out, rows.Err()
}

func (r *taskRepository) DueWithin(ctx context.Context, userID int64, from, to time.Time) ([]models.Task, error) {
	q := `
SELECT ` + taskColumns + `
FROM tasks
WHERE ` + visibleTasksCond + `
  AND due_date BETWEEN $2 AND $3
  AND status != 'completed'
ORDER BY due_date ASC`
	return r.queryTasks(ctx, q, userID, from, to)
}

func (r *taskRepository) ListAssignedOpen(ctx context.Context, userID int64) ([]models.Task, error) {
	q := `
SELECT ` + taskColumns + `
FROM tasks
WHERE assignee_id = $1
  AND status != 'completed'
ORDER BY due_date ASC NULLS LAST`
	return r.queryTasks(ctx, q, userID)
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
