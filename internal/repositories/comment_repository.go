package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taskboard/internal/models"
)

var ErrCommentNotFound = fmt.Errorf("comment not found")

type CommentRepository interface {
	Store(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
	CountVisible(ctx context.Context, userID int64) (int, error)
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Store(ctx context.Context, comment *models.Comment) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO task_comments (task_id, user_id, body, created_at)
		 VALUES ($1,$2,$3,$4) RETURNING id, created_at`,
		comment.TaskID, comment.UserID, comment.Body, comment.CreatedAt,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	c := &models.Comment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, task_id, user_id, body, created_at FROM task_comments WHERE id = $1`, id,
	).Scan(&c.ID, &c.TaskID, &c.UserID, &c.Body, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID int64) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, user_id, body, created_at
		 FROM task_comments WHERE task_id = $1 ORDER BY created_at ASC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM task_comments WHERE id = $1`, id)
	return err
}

func (r *commentRepository) CountVisible(ctx context.Context, userID int64) (int, error) {
	q := `
SELECT COUNT(*)
FROM task_comments c
JOIN tasks t ON t.id = c.task_id
WHERE t.owner_id = $1 OR t.assignee_id = $1
   OR t.project_id IN (SELECT id FROM projects WHERE owner_id = $1)`
	var n int
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&n)
	return n, err
}
