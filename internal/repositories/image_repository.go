package repositories

import (
	"context"
	"database/sql"

	"taskboard/internal/models"
)

type ImageRepository interface {
	Store(ctx context.Context, image *models.Image) error
	ListByParent(ctx context.Context, parentType models.ImageParent, parentID int64) ([]models.Image, error)
	Delete(ctx context.Context, id int64) error
}

type imageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Store(ctx context.Context, image *models.Image) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO images (parent_type, parent_id, path, original_name, mime_type, size, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at`,
		image.ParentType, image.ParentID, image.Path, image.OriginalName,
		image.MimeType, image.Size, image.CreatedAt,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *imageRepository) ListByParent(ctx context.Context, parentType models.ImageParent, parentID int64) ([]models.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, parent_type, parent_id, path, original_name, mime_type, size, created_at
		 FROM images WHERE parent_type = $1 AND parent_id = $2 ORDER BY created_at ASC`,
		parentType, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.ParentType, &img.ParentID, &img.Path,
			&img.OriginalName, &img.MimeType, &img.Size, &img.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *imageRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	return err
}
