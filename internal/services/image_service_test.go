package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/models"
)

type fakeImageRepo struct {
	images  []models.Image
	deleted []int64
}

func (r *fakeImageRepo) Store(_ context.Context, img *models.Image) error {
	img.ID = 1
	return nil
}

func (r *fakeImageRepo) ListByParent(_ context.Context, _ models.ImageParent, _ int64) ([]models.Image, error) {
	return r.images, nil
}

func (r *fakeImageRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestImageDeleteByParentRemovesRowsAndFiles(t *testing.T) {
	root := t.TempDir()
	relPath := filepath.Join("comments", "9_1.png")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "comments"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, relPath), []byte("png"), 0o644))

	repo := &fakeImageRepo{images: []models.Image{
		{ID: 3, ParentType: models.ImageParentComment, ParentID: 9, Path: relPath},
	}}
	svc := NewImageService(repo, nopAudit{}, root)

	err := svc.DeleteByParent(context.Background(), models.ImageParentComment, 9)

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, repo.deleted)
	_, statErr := os.Stat(filepath.Join(root, relPath))
	assert.True(t, os.IsNotExist(statErr), "stored file must be removed")
}

func TestImageDeleteByParentToleratesMissingFile(t *testing.T) {
	repo := &fakeImageRepo{images: []models.Image{
		{ID: 4, ParentType: models.ImageParentComment, ParentID: 9, Path: "comments/gone.png"},
	}}
	svc := NewImageService(repo, nopAudit{}, t.TempDir())

	err := svc.DeleteByParent(context.Background(), models.ImageParentComment, 9)

	require.NoError(t, err)
	assert.Equal(t, []int64{4}, repo.deleted)
}

func TestImageStoragePath(t *testing.T) {
	svc := NewImageService(&fakeImageRepo{}, nopAudit{}, t.TempDir())

	p := svc.StoragePath(models.ImageParentComment, 9, "photo.png")

	assert.True(t, strings.HasPrefix(p, "comments"), "comment uploads go under comments/")
	assert.Equal(t, ".png", filepath.Ext(p))
}
