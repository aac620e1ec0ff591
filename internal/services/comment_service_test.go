package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

type fakeCommentRepo struct {
	comments map[int64]*models.Comment
	byTask   []models.Comment
	deleted  []int64
}

func (r *fakeCommentRepo) Store(_ context.Context, c *models.Comment) error {
	c.ID = 1
	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id int64) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByTask(_ context.Context, _ int64) ([]models.Comment, error) {
	return r.byTask, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCommentRepo) CountVisible(context.Context, int64) (int, error) { return 0, nil }

type attachmentCall struct {
	parentType models.ImageParent
	parentID   int64
}

type fakeAttachments struct {
	byParent map[int64][]models.Image
	removed  []attachmentCall
}

func (s *fakeAttachments) Register(_ context.Context, _ int64, img *models.Image) (*models.Image, error) {
	return img, nil
}

func (s *fakeAttachments) ListByParent(_ context.Context, _ models.ImageParent, parentID int64) ([]models.Image, error) {
	return s.byParent[parentID], nil
}

func (s *fakeAttachments) DeleteByParent(_ context.Context, parentType models.ImageParent, parentID int64) error {
	s.removed = append(s.removed, attachmentCall{parentType, parentID})
	return nil
}

func (s *fakeAttachments) StoragePath(models.ImageParent, int64, string) string { return "" }

type nopAudit struct{}

func (nopAudit) Record(_ context.Context, _ int64, _, _ string, _ int64, _, _ any) {}

func TestCommentListByTaskAttachesImages(t *testing.T) {
	repo := &fakeCommentRepo{byTask: []models.Comment{
		{ID: 1, TaskID: 7, Body: "with attachment"},
		{ID: 2, TaskID: 7, Body: "plain"},
	}}
	attachments := &fakeAttachments{byParent: map[int64][]models.Image{
		1: {{ID: 5, ParentType: models.ImageParentComment, ParentID: 1, Path: "comments/1_1.png"}},
	}}
	svc := NewCommentService(repo, attachments, nopAudit{})

	comments, err := svc.ListByTask(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Len(t, comments[0].Images, 1)
	assert.Equal(t, int64(5), comments[0].Images[0].ID)
	assert.Empty(t, comments[1].Images)
}

func TestCommentDeleteRemovesAttachments(t *testing.T) {
	repo := &fakeCommentRepo{comments: map[int64]*models.Comment{
		9: {ID: 9, TaskID: 7, UserID: 1, Body: "to delete"},
	}}
	attachments := &fakeAttachments{}
	svc := NewCommentService(repo, attachments, nopAudit{})

	err := svc.Delete(context.Background(), 1, 9)

	require.NoError(t, err)
	assert.Equal(t, []int64{9}, repo.deleted)
	require.Len(t, attachments.removed, 1)
	assert.Equal(t, attachmentCall{models.ImageParentComment, 9}, attachments.removed[0])
}

func TestCommentDeleteUnknownComment(t *testing.T) {
	repo := &fakeCommentRepo{comments: map[int64]*models.Comment{}}
	attachments := &fakeAttachments{}
	svc := NewCommentService(repo, attachments, nopAudit{})

	err := svc.Delete(context.Background(), 1, 404)

	assert.True(t, errors.Is(err, repositories.ErrCommentNotFound))
	assert.Empty(t, repo.deleted)
	assert.Empty(t, attachments.removed)
}
