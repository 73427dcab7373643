package repository

import (
	"context"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"

	"gorm.io/gorm"
)

type MediaRepo interface {
	CreatePhoto(ctx context.Context, photo *model.IssuePhoto) error
	ListPhotosByIssue(ctx context.Context, issueID uint64) ([]*model.IssuePhoto, error)
	DeletePhotosByIssue(ctx context.Context, issueID uint64) error

	CreateAttachment(ctx context.Context, att *model.IssueAttachment) error
	ListAttachmentsByIssue(ctx context.Context, issueID uint64) ([]*model.IssueAttachment, error)
	DeleteAttachmentsByIssue(ctx context.Context, issueID uint64) error
}

type MediaRepoImpl struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &MediaRepoImpl{db: db}
}

func (s *MediaRepoImpl) CreatePhoto(ctx context.Context, photo *model.IssuePhoto) error {
	return s.db.WithContext(ctx).Create(photo).Error
}

func (s *MediaRepoImpl) ListPhotosByIssue(ctx context.Context, issueID uint64) ([]*model.IssuePhoto, error) {
	var photos []*model.IssuePhoto
	result := s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("id ASC").
		Find(&photos)
	if result.Error != nil {
		return nil, result.Error
	}
	return photos, nil
}

func (s *MediaRepoImpl) DeletePhotosByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.IssuePhoto{}).Error
}

func (s *MediaRepoImpl) CreateAttachment(ctx context.Context, att *model.IssueAttachment) error {
	return s.db.WithContext(ctx).Create(att).Error
}

func (s *MediaRepoImpl) ListAttachmentsByIssue(ctx context.Context, issueID uint64) ([]*model.IssueAttachment, error) {
	var atts []*model.IssueAttachment
	result := s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("id ASC").
		Find(&atts)
	if result.Error != nil {
		return nil, result.Error
	}
	return atts, nil
}

func (s *MediaRepoImpl) DeleteAttachmentsByIssue(ctx context.Context, issueID uint64) error {
	return s.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.IssueAttachment{}).Error
}
