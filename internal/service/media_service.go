package service

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/dto"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/model"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/consts"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/minio"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/util"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"

	"github.com/google/uuid"
)

type MediaService interface {
	ListPhotos(ctx context.Context, issueID uint64) ([]*dto.PhotoDTO, error)
	UploadPhotos(ctx context.Context, userID uint64, issueID uint64, files []*multipart.FileHeader) ([]*dto.PhotoDTO, error)
	ListAttachments(ctx context.Context, issueID uint64) ([]*dto.AttachmentDTO, error)
	UploadAttachments(ctx context.Context, userID uint64, username string, issueID uint64, files []*multipart.FileHeader) ([]*dto.AttachmentDTO, error)
}

type MediaServiceImpl struct {
	mediaRepo repository.MediaRepo
	issueRepo repository.IssueRepo
	notifier  NotifierService
}

func NewMediaService(mediaRepo repository.MediaRepo, issueRepo repository.IssueRepo, notifier NotifierService) MediaService {
	return &MediaServiceImpl{
		mediaRepo: mediaRepo,
		issueRepo: issueRepo,
		notifier:  notifier,
	}
}

func (s *MediaServiceImpl) ListPhotos(ctx context.Context, issueID uint64) ([]*dto.PhotoDTO, error) {
	if _, err := s.requireIssue(ctx, issueID); err != nil {
		return nil, err
	}
	photos, err := s.mediaRepo.ListPhotosByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return toPhotoDTOs(photos), nil
}

// UploadPhotos stores issue photos. Only real decodable images up to 2MB
// are accepted, at most five per request.
func (s *MediaServiceImpl) UploadPhotos(ctx context.Context, userID uint64, issueID uint64, files []*multipart.FileHeader) ([]*dto.PhotoDTO, error) {
	issue, err := s.requireIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue.UserID != userID {
		return nil, ErrNotOwner
	}
	if len(files) == 0 {
		return nil, ErrParamInvalid
	}
	if len(files) > consts.MaxFilesPerUpload {
		return nil, ErrTooManyFiles
	}

	for _, fh := range files {
		objectName, _, err := storeUpload(ctx, fh, consts.MaxPhotoSize, acceptPhoto)
		if err != nil {
			return nil, err
		}
		photo := &model.IssuePhoto{
			IssueID:      issueID,
			Filename:     objectName,
			OriginalName: util.PtrString(fh.Filename),
		}
		if err := s.mediaRepo.CreatePhoto(ctx, photo); err != nil {
			return nil, err
		}
	}

	photos, err := s.mediaRepo.ListPhotosByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return toPhotoDTOs(photos), nil
}

func (s *MediaServiceImpl) ListAttachments(ctx context.Context, issueID uint64) ([]*dto.AttachmentDTO, error) {
	if _, err := s.requireIssue(ctx, issueID); err != nil {
		return nil, err
	}
	atts, err := s.mediaRepo.ListAttachmentsByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return toAttachmentDTOs(atts), nil
}

// UploadAttachments stores generic media (image/audio/video) up to 15MB per
// file and notifies followers once per batch.
func (s *MediaServiceImpl) UploadAttachments(ctx context.Context, userID uint64, username string, issueID uint64, files []*multipart.FileHeader) ([]*dto.AttachmentDTO, error) {
	issue, err := s.requireIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue.UserID != userID {
		return nil, ErrNotOwner
	}
	if len(files) == 0 {
		return nil, ErrParamInvalid
	}
	if len(files) > consts.MaxFilesPerUpload {
		return nil, ErrTooManyFiles
	}

	stored := 0
	for _, fh := range files {
		objectName, mime, err := storeUpload(ctx, fh, consts.MaxAttachmentSize, acceptMedia)
		if err != nil {
			return nil, err
		}
		att := &model.IssueAttachment{
			IssueID:      issueID,
			Filename:     objectName,
			OriginalName: util.PtrString(fh.Filename),
			Mime:         mime,
			Kind:         util.KindFromMime(mime),
		}
		if err := s.mediaRepo.CreateAttachment(ctx, att); err != nil {
			return nil, err
		}
		stored++
	}

	s.notifier.NotifyFollowers(ctx, issueID, userID, NotificationTypeMedia, &MediaPayload{
		IssueID:    issueID,
		By:         username,
		Count:      stored,
		IssueTitle: issue.Title,
	})

	atts, err := s.mediaRepo.ListAttachmentsByIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	return toAttachmentDTOs(atts), nil
}

func (s *MediaServiceImpl) requireIssue(ctx context.Context, issueID uint64) (*model.Issue, error) {
	issue, err := s.issueRepo.GetIssueByID(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}
	return issue, nil
}

// storeUpload validates one multipart file and puts it in the object store.
// The sniffed mime wins over whatever the client declared. The accept hook
// runs before the put so rejected files never reach the store.
func storeUpload(ctx context.Context, fh *multipart.FileHeader, maxSize int64, accept func(mime string, file io.ReadSeeker) error) (objectName, mime string, err error) {
	if fh.Size > maxSize {
		return "", "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	mime, err = util.GetSafeContentType(file)
	if err != nil {
		return "", "", err
	}
	if accept != nil {
		if err = accept(mime, file); err != nil {
			return "", "", err
		}
	}

	objectName = time.Now().Format("2006/01/02/") + uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if _, err = minio.UploadFile(ctx, objectName, file, fh.Size, mime); err != nil {
		return "", "", err
	}
	return objectName, mime, nil
}

// acceptPhoto requires a real decodable image, not just an image mime.
func acceptPhoto(mime string, file io.ReadSeeker) error {
	if !strings.HasPrefix(mime, consts.MimePrefixImage) {
		return ErrFileNotSupported
	}
	if _, _, err := util.GetImageDimensions(file); err != nil {
		return ErrFileNotSupported
	}
	return nil
}

func acceptMedia(mime string, _ io.ReadSeeker) error {
	if util.KindFromMime(mime) == model.AttachmentKindOther {
		return ErrFileNotSupported
	}
	return nil
}

func toPhotoDTOs(photos []*model.IssuePhoto) []*dto.PhotoDTO {
	items := make([]*dto.PhotoDTO, 0, len(photos))
	for _, p := range photos {
		items = append(items, &dto.PhotoDTO{
			ID:           p.ID,
			URL:          minio.GetPublicURL(p.Filename),
			OriginalName: p.OriginalName,
			CreatedAt:    p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return items
}

func toAttachmentDTOs(atts []*model.IssueAttachment) []*dto.AttachmentDTO {
	items := make([]*dto.AttachmentDTO, 0, len(atts))
	for _, a := range atts {
		items = append(items, &dto.AttachmentDTO{
			ID:           a.ID,
			URL:          minio.GetPublicURL(a.Filename),
			OriginalName: a.OriginalName,
			Mime:         a.Mime,
			Kind:         a.Kind,
			CreatedAt:    a.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return items
}
