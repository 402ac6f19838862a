package service

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/notify"
	"github.com/photoclientpro/photoclient-backend/pkg/storage"
	"github.com/photoclientpro/photoclient-backend/pkg/utils"
	"go.uber.org/zap"
)

const downloadURLExpiry = 15 * time.Minute
const maxUploadSize = 50 * 1024 * 1024

type FolderService struct {
	clients  ClientStore
	packages PackageStore
	storage  storage.ObjectStorage
	buckets  map[models.FolderType]string
	hub      *notify.Hub
	logger   *zap.Logger
}

func NewFolderService(
	clients ClientStore,
	packages PackageStore,
	objectStorage storage.ObjectStorage,
	buckets map[models.FolderType]string,
	hub *notify.Hub,
	logger *zap.Logger,
) *FolderService {
	return &FolderService{
		clients:  clients,
		packages: packages,
		storage:  objectStorage,
		buckets:  buckets,
		hub:      hub,
		logger:   logger,
	}
}

func (s *FolderService) bucketFor(folder models.FolderType) string {
	return s.buckets[folder]
}

func (s *FolderService) objectKey(clientID uuid.UUID, fileName string) string {
	return fmt.Sprintf("%s/%s", clientID, fileName)
}

func (s *FolderService) loadClient(clientID, photographerID uuid.UUID, shared bool) (*models.Client, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if !shared && client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}
	return client, nil
}

// ListFiles returns the client's files in one folder. For quota-bounded
// stages the listing carries the package limit so selections can be capped
// before a move is even attempted.
func (s *FolderService) ListFiles(clientID, photographerID uuid.UUID, folder models.FolderType, shared bool) (*models.FolderListing, error) {
	client, err := s.loadClient(clientID, photographerID, shared)
	if err != nil {
		return nil, err
	}

	prefix := client.ID.String() + "/"
	objects, err := s.storage.List(s.bucketFor(folder), prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	listing := &models.FolderListing{Files: []models.FileInfo{}}
	for _, obj := range objects {
		listing.Files = append(listing.Files, models.FileInfo{
			Name:      strings.TrimPrefix(obj.Key, prefix),
			Size:      obj.Size,
			UpdatedAt: obj.LastModified,
		})
	}

	if folder.Quotaed() && client.PackageID != nil {
		pkg, err := s.packages.GetByID(*client.PackageID)
		if err == nil {
			remaining := pkg.MaxEditedPhotos - len(listing.Files)
			if remaining < 0 {
				remaining = 0
			}
			listing.Quota = &models.QuotaInfo{
				Max:       pkg.MaxEditedPhotos,
				Current:   len(listing.Files),
				Remaining: remaining,
			}
		}
	}

	return listing, nil
}

// CountFiles reports the object count for a client's stage. The workflow
// calculator uses this for the selection/editing checklist items.
func (s *FolderService) CountFiles(clientID uuid.UUID, folder models.FolderType) (int, error) {
	return s.storage.Count(s.bucketFor(folder), clientID.String()+"/")
}

// UploadFiles stores each file under a generated name. Failures are
// per-file; files already stored stay stored.
func (s *FolderService) UploadFiles(clientID, photographerID uuid.UUID, folder models.FolderType, files []*multipart.FileHeader) (*models.BatchResult, error) {
	client, err := s.loadClient(clientID, photographerID, false)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, models.NewValidationError("no files in upload")
	}

	result := &models.BatchResult{Succeeded: []string{}, Failed: []models.BatchFailure{}}

	for _, file := range files {
		if !isAllowedFileType(file.Header.Get("Content-Type")) {
			result.Failed = append(result.Failed, models.BatchFailure{
				FileName: file.Filename,
				Error:    "unsupported file type",
			})
			continue
		}
		if file.Size > maxUploadSize {
			result.Failed = append(result.Failed, models.BatchFailure{
				FileName: file.Filename,
				Error:    "file too large",
			})
			continue
		}

		src, err := file.Open()
		if err != nil {
			result.Failed = append(result.Failed, models.BatchFailure{
				FileName: file.Filename,
				Error:    err.Error(),
			})
			continue
		}

		name := utils.GenerateFileName(file.Filename)
		err = s.storage.Upload(s.bucketFor(folder), s.objectKey(client.ID, name), src)
		src.Close()
		if err != nil {
			s.logger.Error("upload failed",
				zap.String("file", file.Filename), zap.Error(err))
			result.Failed = append(result.Failed, models.BatchFailure{
				FileName: file.Filename,
				Error:    err.Error(),
			})
			continue
		}

		result.Succeeded = append(result.Succeeded, name)
	}

	if len(result.Succeeded) > 0 {
		s.hub.Publish(client.ID)
	}

	return result, nil
}

// PresignDownload returns a time-limited GET URL for one file.
func (s *FolderService) PresignDownload(clientID, photographerID uuid.UUID, folder models.FolderType, fileName string, shared bool) (string, error) {
	client, err := s.loadClient(clientID, photographerID, shared)
	if err != nil {
		return "", err
	}
	return s.storage.PresignGet(s.bucketFor(folder), s.objectKey(client.ID, fileName), downloadURLExpiry)
}

func (s *FolderService) DeleteFile(clientID, photographerID uuid.UUID, folder models.FolderType, fileName string) error {
	client, err := s.loadClient(clientID, photographerID, false)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(s.bucketFor(folder), s.objectKey(client.ID, fileName)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	s.hub.Publish(client.ID)
	return nil
}

// MoveSelection advances the named files one pipeline stage, enforcing the
// package quota on the destination. The quota check is check-then-act:
// two concurrent moves for the same client can jointly overshoot the limit.
//
// Per file the move is download, upload, delete-source. A failure before
// the upload leaves the file untouched in the source stage; a failed
// source delete after a successful upload leaves the file in both stages,
// reported as a warning. Re-running the move on such a file is safe since
// deleting an absent key is a no-op.
func (s *FolderService) MoveSelection(clientID, photographerID uuid.UUID, source, target models.FolderType, fileNames []string) (*models.BatchResult, error) {
	if len(fileNames) == 0 {
		return nil, models.NewValidationError("no files selected")
	}
	if !models.AdjacentStages(source, target) {
		return nil, models.NewValidationError("cannot move from %s to %s", source, target)
	}

	client, err := s.loadClient(clientID, photographerID, false)
	if err != nil {
		return nil, err
	}
	if client.PackageID == nil {
		return nil, models.ErrNoPackage
	}
	pkg, err := s.packages.GetByID(*client.PackageID)
	if err != nil {
		return nil, err
	}

	targetBucket := s.bucketFor(target)
	sourceBucket := s.bucketFor(source)

	current, err := s.storage.Count(targetBucket, client.ID.String()+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to count destination stage: %w", err)
	}
	if current+len(fileNames) > pkg.MaxEditedPhotos {
		return nil, &models.QuotaExceededError{
			Max:       pkg.MaxEditedPhotos,
			Current:   current,
			Requested: len(fileNames),
		}
	}

	result := &models.BatchResult{Succeeded: []string{}, Failed: []models.BatchFailure{}}

	for _, name := range fileNames {
		key := s.objectKey(client.ID, name)

		data, err := s.storage.Download(sourceBucket, key)
		if err != nil {
			result.Failed = append(result.Failed, models.BatchFailure{FileName: name, Error: err.Error()})
			continue
		}
		if err := s.storage.Upload(targetBucket, key, bytes.NewReader(data)); err != nil {
			result.Failed = append(result.Failed, models.BatchFailure{FileName: name, Error: err.Error()})
			continue
		}
		if err := s.storage.Delete(sourceBucket, key); err != nil {
			// copied but not removed: the file now exists in both stages
			s.logger.Warn("source delete failed after copy",
				zap.String("file", name),
				zap.String("source", string(source)),
				zap.String("target", string(target)),
				zap.Error(err))
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s was copied to %s but could not be removed from %s", name, target, source))
		}
		result.Succeeded = append(result.Succeeded, name)
	}

	if len(result.Succeeded) > 0 {
		s.hub.Publish(client.ID)
	}

	return result, nil
}

// ReplacePhoto overwrites a photo in the all-photos bucket in place, so
// comment threads and any other references by path stay valid.
func (s *FolderService) ReplacePhoto(clientID uuid.UUID, photoPath string, content []byte) error {
	if !strings.HasPrefix(photoPath, clientID.String()+"/") {
		return models.NewValidationError("photo path does not belong to client")
	}
	return s.storage.Upload(s.bucketFor(models.FolderAllPhotos), photoPath, bytes.NewReader(content))
}

func isAllowedFileType(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/") {
		return true
	}
	return contentType == "application/pdf"
}
