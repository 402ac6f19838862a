package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/notify"
	"github.com/photoclientpro/photoclient-backend/pkg/storage"
	"go.uber.org/zap"
)

type ClientService struct {
	clients  ClientStore
	packages PackageStore
	cleaners []ClientDataCleaner
	storage  storage.ObjectStorage
	buckets  map[models.FolderType]string
	hub      *notify.Hub
	logger   *zap.Logger
}

func NewClientService(
	clients ClientStore,
	packages PackageStore,
	cleaners []ClientDataCleaner,
	objectStorage storage.ObjectStorage,
	buckets map[models.FolderType]string,
	hub *notify.Hub,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		clients:  clients,
		packages: packages,
		cleaners: cleaners,
		storage:  objectStorage,
		buckets:  buckets,
		hub:      hub,
		logger:   logger,
	}
}

func (s *ClientService) CreateClient(photographerID uuid.UUID, req models.ClientRequest) (*models.Client, error) {
	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentUnpaid
	}
	if !paymentStatus.Valid() {
		return nil, models.NewValidationError("invalid payment status %q", paymentStatus)
	}

	if req.PackageID != nil {
		if _, err := s.packages.GetByID(*req.PackageID); err != nil {
			return nil, err
		}
	}

	client := &models.Client{
		Name:           req.Name,
		Contact:        req.Contact,
		Location:       req.Location,
		Description:    req.Description,
		EventType:      req.EventType,
		EventDate:      req.EventDate,
		DueDate:        req.DueDate,
		PaymentStatus:  paymentStatus,
		PackageID:      req.PackageID,
		PhotographerID: photographerID,
	}

	if err := s.clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient loads a client with an ownership check. Shared (client-facing)
// reads go through GetSharedClient instead.
func (s *ClientService) GetClient(clientID, photographerID uuid.UUID) (*models.Client, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}
	return client, nil
}

func (s *ClientService) GetSharedClient(clientID uuid.UUID) (*models.Client, error) {
	return s.clients.GetByID(clientID)
}

func (s *ClientService) ListClients(photographerID uuid.UUID, search string, paymentStatus string) ([]models.Client, error) {
	if paymentStatus != "" && !models.PaymentStatus(paymentStatus).Valid() {
		return nil, models.NewValidationError("invalid payment status filter %q", paymentStatus)
	}
	return s.clients.GetByPhotographer(photographerID, search, paymentStatus)
}

func (s *ClientService) CategorizedClients(photographerID uuid.UUID) (*models.ClientCategories, error) {
	clients, err := s.clients.GetByPhotographer(photographerID, "", "")
	if err != nil {
		return nil, err
	}
	categories := CategorizeClients(clients, time.Now())
	return &categories, nil
}

// CategorizeClients buckets clients by engagement phase. No event date or a
// future one means upcoming; an event today is in progress; a past event
// stays in progress while the due date has not passed, then moves to
// completed.
func CategorizeClients(clients []models.Client, now time.Time) models.ClientCategories {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	categories := models.ClientCategories{
		Upcoming:   []models.Client{},
		InProgress: []models.Client{},
		Completed:  []models.Client{},
	}

	for _, client := range clients {
		if client.EventDate == nil {
			categories.Upcoming = append(categories.Upcoming, client)
			continue
		}

		ed := *client.EventDate
		eventDay := time.Date(ed.Year(), ed.Month(), ed.Day(), 0, 0, 0, 0, now.Location())

		switch {
		case eventDay.After(today):
			categories.Upcoming = append(categories.Upcoming, client)
		case eventDay.Equal(today):
			categories.InProgress = append(categories.InProgress, client)
		default:
			if client.DueDate != nil {
				dd := *client.DueDate
				dueDay := time.Date(dd.Year(), dd.Month(), dd.Day(), 0, 0, 0, 0, now.Location())
				if !dueDay.Before(today) {
					categories.InProgress = append(categories.InProgress, client)
					continue
				}
			}
			categories.Completed = append(categories.Completed, client)
		}
	}

	return categories
}

func (s *ClientService) UpdateClient(clientID, photographerID uuid.UUID, req models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetClient(clientID, photographerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.Location != nil {
		client.Location = *req.Location
	}
	if req.Description != nil {
		client.Description = *req.Description
	}
	if req.EventType != nil {
		client.EventType = *req.EventType
	}
	if req.EventDate != nil {
		client.EventDate = req.EventDate
	}
	if req.DueDate != nil {
		client.DueDate = req.DueDate
	}
	if req.PaymentStatus != nil {
		if !req.PaymentStatus.Valid() {
			return nil, models.NewValidationError("invalid payment status %q", *req.PaymentStatus)
		}
		client.PaymentStatus = *req.PaymentStatus
	}
	if req.PackageID != nil {
		if _, err := s.packages.GetByID(*req.PackageID); err != nil {
			return nil, err
		}
		client.PackageID = req.PackageID
	}

	if err := s.clients.Update(client); err != nil {
		return nil, err
	}

	// payment status and package feed the workflow checklist
	s.hub.Publish(client.ID)

	return client, nil
}

// DeleteClient removes the client row, its dependent rows, and its objects
// in all four buckets. Blob cleanup is best effort: the store does not
// cascade into the buckets, and a leftover object is preferable to a
// half-deleted client row.
func (s *ClientService) DeleteClient(clientID, photographerID uuid.UUID) error {
	client, err := s.GetClient(clientID, photographerID)
	if err != nil {
		return err
	}

	for _, cleaner := range s.cleaners {
		if err := cleaner.DeleteByClient(client.ID); err != nil {
			return err
		}
	}

	if err := s.clients.Delete(client.ID); err != nil {
		return err
	}

	prefix := client.ID.String() + "/"
	for folder, bucket := range s.buckets {
		objects, err := s.storage.List(bucket, prefix)
		if err != nil {
			s.logger.Warn("failed to list bucket during client cleanup",
				zap.String("folder", string(folder)), zap.Error(err))
			continue
		}
		for _, obj := range objects {
			if err := s.storage.Delete(bucket, obj.Key); err != nil {
				s.logger.Warn("failed to delete object during client cleanup",
					zap.String("key", obj.Key), zap.Error(err))
			}
		}
	}

	s.hub.Publish(client.ID)
	return nil
}
