package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/notify"
	"go.uber.org/zap"
)

// ReviewMailer notifies a client that a deliverable awaits their review.
type ReviewMailer interface {
	SendDeliverableReviewEmail(to, clientName, clientID, deliverableName string) error
}

type DeliverableService struct {
	deliverables DeliverableStore
	clients      ClientStore
	packages     PackageStore
	hub          *notify.Hub
	mailer       ReviewMailer
	logger       *zap.Logger
}

func NewDeliverableService(
	deliverables DeliverableStore,
	clients ClientStore,
	packages PackageStore,
	hub *notify.Hub,
	mailer ReviewMailer,
	logger *zap.Logger,
) *DeliverableService {
	return &DeliverableService{
		deliverables: deliverables,
		clients:      clients,
		packages:     packages,
		hub:          hub,
		mailer:       mailer,
		logger:       logger,
	}
}

// currentState resolves the stored state; a missing row is not-started.
func (s *DeliverableService) currentState(clientID uuid.UUID, name string) (models.DeliverableState, error) {
	row, err := s.deliverables.GetByClientAndName(clientID, name)
	if err == models.ErrNotFound {
		return models.DeliverableNotStarted, nil
	}
	if err != nil {
		return "", err
	}
	return row.Status, nil
}

// ListForClient maps the package catalog to per-deliverable items. When
// shared, only items the photographer has submitted (pending review or
// already approved) are visible to the client.
func (s *DeliverableService) ListForClient(clientID, photographerID uuid.UUID, shared bool) ([]models.DeliverableItem, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if !shared && client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}
	if client.PackageID == nil {
		return []models.DeliverableItem{}, nil
	}
	pkg, err := s.packages.GetByID(*client.PackageID)
	if err != nil {
		return nil, err
	}

	rows, err := s.deliverables.GetByClient(client.ID)
	if err != nil {
		return nil, err
	}
	statusByName := make(map[string]models.DeliverableState, len(rows))
	for _, row := range rows {
		statusByName[row.DeliverableName] = row.Status
	}

	items := []models.DeliverableItem{}
	for _, name := range pkg.Deliverables {
		status, ok := statusByName[name]
		if !ok {
			status = models.DeliverableNotStarted
		}
		if shared && status != models.DeliverablePendingReview && status != models.DeliverableApproved {
			continue
		}
		items = append(items, models.DeliverableItem{Name: name, Status: status})
	}

	return items, nil
}

// Submit moves a deliverable into pending-review. Submitting an already
// pending item is a no-op; an approved item never regresses. When the
// client's contact is an email address, a review notification goes out;
// a failed email never fails the submit.
func (s *DeliverableService) Submit(clientID, photographerID uuid.UUID, name string) (*models.DeliverableStatus, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}

	current, err := s.currentState(client.ID, name)
	if err != nil {
		return nil, err
	}
	if current == models.DeliverablePendingReview || current == models.DeliverableApproved {
		return s.deliverables.GetByClientAndName(client.ID, name)
	}

	row, err := s.deliverables.Upsert(client.ID, name, models.DeliverablePendingReview)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(client.ID)

	if s.mailer != nil && strings.Contains(client.Contact, "@") {
		if err := s.mailer.SendDeliverableReviewEmail(client.Contact, client.Name, client.ID.String(), name); err != nil {
			s.logger.Warn("review email failed",
				zap.String("client", client.ID.String()), zap.Error(err))
		}
	}

	return row, nil
}

// Approve marks a deliverable approved. The photographer may approve from
// any state; the client (shared view) only from pending-review. Approving
// an approved item is a no-op.
func (s *DeliverableService) Approve(clientID, photographerID uuid.UUID, name string, shared bool) (*models.DeliverableStatus, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if !shared && client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}

	current, err := s.currentState(client.ID, name)
	if err != nil {
		return nil, err
	}
	if current == models.DeliverableApproved {
		return s.deliverables.GetByClientAndName(client.ID, name)
	}
	if shared && current != models.DeliverablePendingReview {
		return nil, models.NewValidationError("deliverable %q is not pending review", name)
	}

	row, err := s.deliverables.Upsert(client.ID, name, models.DeliverableApproved)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(client.ID)
	return row, nil
}

// RequestRevisions sends a pending-review deliverable back for rework.
func (s *DeliverableService) RequestRevisions(clientID, photographerID uuid.UUID, name string) (*models.DeliverableStatus, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}

	current, err := s.currentState(client.ID, name)
	if err != nil {
		return nil, err
	}
	if current != models.DeliverablePendingReview {
		return nil, models.NewValidationError("deliverable %q is not pending review", name)
	}

	row, err := s.deliverables.Upsert(client.ID, name, models.DeliverableRevisionsNeeded)
	if err != nil {
		return nil, err
	}

	s.hub.Publish(client.ID)
	return row, nil
}
