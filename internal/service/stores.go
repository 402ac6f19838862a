package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
)

// Store interfaces the services depend on. The repository package satisfies
// all of them against Postgres; tests use in-memory fakes.

type ClientStore interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByPhotographer(photographerID uuid.UUID, search string, paymentStatus string) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uuid.UUID) error
}

type PackageStore interface {
	GetByID(id uuid.UUID) (*models.Package, error)
	GetAll() ([]models.Package, error)
}

type DeliverableStore interface {
	GetByClient(clientID uuid.UUID) ([]models.DeliverableStatus, error)
	GetByClientAndName(clientID uuid.UUID, name string) (*models.DeliverableStatus, error)
	Upsert(clientID uuid.UUID, name string, status models.DeliverableState) (*models.DeliverableStatus, error)
}

type CommentStore interface {
	Create(comment *models.PhotoComment) error
	GetByClientAndPath(clientID uuid.UUID, photoPath string) ([]models.PhotoComment, error)
	ResolveOpen(clientID uuid.UUID, photoPath string, actorID uuid.UUID, now time.Time) (int64, error)
}

type WorkflowStateStore interface {
	GetByClient(clientID uuid.UUID) (*models.WorkflowState, error)
	Upsert(state *models.WorkflowState) error
}

// ClientDataCleaner removes a client's dependent rows on client deletion.
type ClientDataCleaner interface {
	DeleteByClient(clientID uuid.UUID) error
}
