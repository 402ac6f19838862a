package service

import (
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/notify"
	"go.uber.org/zap"
)

// StageCounter reports the object count of a client's pipeline stage.
type StageCounter interface {
	CountFiles(clientID uuid.UUID, folder models.FolderType) (int, error)
}

// WorkflowService computes the per-client completion checklist. Results are
// cached per client; any published change for the client marks the cache
// entry stale and the next read recomputes from scratch rather than
// patching incrementally.
type WorkflowService struct {
	clients      ClientStore
	packages     PackageStore
	deliverables DeliverableStore
	states       WorkflowStateStore
	counter      StageCounter
	logger       *zap.Logger

	mu    sync.Mutex
	cache map[uuid.UUID]*models.Checklist
	gens  map[uuid.UUID]uint64
}

func NewWorkflowService(
	clients ClientStore,
	packages PackageStore,
	deliverables DeliverableStore,
	states WorkflowStateStore,
	counter StageCounter,
	hub *notify.Hub,
	logger *zap.Logger,
) *WorkflowService {
	s := &WorkflowService{
		clients:      clients,
		packages:     packages,
		deliverables: deliverables,
		states:       states,
		counter:      counter,
		logger:       logger,
		cache:        make(map[uuid.UUID]*models.Checklist),
		gens:         make(map[uuid.UUID]uint64),
	}
	hub.Subscribe(s.Invalidate)
	return s
}

// Invalidate drops the client's cached checklist. The generation bump
// keeps a compute already in flight from storing its snapshot: anything
// read before this call may be stale.
func (s *WorkflowService) Invalidate(clientID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, clientID)
	s.gens[clientID]++
	s.mu.Unlock()
}

// GetChecklist returns the client's checklist, computing it if the cached
// copy has been invalidated. In shared mode the deliverable sub-items are
// narrowed to the ones awaiting the client's review.
func (s *WorkflowService) GetChecklist(clientID, photographerID uuid.UUID, shared bool) (*models.Checklist, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if !shared && client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}

	s.mu.Lock()
	cached, ok := s.cache[client.ID]
	gen := s.gens[client.ID]
	s.mu.Unlock()

	if !ok {
		cached, err = s.compute(client)
		if err != nil {
			return nil, err
		}
		// an invalidation during the compute means this snapshot may
		// predate the change; serve it once but do not cache it
		s.mu.Lock()
		if s.gens[client.ID] == gen {
			s.cache[client.ID] = cached
		}
		s.mu.Unlock()
	}

	checklist := cloneChecklist(cached)
	if shared {
		filterSharedSubItems(checklist)
	}
	return checklist, nil
}

// ToggleItem flips one manual checklist flag and returns the recomputed
// checklist.
func (s *WorkflowService) ToggleItem(clientID, photographerID uuid.UUID, item models.ChecklistItemID, done bool) (*models.Checklist, error) {
	client, err := s.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client.PhotographerID != photographerID {
		return nil, models.ErrUnauthorized
	}
	if !item.Toggleable() {
		return nil, models.NewValidationError("checklist item %q is not manually toggleable", item)
	}

	state, err := s.states.GetByClient(client.ID)
	if err == models.ErrNotFound {
		state = &models.WorkflowState{ClientID: client.ID}
	} else if err != nil {
		return nil, err
	}

	switch item {
	case models.ItemCoverage:
		state.CoverageDone = done
	case models.ItemSelection:
		state.SelectionDone = done
	case models.ItemEditing:
		state.EditingDone = done
	case models.ItemReview:
		state.ReviewDone = done
	case models.ItemDelivery:
		state.DeliveryDone = done
	}

	if err := s.states.Upsert(state); err != nil {
		return nil, err
	}

	s.Invalidate(client.ID)
	return s.GetChecklist(client.ID, photographerID, false)
}

func (s *WorkflowService) compute(client *models.Client) (*models.Checklist, error) {
	var pkg *models.Package
	if client.PackageID != nil {
		p, err := s.packages.GetByID(*client.PackageID)
		if err != nil && err != models.ErrNotFound {
			return nil, err
		}
		pkg = p
	}

	statuses, err := s.deliverables.GetByClient(client.ID)
	if err != nil {
		return nil, err
	}

	state, err := s.states.GetByClient(client.ID)
	if err == models.ErrNotFound {
		state = &models.WorkflowState{ClientID: client.ID}
	} else if err != nil {
		return nil, err
	}

	selectedCount, err := s.counter.CountFiles(client.ID, models.FolderSelectedPhotos)
	if err != nil {
		return nil, err
	}
	finalCount, err := s.counter.CountFiles(client.ID, models.FolderFinalPhotos)
	if err != nil {
		return nil, err
	}

	return ComputeChecklist(client, pkg, statuses, state, selectedCount, finalCount), nil
}

// ComputeChecklist derives the eight-item checklist from current state. It
// is a pure function: same inputs, same checklist, no hysteresis.
//
// Rules, in fixed order:
//  1. Package Confirmation: done when a package is assigned.
//  2. Event Coverage Completed: manual toggle.
//  3. Client Photo Selection: manual toggle, or done once the selected
//     stage holds at least ceil(0.6 * max_edited_photos) files.
//  4. Editing & Post-Production: manual toggle, or done when the final
//     count equals the selected count.
//  5. Final Deliverables Ready: done when every catalog deliverable is
//     approved, in progress when any has been started.
//  6. Client Review & Feedback: manual toggle.
//  7. Final Delivery Completed: manual toggle.
//  8. Payment Closed: done when payment status is paid.
func ComputeChecklist(
	client *models.Client,
	pkg *models.Package,
	statuses []models.DeliverableStatus,
	state *models.WorkflowState,
	selectedCount, finalCount int,
) *models.Checklist {
	statusByName := make(map[string]models.DeliverableState, len(statuses))
	for _, row := range statuses {
		statusByName[row.DeliverableName] = row.Status
	}

	selectionDone := state.SelectionDone
	if !selectionDone && pkg != nil {
		// a zero-photo quota means a zero threshold: trivially met
		threshold := int(math.Ceil(float64(pkg.MaxEditedPhotos) * 0.6))
		selectionDone = selectedCount >= threshold
	}

	editingDone := state.EditingDone || (pkg != nil && finalCount == selectedCount)

	deliverablesStatus := models.ChecklistPending
	var subItems []models.ChecklistSubItem
	if pkg != nil && len(pkg.Deliverables) > 0 {
		allApproved := true
		anyStarted := false
		for _, name := range pkg.Deliverables {
			status, ok := statusByName[name]
			if !ok {
				status = models.DeliverableNotStarted
			}
			if status != models.DeliverableApproved {
				allApproved = false
			}
			if status != models.DeliverableNotStarted {
				anyStarted = true
			}
			subItems = append(subItems, models.ChecklistSubItem{Name: name, Status: status})
		}
		switch {
		case allApproved:
			deliverablesStatus = models.ChecklistDone
		case anyStarted:
			deliverablesStatus = models.ChecklistInProgress
		}
	}

	items := []models.ChecklistItem{
		{ID: models.ItemPackage, Label: "Package Confirmation", Status: boolStatus(client.PackageID != nil), AutoChecked: true},
		{ID: models.ItemCoverage, Label: "Event Coverage Completed", Status: boolStatus(state.CoverageDone)},
		{ID: models.ItemSelection, Label: "Client Photo Selection", Status: boolStatus(selectionDone)},
		{ID: models.ItemEditing, Label: "Editing & Post-Production", Status: boolStatus(editingDone)},
		{ID: models.ItemDeliverables, Label: "Final Deliverables Ready", Status: deliverablesStatus, SubItems: subItems},
		{ID: models.ItemReview, Label: "Client Review & Feedback", Status: boolStatus(state.ReviewDone)},
		{ID: models.ItemDelivery, Label: "Final Delivery Completed", Status: boolStatus(state.DeliveryDone)},
		{ID: models.ItemPayment, Label: "Payment Closed", Status: boolStatus(client.PaymentStatus == models.PaymentPaid), AutoChecked: true},
	}

	completed := 0
	for _, item := range items {
		if item.Status == models.ChecklistDone {
			completed++
		}
	}

	return &models.Checklist{
		Items:              items,
		CompletedCount:     completed,
		TotalCount:         len(items),
		ProgressPercentage: 100 * float64(completed) / float64(len(items)),
	}
}

func boolStatus(done bool) models.ChecklistStatus {
	if done {
		return models.ChecklistDone
	}
	return models.ChecklistPending
}

func cloneChecklist(c *models.Checklist) *models.Checklist {
	clone := *c
	clone.Items = make([]models.ChecklistItem, len(c.Items))
	copy(clone.Items, c.Items)
	for i, item := range clone.Items {
		if len(item.SubItems) > 0 {
			subs := make([]models.ChecklistSubItem, len(item.SubItems))
			copy(subs, item.SubItems)
			clone.Items[i].SubItems = subs
		}
	}
	return &clone
}

// filterSharedSubItems narrows deliverable sub-items to the ones a client
// can act on in the shared view.
func filterSharedSubItems(c *models.Checklist) {
	for i, item := range c.Items {
		if item.ID != models.ItemDeliverables {
			continue
		}
		var visible []models.ChecklistSubItem
		for _, sub := range item.SubItems {
			if sub.Status == models.DeliverablePendingReview {
				visible = append(visible, sub)
			}
		}
		c.Items[i].SubItems = visible
	}
}
