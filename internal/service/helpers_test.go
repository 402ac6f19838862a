package service

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/pkg/storage"
	"go.uber.org/zap"
)

// In-memory fakes for the store interfaces. Each test builds the fixture it
// needs and wires only the fakes it touches.

func testLogger() *zap.Logger {
	return zap.NewNop()
}

type fakeClientStore struct {
	clients map[uuid.UUID]*models.Client
}

func newFakeClientStore(clients ...*models.Client) *fakeClientStore {
	s := &fakeClientStore{clients: make(map[uuid.UUID]*models.Client)}
	for _, c := range clients {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		s.clients[c.ID] = c
	}
	return s
}

func (s *fakeClientStore) Create(client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now()
	s.clients[client.ID] = client
	return nil
}

func (s *fakeClientStore) GetByID(id uuid.UUID) (*models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeClientStore) GetByPhotographer(photographerID uuid.UUID, search, paymentStatus string) ([]models.Client, error) {
	var out []models.Client
	for _, c := range s.clients {
		if c.PhotographerID != photographerID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		if paymentStatus != "" && string(c.PaymentStatus) != paymentStatus {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeClientStore) Update(client *models.Client) error {
	if _, ok := s.clients[client.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *client
	s.clients[client.ID] = &copied
	return nil
}

func (s *fakeClientStore) Delete(id uuid.UUID) error {
	delete(s.clients, id)
	return nil
}

type fakePackageStore struct {
	packages map[uuid.UUID]*models.Package
}

func newFakePackageStore(packages ...*models.Package) *fakePackageStore {
	s := &fakePackageStore{packages: make(map[uuid.UUID]*models.Package)}
	for _, p := range packages {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		s.packages[p.ID] = p
	}
	return s
}

func (s *fakePackageStore) GetByID(id uuid.UUID) (*models.Package, error) {
	p, ok := s.packages[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *fakePackageStore) GetAll() ([]models.Package, error) {
	var out []models.Package
	for _, p := range s.packages {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

type deliverableKey struct {
	clientID uuid.UUID
	name     string
}

type fakeDeliverableStore struct {
	rows map[deliverableKey]*models.DeliverableStatus
}

func newFakeDeliverableStore() *fakeDeliverableStore {
	return &fakeDeliverableStore{rows: make(map[deliverableKey]*models.DeliverableStatus)}
}

func (s *fakeDeliverableStore) set(clientID uuid.UUID, name string, status models.DeliverableState) {
	s.rows[deliverableKey{clientID, name}] = &models.DeliverableStatus{
		ID:              uuid.New(),
		ClientID:        clientID,
		DeliverableName: name,
		Status:          status,
	}
}

func (s *fakeDeliverableStore) GetByClient(clientID uuid.UUID) ([]models.DeliverableStatus, error) {
	var out []models.DeliverableStatus
	for k, row := range s.rows {
		if k.clientID == clientID {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeliverableName < out[j].DeliverableName })
	return out, nil
}

func (s *fakeDeliverableStore) GetByClientAndName(clientID uuid.UUID, name string) (*models.DeliverableStatus, error) {
	row, ok := s.rows[deliverableKey{clientID, name}]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (s *fakeDeliverableStore) Upsert(clientID uuid.UUID, name string, status models.DeliverableState) (*models.DeliverableStatus, error) {
	key := deliverableKey{clientID, name}
	row, ok := s.rows[key]
	if !ok {
		row = &models.DeliverableStatus{ID: uuid.New(), ClientID: clientID, DeliverableName: name}
		s.rows[key] = row
	}
	row.Status = status
	row.UpdatedAt = time.Now()
	copied := *row
	return &copied, nil
}

func (s *fakeDeliverableStore) DeleteByClient(clientID uuid.UUID) error {
	for k := range s.rows {
		if k.clientID == clientID {
			delete(s.rows, k)
		}
	}
	return nil
}

type fakeStateStore struct {
	states map[uuid.UUID]*models.WorkflowState
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{states: make(map[uuid.UUID]*models.WorkflowState)}
}

func (s *fakeStateStore) GetByClient(clientID uuid.UUID) (*models.WorkflowState, error) {
	state, ok := s.states[clientID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *state
	return &copied, nil
}

func (s *fakeStateStore) Upsert(state *models.WorkflowState) error {
	if state.ID == uuid.Nil {
		state.ID = uuid.New()
	}
	copied := *state
	s.states[state.ClientID] = &copied
	return nil
}

func (s *fakeStateStore) DeleteByClient(clientID uuid.UUID) error {
	delete(s.states, clientID)
	return nil
}

type fakeCommentStore struct {
	comments []*models.PhotoComment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{}
}

func (s *fakeCommentStore) Create(comment *models.PhotoComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = time.Now()
	copied := *comment
	s.comments = append(s.comments, &copied)
	return nil
}

func (s *fakeCommentStore) GetByClientAndPath(clientID uuid.UUID, photoPath string) ([]models.PhotoComment, error) {
	var out []models.PhotoComment
	for _, c := range s.comments {
		if c.ClientID == clientID && c.PhotoPath == photoPath {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *fakeCommentStore) ResolveOpen(clientID uuid.UUID, photoPath string, actorID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for _, c := range s.comments {
		if c.ClientID == clientID && c.PhotoPath == photoPath && c.ResolvedAt == nil {
			resolvedAt := now
			c.ResolvedAt = &resolvedAt
			c.ResolvedBy = &actorID
			n++
		}
	}
	return n, nil
}

func (s *fakeCommentStore) DeleteByClient(clientID uuid.UUID) error {
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.ClientID != clientID {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return nil
}

type objectKeyPair struct {
	bucket string
	key    string
}

// fakeStorage is an in-memory ObjectStorage with per-operation failure
// injection keyed by "op:key suffix".
type fakeStorage struct {
	objects  map[objectKeyPair][]byte
	failures map[string]error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects:  make(map[objectKeyPair][]byte),
		failures: make(map[string]error),
	}
}

func (s *fakeStorage) failOn(op, keySuffix string) {
	s.failures[op+":"+keySuffix] = fmt.Errorf("injected %s failure", op)
}

func (s *fakeStorage) failure(op, key string) error {
	for probe, err := range s.failures {
		parts := strings.SplitN(probe, ":", 2)
		if parts[0] == op && strings.HasSuffix(key, parts[1]) {
			return err
		}
	}
	return nil
}

func (s *fakeStorage) put(bucket, key string, content []byte) {
	s.objects[objectKeyPair{bucket, key}] = content
}

func (s *fakeStorage) has(bucket, key string) bool {
	_, ok := s.objects[objectKeyPair{bucket, key}]
	return ok
}

func (s *fakeStorage) Upload(bucket, key string, src io.Reader) error {
	if err := s.failure("upload", key); err != nil {
		return err
	}
	content, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	s.objects[objectKeyPair{bucket, key}] = content
	return nil
}

func (s *fakeStorage) Download(bucket, key string) ([]byte, error) {
	if err := s.failure("download", key); err != nil {
		return nil, err
	}
	content, ok := s.objects[objectKeyPair{bucket, key}]
	if !ok {
		return nil, fmt.Errorf("object %s/%s not found", bucket, key)
	}
	return bytes.Clone(content), nil
}

func (s *fakeStorage) Delete(bucket, key string) error {
	if err := s.failure("delete", key); err != nil {
		return err
	}
	delete(s.objects, objectKeyPair{bucket, key})
	return nil
}

func (s *fakeStorage) List(bucket, prefix string) ([]storage.Object, error) {
	if err := s.failure("list", prefix); err != nil {
		return nil, err
	}
	var out []storage.Object
	for pair, content := range s.objects {
		if pair.bucket == bucket && strings.HasPrefix(pair.key, prefix) {
			out = append(out, storage.Object{Key: pair.key, Size: int64(len(content))})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *fakeStorage) Count(bucket, prefix string) (int, error) {
	objects, err := s.List(bucket, prefix)
	if err != nil {
		return 0, err
	}
	return len(objects), nil
}

func (s *fakeStorage) PresignGet(bucket, key string, expires time.Duration) (string, error) {
	if err := s.failure("presign", key); err != nil {
		return "", err
	}
	if !s.has(bucket, key) {
		return "", fmt.Errorf("object %s/%s not found", bucket, key)
	}
	return fmt.Sprintf("https://example.test/%s/%s", bucket, key), nil
}

func testBuckets() map[models.FolderType]string {
	return map[models.FolderType]string{
		models.FolderReferences:     "client-references",
		models.FolderAllPhotos:      "client-all-photos",
		models.FolderSelectedPhotos: "client-selected-photos",
		models.FolderFinalPhotos:    "client-final-photos",
	}
}
