package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/photoclientpro/photoclient-backend/internal/models"
	"github.com/photoclientpro/photoclient-backend/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientFixture(t *testing.T, clients ...*models.Client) (*ClientService, *fakeClientStore, *fakePackageStore, *fakeStorage) {
	t.Helper()
	clientStore := newFakeClientStore(clients...)
	packageStore := newFakePackageStore()
	objectStorage := newFakeStorage()
	svc := NewClientService(
		clientStore,
		packageStore,
		nil,
		objectStorage,
		testBuckets(),
		notify.NewHub(),
		testLogger(),
	)
	return svc, clientStore, packageStore, objectStorage
}

func TestCreateClientDefaults(t *testing.T) {
	svc, _, _, _ := newClientFixture(t)
	photographer := uuid.New()

	client, err := svc.CreateClient(photographer, models.ClientRequest{Name: "Nora Hale"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentUnpaid, client.PaymentStatus)
	assert.Equal(t, photographer, client.PhotographerID)
	assert.Nil(t, client.PackageID)
}

func TestCreateClientUnknownPackage(t *testing.T) {
	svc, _, _, _ := newClientFixture(t)
	bogus := uuid.New()

	_, err := svc.CreateClient(uuid.New(), models.ClientRequest{Name: "Nora Hale", PackageID: &bogus})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetClientOwnership(t *testing.T) {
	photographer := uuid.New()
	client := &models.Client{ID: uuid.New(), Name: "Nora Hale", PhotographerID: photographer}
	svc, _, _, _ := newClientFixture(t, client)

	_, err := svc.GetClient(client.ID, uuid.New())
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	got, err := svc.GetClient(client.ID, photographer)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)

	// the shared route skips the ownership check
	got, err = svc.GetSharedClient(client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
}

func TestListClientsRejectsBadFilter(t *testing.T) {
	svc, _, _, _ := newClientFixture(t)

	_, err := svc.ListClients(uuid.New(), "", "refunded")
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateClientPatchesOnlyProvidedFields(t *testing.T) {
	photographer := uuid.New()
	client := &models.Client{
		ID:             uuid.New(),
		Name:           "Nora Hale",
		Location:       "Lisbon",
		PaymentStatus:  models.PaymentUnpaid,
		PhotographerID: photographer,
	}
	svc, _, _, _ := newClientFixture(t, client)

	paid := models.PaymentPaid
	updated, err := svc.UpdateClient(client.ID, photographer, models.UpdateClientRequest{
		PaymentStatus: &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, "Nora Hale", updated.Name)
	assert.Equal(t, "Lisbon", updated.Location)
}

func TestUpdateClientRejectsBadPaymentStatus(t *testing.T) {
	photographer := uuid.New()
	client := &models.Client{ID: uuid.New(), Name: "Nora Hale", PhotographerID: photographer}
	svc, _, _, _ := newClientFixture(t, client)

	bad := models.PaymentStatus("refunded")
	_, err := svc.UpdateClient(client.ID, photographer, models.UpdateClientRequest{PaymentStatus: &bad})
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDeleteClientCleansUpBlobs(t *testing.T) {
	photographer := uuid.New()
	client := &models.Client{ID: uuid.New(), Name: "Nora Hale", PhotographerID: photographer}
	svc, clientStore, _, objectStorage := newClientFixture(t, client)

	objectStorage.put("client-all-photos", client.ID.String()+"/a.jpg", []byte("jpeg"))
	objectStorage.put("client-final-photos", client.ID.String()+"/b.jpg", []byte("jpeg"))
	other := uuid.New()
	objectStorage.put("client-all-photos", other.String()+"/c.jpg", []byte("jpeg"))

	require.NoError(t, svc.DeleteClient(client.ID, photographer))

	_, err := clientStore.GetByID(client.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, objectStorage.has("client-all-photos", client.ID.String()+"/a.jpg"))
	assert.False(t, objectStorage.has("client-final-photos", client.ID.String()+"/b.jpg"))
	assert.True(t, objectStorage.has("client-all-photos", other.String()+"/c.jpg"))
}

func TestDeleteClientRunsCleaners(t *testing.T) {
	photographer := uuid.New()
	client := &models.Client{ID: uuid.New(), Name: "Nora Hale", PhotographerID: photographer}
	clientStore := newFakeClientStore(client)
	deliverables := newFakeDeliverableStore()
	deliverables.set(client.ID, "Online Gallery", models.DeliverableApproved)
	comments := newFakeCommentStore()
	comments.Create(&models.PhotoComment{ClientID: client.ID, PhotoPath: "p.jpg", Comment: "x"})

	svc := NewClientService(
		clientStore,
		newFakePackageStore(),
		[]ClientDataCleaner{deliverables, comments},
		newFakeStorage(),
		testBuckets(),
		notify.NewHub(),
		testLogger(),
	)

	require.NoError(t, svc.DeleteClient(client.ID, photographer))

	rows, err := deliverables.GetByClient(client.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
	left, err := comments.GetByClientAndPath(client.ID, "p.jpg")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return &t
}

func TestCategorizeClients(t *testing.T) {
	now := time.Date(2026, time.June, 15, 14, 30, 0, 0, time.UTC)

	noDate := models.Client{Name: "no date"}
	future := models.Client{Name: "future", EventDate: day(2026, time.July, 1)}
	today := models.Client{Name: "today", EventDate: day(2026, time.June, 15)}
	pastDueOpen := models.Client{Name: "editing", EventDate: day(2026, time.May, 1), DueDate: day(2026, time.July, 1)}
	dueToday := models.Client{Name: "due today", EventDate: day(2026, time.May, 1), DueDate: day(2026, time.June, 15)}
	pastDueClosed := models.Client{Name: "done", EventDate: day(2026, time.May, 1), DueDate: day(2026, time.June, 1)}
	pastNoDue := models.Client{Name: "no due", EventDate: day(2026, time.May, 1)}

	categories := CategorizeClients(
		[]models.Client{noDate, future, today, pastDueOpen, dueToday, pastDueClosed, pastNoDue},
		now,
	)

	names := func(clients []models.Client) []string {
		out := make([]string, 0, len(clients))
		for _, c := range clients {
			out = append(out, c.Name)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"no date", "future"}, names(categories.Upcoming))
	assert.ElementsMatch(t, []string{"today", "editing", "due today"}, names(categories.InProgress))
	assert.ElementsMatch(t, []string{"done", "no due"}, names(categories.Completed))
}

func TestCategorizeClientsIgnoresTimeOfDay(t *testing.T) {
	// late-evening event today must still categorize as in progress
	now := time.Date(2026, time.June, 15, 23, 50, 0, 0, time.UTC)
	evening := time.Date(2026, time.June, 15, 23, 59, 0, 0, time.UTC)
	client := models.Client{Name: "tonight", EventDate: &evening}

	categories := CategorizeClients([]models.Client{client}, now)
	require.Len(t, categories.InProgress, 1)
}
