package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	customerpkg "github.com/elitephnrepair2-cpu/crm-app/customer"
	"github.com/elitephnrepair2-cpu/crm-app/entity"
	kioskpkg "github.com/elitephnrepair2-cpu/crm-app/kiosk"
	"github.com/elitephnrepair2-cpu/crm-app/marketing"
	"github.com/elitephnrepair2-cpu/crm-app/prefs"
	ticketpkg "github.com/elitephnrepair2-cpu/crm-app/ticket"
)

type fakeCustomerRepo struct {
	byID map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: map[uuid.UUID]*entity.Customer{}}
}

func (f *fakeCustomerRepo) ListByLocation(_ context.Context, location string) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range f.byID {
		if c.Location == location {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, customerpkg.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindByPhone(_ context.Context, phone, location string) (*entity.Customer, error) {
	for _, c := range f.byID {
		if c.Phone == phone && c.Location == location {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Store(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCustomerRepo) UpdateContact(_ context.Context, id uuid.UUID, name string, email, altPhone *string) error {
	c, ok := f.byID[id]
	if !ok {
		return customerpkg.ErrNotFound
	}
	c.Name = name
	c.Email = email
	c.AltPhone = altPhone
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeTicketRepo struct {
	byID      map[uuid.UUID]*entity.RepairTicket
	failStore bool
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: map[uuid.UUID]*entity.RepairTicket{}}
}

func (f *fakeTicketRepo) Store(_ context.Context, t *entity.RepairTicket) (*entity.RepairTicket, error) {
	if f.failStore {
		return nil, errors.New("insert failed")
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	f.byID[t.ID] = t
	return t, nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.RepairTicket, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, ticketpkg.ErrNotFound
	}
	return t, nil
}

func (f *fakeTicketRepo) ListByLocation(_ context.Context, location string) ([]entity.RepairTicket, error) {
	var out []entity.RepairTicket
	for _, t := range f.byID {
		if t.Location == location {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}

func (f *fakeTicketRepo) SetPaid(_ context.Context, id uuid.UUID, paid bool) error { return nil }

func (f *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeTracker struct {
	events []string
}

func (f *fakeTracker) TrackEvent(siteID, eventName string, _ marketing.Profile, _ map[string]interface{}) bool {
	f.events = append(f.events, eventName)
	return true
}

type fakeSettings struct {
	settings prefs.ShopSettings
}

func (f *fakeSettings) ShopSettings(context.Context) (prefs.ShopSettings, error) {
	return f.settings, nil
}

func checkInReq(phone string) kioskpkg.CheckInRequest {
	return kioskpkg.CheckInRequest{
		Name:               "Jane Doe",
		Phone:              phone,
		Device:             "iPhone 13",
		ProblemDescription: "cracked screen",
		HeardFrom:          "Google",
		PromoCode:          "SPRING10",
		Location:           "Beaumont",
	}
}

func TestCheckInCreatesCustomerAndTicket(t *testing.T) {
	ctx := context.Background()
	customers := newFakeCustomerRepo()
	tickets := newFakeTicketRepo()
	tracker := &fakeTracker{}
	svc := NewKioskService(customers, tickets, tracker,
		&fakeSettings{settings: prefs.ShopSettings{KlaviyoSiteID: "SITE123"}})

	ticket, err := svc.CheckIn(ctx, checkInReq("4095550100"))
	require.NoError(t, err)

	require.Len(t, customers.byID, 1)
	require.Len(t, tickets.byID, 1)
	created := customers.byID[ticket.CustomerID]
	require.NotNil(t, created)
	require.Equal(t, "Jane Doe", created.Name)
	require.Equal(t, "4095550100", created.Phone)
	require.Equal(t, []string{"Checked In"}, tracker.events)
}

func TestCheckInReusesCustomerByPhone(t *testing.T) {
	ctx := context.Background()
	customers := newFakeCustomerRepo()
	tickets := newFakeTicketRepo()
	svc := NewKioskService(customers, tickets, &fakeTracker{}, &fakeSettings{})

	oldEmail := "old@example.com"
	existing, err := customers.Store(ctx, &entity.Customer{
		Name: "J. Doe", Phone: "4095550100", Email: &oldEmail, Location: "Beaumont",
	})
	require.NoError(t, err)

	req := checkInReq("4095550100")
	newEmail := "jane@example.com"
	callback := "4095550199"
	req.Email = &newEmail
	req.CallbackNumber = &callback

	ticket, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	// no duplicate customer, exactly one ticket, linked to the existing id
	require.Len(t, customers.byID, 1)
	require.Len(t, tickets.byID, 1)
	require.Equal(t, existing.ID, ticket.CustomerID)

	// contact data silently overwritten
	updated := customers.byID[existing.ID]
	require.Equal(t, "Jane Doe", updated.Name)
	require.Equal(t, "jane@example.com", *updated.Email)
	require.Equal(t, "4095550199", *updated.AltPhone)
}

func TestCheckInDifferentLocationCreatesNewCustomer(t *testing.T) {
	ctx := context.Background()
	customers := newFakeCustomerRepo()
	svc := NewKioskService(customers, newFakeTicketRepo(), &fakeTracker{}, &fakeSettings{})

	_, err := customers.Store(ctx, &entity.Customer{
		Name: "Jane", Phone: "4095550100", Location: "Houston",
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, checkInReq("4095550100")) // Beaumont
	require.NoError(t, err)
	require.Len(t, customers.byID, 2, "phone match in another location must not be reused")
}

func TestCheckInTicketFailureIsOverallFailure(t *testing.T) {
	ctx := context.Background()
	customers := newFakeCustomerRepo()
	tickets := newFakeTicketRepo()
	tickets.failStore = true
	tracker := &fakeTracker{}
	svc := NewKioskService(customers, tickets, tracker,
		&fakeSettings{settings: prefs.ShopSettings{KlaviyoSiteID: "SITE123"}})

	_, err := svc.CheckIn(ctx, checkInReq("4095550100"))
	require.Error(t, err)

	// the customer write committed anyway; no rollback and no marketing event
	require.Len(t, customers.byID, 1)
	require.Empty(t, tracker.events)
}

func TestCheckInValidation(t *testing.T) {
	svc := NewKioskService(newFakeCustomerRepo(), newFakeTicketRepo(), &fakeTracker{}, &fakeSettings{})

	req := checkInReq("4095550100")
	req.PromoCode = ""
	_, err := svc.CheckIn(context.Background(), req)
	require.Error(t, err, "promo code is required on the kiosk path")

	req = checkInReq("4095550100")
	req.HeardFrom = ""
	_, err = svc.CheckIn(context.Background(), req)
	require.Error(t, err)
}

func TestCheckInSkipsTrackingWithoutSiteID(t *testing.T) {
	tracker := &fakeTracker{}
	svc := NewKioskService(newFakeCustomerRepo(), newFakeTicketRepo(), tracker, &fakeSettings{})

	_, err := svc.CheckIn(context.Background(), checkInReq("4095550100"))
	require.NoError(t, err)
	require.Empty(t, tracker.events)
}
