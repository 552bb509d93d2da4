package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCustomer_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	in := sampleCustomer("jdoe")
	id, err := s.AddCustomer(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := s.GetCustomerByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.CustomerProfile, got.Profile())
	assert.False(t, got.IsDisabled)

	byLogin, err := s.GetCustomerByLogin(ctx, "jdoe")
	require.NoError(t, err)
	require.NotNil(t, byLogin)
	assert.Equal(t, id, byLogin.ID)
	assert.Equal(t, "hash-jdoe", byLogin.PasswordHash)

	byEmail, err := s.GetCustomerByEmail(ctx, "jdoe@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, id, byEmail.ID)
}

func TestCustomerLookups_AbsentIsNotAnError(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	c, err := s.GetCustomerByID(ctx, 4242)
	assert.NoError(t, err)
	assert.Nil(t, c)

	c, err = s.GetCustomerByLogin(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, c)

	c, err = s.GetCustomerByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, c)

	a, err := s.GetAdministratorByID(ctx, 4242)
	assert.NoError(t, err)
	assert.Nil(t, a)

	a, err = s.GetAdministratorByLogin(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, a)
}

func TestAddCustomer_AcceptsMissingContactNumbers(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	in := sampleCustomer("jdoe")
	in.HomeNumber, in.WorkNumber, in.MobileNumber = "", "", ""
	require.False(t, in.HasContactNumber())

	id, err := s.AddCustomer(ctx, in)
	require.NoError(t, err)

	got, err := s.GetCustomerByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.HomeNumber)
	assert.Empty(t, got.WorkNumber)
	assert.Empty(t, got.MobileNumber)
}

func TestUpdateCustomer_NeverTouchesPassword(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.AddCustomer(ctx, sampleCustomer("jdoe"))
	require.NoError(t, err)

	profile := sampleCustomer("jdoe").CustomerProfile
	for _, city := range []string{"Wellington", "Hamilton", "Dunedin"} {
		profile.City = city
		require.NoError(t, s.UpdateCustomer(ctx, id, profile))
	}

	got, err := s.GetCustomerByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dunedin", got.City)
	assert.Equal(t, "hash-jdoe", got.PasswordHash)

	require.NoError(t, s.UpdateCustomerPassword(ctx, id, "rotated"))
	got, err = s.GetCustomerByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.PasswordHash)
	assert.Equal(t, "Dunedin", got.City)
}

func TestDisableCustomer_SoftDeletes(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	keep, err := s.AddCustomer(ctx, sampleCustomer("keep"))
	require.NoError(t, err)
	gone, err := s.AddCustomer(ctx, sampleCustomer("gone"))
	require.NoError(t, err)

	require.NoError(t, s.DisableCustomer(ctx, gone))

	got, err := s.GetCustomerByID(ctx, gone)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDisabled)

	active, err := s.ListActiveCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep, active[0].ID)

	all, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLogin_UniqueAcrossVariants(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.AddCustomer(ctx, sampleCustomer(seededAdminLogin))
	assert.Error(t, err)

	_, err = s.AddCustomer(ctx, sampleCustomer("jdoe"))
	require.NoError(t, err)
	_, err = s.AddAdministrator(ctx, "jdoe", "other@x.com", "h")
	assert.Error(t, err)
}

func TestVariants_AreKeptApart(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	customerID, err := s.AddCustomer(ctx, sampleCustomer("jdoe"))
	require.NoError(t, err)
	adminID, err := s.AddAdministrator(ctx, "boss", "boss@x.com", "boss-hash")
	require.NoError(t, err)

	// The customer path only ever produces customers
	a, err := s.GetAdministratorByID(ctx, customerID)
	require.NoError(t, err)
	assert.Nil(t, a)
	c, err := s.GetCustomerByID(ctx, adminID)
	require.NoError(t, err)
	assert.Nil(t, c)

	// Customer updates cannot rewrite an administrator row
	require.NoError(t, s.UpdateCustomer(ctx, adminID, sampleCustomer("hijack").CustomerProfile))
	require.NoError(t, s.UpdateCustomerPassword(ctx, adminID, "stolen"))
	require.NoError(t, s.DisableCustomer(ctx, adminID))
	a, err = s.GetAdministratorByID(ctx, adminID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "boss", a.Login)
	assert.Equal(t, "boss-hash", a.PasswordHash)

	customers, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
	admins, err := s.ListAdministrators(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 2) // seeded admin + boss
}

func TestAdministrator_UpdateAndPassword(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.AddAdministrator(ctx, "boss", "boss@x.com", "h1")
	require.NoError(t, err)

	require.NoError(t, s.UpdateAdministrator(ctx, id, "chief", "chief@x.com"))
	a, err := s.GetAdministratorByLogin(ctx, "chief")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "chief@x.com", a.Email)
	assert.Equal(t, "h1", a.PasswordHash)

	require.NoError(t, s.UpdateAdministratorPassword(ctx, id, "h2"))
	a, err = s.GetAdministratorByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "h2", a.PasswordHash)
}

func TestCustomerFields_AreBoundNotInterpolated(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	in := sampleCustomer("o'brien")
	in.StreetAddress = "1 Robert'); DROP TABLE SiteUser;--"
	id, err := s.AddCustomer(ctx, in)
	require.NoError(t, err)

	got, err := s.GetCustomerByLogin(ctx, "o'brien")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.StreetAddress, got.StreetAddress)
}
