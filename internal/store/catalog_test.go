package store

import (
	"context"
	"testing"

	"capshop/internal/db"
	"capshop/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplier_AddGetUpdate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.AddSupplier(ctx, "Acme", "0212345678", "a@x.com")
	require.NoError(t, err)

	got, err := s.GetSupplierByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.Supplier{ID: id, Name: "Acme", ContactNumber: "0212345678", Email: "a@x.com"}, *got)

	require.NoError(t, s.UpdateSupplier(ctx, id, "Acme Ltd", "0212345678", "a@x.com"))
	got, err = s.GetSupplierByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", got.Name)
	assert.Equal(t, "0212345678", got.ContactNumber)
	assert.Equal(t, "a@x.com", got.Email)

	// Every column of the update is applied
	require.NoError(t, s.UpdateSupplier(ctx, id, "Acme Ltd", "095551234", "sales@acme.com"))
	got, err = s.GetSupplierByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "095551234", got.ContactNumber)
	assert.Equal(t, "sales@acme.com", got.Email)

	all, err := s.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	missing, err := s.GetSupplierByID(ctx, id+100)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoriesAndColours_SeededAndEditable(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	assert.ElementsMatch(t, db.DefaultCategories, names)

	colours, err := s.ListColours(ctx)
	require.NoError(t, err)
	assert.Len(t, colours, len(db.DefaultColours))

	catID, err := s.AddCategory(ctx, "Sun Hats")
	require.NoError(t, err)
	require.NoError(t, s.UpdateCategory(ctx, catID, "Bucket Hats"))
	cat, err := s.GetCategoryByID(ctx, catID)
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "Bucket Hats", cat.Name)

	colourID, err := s.AddColour(ctx, "Teal")
	require.NoError(t, err)
	require.NoError(t, s.UpdateColour(ctx, colourID, "Navy"))
	colour, err := s.GetColourByID(ctx, colourID)
	require.NoError(t, err)
	require.NotNil(t, colour)
	assert.Equal(t, "Navy", colour.Name)

	none, err := s.GetColourByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, none)
	noCat, err := s.GetCategoryByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, noCat)
}

// newCapFixture adds a supplier and returns ids usable for a cap.
func newCapFixture(t *testing.T, s *Store) domain.CapFields {
	t.Helper()
	ctx := context.Background()
	supplierID, err := s.AddSupplier(ctx, "Acme", "0212345678", "a@x.com")
	require.NoError(t, err)
	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	colours, err := s.ListColours(ctx)
	require.NoError(t, err)
	return domain.CapFields{
		Name:        "Classic",
		Price:       24.5,
		Description: "Six panel cotton cap",
		ImageURL:    "classic.png",
		SupplierID:  supplierID,
		CategoryID:  categories[0].ID,
		ColourIDs:   []int64{colours[0].ID, colours[1].ID},
	}
}

func TestCap_AddGetUpdate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	fields := newCapFixture(t, s)

	id, err := s.AddCap(ctx, fields)
	require.NoError(t, err)

	got, err := s.GetCapByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Classic", got.Name)
	assert.InDelta(t, 24.5, got.Price, 0.001)
	assert.ElementsMatch(t, fields.ColourIDs, got.ColourIDs)

	fields.Name = "Classic II"
	fields.ColourIDs = fields.ColourIDs[1:]
	require.NoError(t, s.UpdateCap(ctx, id, fields))
	got, err = s.GetCapByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Classic II", got.Name)
	assert.Equal(t, fields.ColourIDs, got.ColourIDs)

	caps, err := s.ListCapsByCategory(ctx, fields.CategoryID)
	require.NoError(t, err)
	require.Len(t, caps, 1)
	assert.Equal(t, fields.ColourIDs, caps[0].ColourIDs)

	other, err := s.ListCapsByCategory(ctx, fields.CategoryID+1)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCap_ForeignKeysSurfaceErrors(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	fields := newCapFixture(t, s)

	bad := fields
	bad.SupplierID = 9999
	_, err := s.AddCap(ctx, bad)
	assert.Error(t, err)

	bad = fields
	bad.ColourIDs = []int64{9999}
	_, err = s.AddCap(ctx, bad)
	assert.Error(t, err)

	// Both failures rolled back completely
	caps, err := s.ListCaps(ctx)
	require.NoError(t, err)
	assert.Empty(t, caps)
}
