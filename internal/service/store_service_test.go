package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddGetDelete(t *testing.T) {
	f := newFixture(t)

	in := validStore("101")
	st, err := f.store.Add(in)
	require.NoError(t, err)
	assert.Equal(t, "101", st.Code)

	got, err := f.store.Get("101")
	require.NoError(t, err)
	assert.Equal(t, in.Designation, got.Designation)
	assert.Equal(t, in.Manager, got.Manager)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Mobile, got.Mobile)
	assert.Equal(t, in.StoreType, got.StoreType)

	require.NoError(t, f.store.Delete("101"))
	_, err = f.store.Get("101")
	assert.ErrorIs(t, err, ErrNotFound)

	// delete again -> not found
	assert.ErrorIs(t, f.store.Delete("101"), ErrNotFound)
}

func TestStoreAddDuplicateCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Add(validStore("101"))
	require.NoError(t, err)
	_, err = f.store.Add(validStore("101"))
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestStoreValidation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name   string
		mutate func(*StoreInput)
		msg    string
	}{
		{"missing field", func(in *StoreInput) { in.Manager = "" }, "All fields are required"},
		{"code not numeric", func(in *StoreInput) { in.Code = "10a" }, "Store code must contain digits only"},
		{"bad designation", func(in *StoreInput) { in.Designation = "Lord" }, "Invalid designation"},
		{"manager digits", func(in *StoreInput) { in.Manager = "John 3rd" }, "Manager name must contain letters and spaces only"},
		{"bad email", func(in *StoreInput) { in.Email = "not-an-email" }, "Invalid email address"},
		{"short mobile", func(in *StoreInput) { in.Mobile = "12345" }, "Mobile number must be exactly 10 digits"},
		{"bad type", func(in *StoreInput) { in.StoreType = "kiosk" }, "Store type must be store or branch"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validStore("200")
			tc.mutate(&in)
			_, err := f.store.Add(in)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.msg, ve.Message)
		})
	}
}

func TestStoreUpdateIdempotent(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Add(validStore("101"))
	require.NoError(t, err)

	upd := validStore("101")
	upd.Manager = "Jane Roe"
	upd.StoreType = "branch"

	require.NoError(t, f.store.Update("101", upd))
	require.NoError(t, f.store.Update("101", upd)) // same update twice

	got, err := f.store.Get("101")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", got.Manager)
	assert.Equal(t, "branch", got.StoreType)
}

func TestStoreUpdateNotFound(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.store.Update("999", validStore("999")), ErrNotFound)
}

func TestStoreListOrderedByCode(t *testing.T) {
	f := newFixture(t)
	for _, code := range []string{"300", "100", "200"} {
		_, err := f.store.Add(validStore(code))
		require.NoError(t, err)
	}
	stores, err := f.store.List()
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, "100", stores[0].Code)
	assert.Equal(t, "200", stores[1].Code)
	assert.Equal(t, "300", stores[2].Code)
}

func TestBulkImportRoundTrip(t *testing.T) {
	f := newFixture(t)

	rows := []StoreInput{validStore("101"), validStore("102"), validStore("103")}

	results, importErrs := f.store.BulkImport(rows)
	require.Empty(t, importErrs)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, "created", r.Action)
	}

	// re-import the same rows -> all updated
	results, importErrs = f.store.BulkImport(rows)
	require.Empty(t, importErrs)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, "updated", r.Action)
	}
}

func TestBulkImportPartialFailure(t *testing.T) {
	f := newFixture(t)

	rows := []StoreInput{
		validStore("101"),
		{Code: "102"}, // missing fields
		validStore("103"),
	}
	results, importErrs := f.store.BulkImport(rows)

	require.Len(t, results, 2)
	assert.Equal(t, "101", results[0].Code)
	assert.Equal(t, "103", results[1].Code)

	require.Len(t, importErrs, 1)
	assert.Equal(t, "102", importErrs[0].Code)
	assert.Equal(t, "All fields are required", importErrs[0].Error)
}
