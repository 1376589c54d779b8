package collections

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollectionRequiresIdentity(t *testing.T) {
	_, err := CreateCollection(context.Background(), "", "", "Weeknight", "", "")
	require.ErrorIs(t, err, ErrAuthRequired)

	// a claim for someone else's account is rejected the same way
	_, err = CreateCollection(context.Background(), "u_alice", "u_bob", "Weeknight", "", "")
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestCreateCollectionRejectsBlankTitle(t *testing.T) {
	_, err := CreateCollection(context.Background(), "u_alice", "u_alice", "   ", "", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCollectionRejectsBlankTitle(t *testing.T) {
	blank := "  "
	_, err := UpdateCollection(context.Background(), "col_x_1", CollectionUpdate{Title: &blank})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRespondStoreError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrAuthRequired, http.StatusUnauthorized},
		{fmt.Errorf("%w: title is required", ErrValidation), http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		respondStoreError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
	}
}
