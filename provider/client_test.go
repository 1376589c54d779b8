package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL: srv.URL,
		apiKey:  "test-key",
		http:    srv.Client(),
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestSearchSendsKeyAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "true", r.URL.Query().Get("addRecipeInformation"))
		assert.Equal(t, "soup", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"id":42,"title":"Tomato Soup","diets":["vegan"],"readyInMinutes":25}],"totalResults":1}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv).Search(context.Background(), "soup", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.EqualValues(t, 42, resp.Results[0].ID)
	assert.Equal(t, []string{"vegan"}, resp.Results[0].Diets)
}

func TestDetailNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired) // quota exhausted
	}))
	defer srv.Close()

	_, err := testClient(srv).Detail(context.Background(), "42")
	assert.Error(t, err)
}

func TestCancelledContextAbandonsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testClient(srv).Search(ctx, "soup", SearchOptions{})
	assert.Error(t, err)
}

func TestFindByIngredientsJoinsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		assert.Equal(t, "tomato,basil", r.URL.Query().Get("ingredients"))
		w.Write([]byte(`[{"id":1,"title":"Bruschetta"}]`))
	}))
	defer srv.Close()

	results, err := testClient(srv).FindByIngredients(context.Background(), []string{"tomato", "basil"}, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bruschetta", results[0].Title)
}
