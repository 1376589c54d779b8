package viewsync

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"dishcovery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore mimics the remote collection store contract: idempotent add,
// membership-only remove, cascading collection delete.
type fakeStore struct {
	mu      sync.Mutex
	recipes map[string]models.RecipeRef   // shared recipe table
	links   map[string][]string           // collection id -> recipe ids
	fail    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recipes: make(map[string]models.RecipeRef),
		links:   make(map[string][]string),
	}
}

func (f *fakeStore) add(collectionID string, ref models.RecipeRef) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[ref.ID] = ref
	for _, id := range f.links[collectionID] {
		if id == ref.ID {
			return true // duplicate link is an idempotent success
		}
	}
	f.links[collectionID] = append(f.links[collectionID], ref.ID)
	return true
}

func (f *fakeStore) remove(collectionID, recipeID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.links[collectionID][:0]
	for _, id := range f.links[collectionID] {
		if id != recipeID {
			kept = append(kept, id)
		}
	}
	f.links[collectionID] = kept
}

func (f *fakeStore) deleteCollection(collectionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.links, collectionID) // memberships cascade, recipes stay
}

func (f *fakeStore) list(collectionID string) ([]models.RecipeRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("network down")
	}
	out := []models.RecipeRef{}
	for _, id := range f.links[collectionID] {
		out = append(out, f.recipes[id])
	}
	return out, nil
}

func collectionLoader(store *fakeStore, collectionID string) Loader[models.RecipeRef] {
	return func(ctx context.Context, userID string) ([]models.RecipeRef, error) {
		return store.list(collectionID)
	}
}

func TestIdentityChangeTriggersReload(t *testing.T) {
	store := newFakeStore()
	store.add("c1", models.RecipeRef{ID: "A"})

	c := NewController(collectionLoader(store, "c1"))
	assert.Equal(t, Uninitialized, c.State())

	require.NoError(t, c.SetIdentity(context.Background(), "u1"))
	assert.Equal(t, Ready, c.State())
	assert.Len(t, c.Entities(), 1)

	// same identity again is a no-op
	store.add("c1", models.RecipeRef{ID: "B"})
	require.NoError(t, c.SetIdentity(context.Background(), "u1"))
	assert.Len(t, c.Entities(), 1)

	// a changed identity discards and reloads
	require.NoError(t, c.SetIdentity(context.Background(), "u2"))
	assert.Len(t, c.Entities(), 2)
}

func TestMutateThenReloadReplacesWholesale(t *testing.T) {
	store := newFakeStore()
	store.add("c1", models.RecipeRef{ID: "A"})
	store.add("c1", models.RecipeRef{ID: "B"})

	c := NewController(collectionLoader(store, "c1"))
	require.NoError(t, c.SetIdentity(context.Background(), "u1"))

	err := c.MutateThenReload(context.Background(), func(ctx context.Context) error {
		store.remove("c1", "A")
		return nil
	})
	require.NoError(t, err)

	got := c.Entities()
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ID)
}

func TestRepeatedAddsStayUnique(t *testing.T) {
	store := newFakeStore()
	c := NewController(collectionLoader(store, "c1"))
	require.NoError(t, c.SetIdentity(context.Background(), "u1"))

	for i := 0; i < 4; i++ {
		err := c.MutateThenReload(context.Background(), func(ctx context.Context) error {
			store.add("c1", models.RecipeRef{ID: "A"})
			return nil
		})
		require.NoError(t, err)
	}
	assert.Len(t, c.Entities(), 1)
}

func TestReloadFailureKeepsLastKnownGood(t *testing.T) {
	store := newFakeStore()
	store.add("c1", models.RecipeRef{ID: "A"})

	c := NewController(collectionLoader(store, "c1"))
	require.NoError(t, c.SetIdentity(context.Background(), "u1"))
	require.Len(t, c.Entities(), 1)

	store.fail = true
	err := c.Reload(context.Background())
	require.Error(t, err)

	// transient error: still Ready, stale snapshot intact
	assert.Equal(t, Ready, c.State())
	assert.Len(t, c.Entities(), 1)
}

func TestSubmissionLatchRejectsConcurrentMutation(t *testing.T) {
	store := newFakeStore()
	c := NewController(collectionLoader(store, "c1"))
	require.NoError(t, c.SetIdentity(context.Background(), "u1"))

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- c.MutateThenReload(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := c.MutateThenReload(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
}

func TestSupersededLoadIsDiscarded(t *testing.T) {
	blocked := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	loader := func(ctx context.Context, userID string) ([]models.RecipeRef, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-blocked // first load finishes after its successor
			return []models.RecipeRef{{ID: "stale"}}, nil
		}
		return []models.RecipeRef{{ID: "fresh"}}, nil
	}

	c := NewController(loader)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.SetIdentity(context.Background(), "u1")
	}()

	// wait for the first load to start, then issue a second one
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n >= 1 {
			break
		}
		runtime.Gosched()
	}
	require.NoError(t, c.Reload(context.Background()))
	close(blocked)
	wg.Wait()

	got := c.Entities()
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestSharedRecipeSurvivesSiblingDeletion(t *testing.T) {
	store := newFakeStore()
	ref := models.RecipeRef{ID: "42", Title: "Tomato Soup"}
	store.add("c1", ref)
	store.add("c2", ref)

	store.deleteCollection("c1")

	left, err := store.list("c2")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "42", left[0].ID)
	// the shared recipe row is still there
	assert.Contains(t, store.recipes, "42")
}
