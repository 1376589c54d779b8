package favorites

import (
	"errors"
	"testing"

	"dishcovery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(backend Backend) (*Store, *int64) {
	s := NewStore(backend)
	clock := int64(1000)
	s.now = func() int64 {
		clock++
		return clock
	}
	return s, &clock
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	s, _ := newTestStore(NewMemoryBackend())
	ref := models.RecipeRef{ID: "42", Title: "Tomato Soup"}

	favs := s.Toggle("u1", ref)
	require.Contains(t, favs, "42")

	favs = s.Toggle("u1", ref)
	assert.NotContains(t, favs, "42")
	assert.Empty(t, s.Load("u1"))
}

func TestReAddResetsAddedAt(t *testing.T) {
	s, _ := newTestStore(NewMemoryBackend())
	ref := models.RecipeRef{ID: "42", Title: "Tomato Soup", AddedAt: 5}

	first := s.Toggle("u1", ref)["42"].AddedAt
	s.Toggle("u1", ref) // remove
	second := s.Toggle("u1", ref)["42"].AddedAt

	assert.Greater(t, second, first)
}

func TestLoadSurvivesReload(t *testing.T) {
	backend := NewMemoryBackend()
	s, _ := newTestStore(backend)

	s.Toggle("u1", models.RecipeRef{ID: "42", Title: "Tomato Soup"})
	require.Contains(t, s.Load("u1"), "42")

	s.Toggle("u1", models.RecipeRef{ID: "42", Title: "Tomato Soup"})

	// fresh store over the same backend simulates a reload
	fresh, _ := newTestStore(backend)
	assert.Empty(t, fresh.Load("u1"))
}

func TestLoadCorruptBlobDegradesToEmpty(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Save("dishcovery_favorites_u1", []byte("{not json")))

	s, _ := newTestStore(backend)
	assert.Empty(t, s.Load("u1"))

	// and the key is usable afterwards
	favs := s.Toggle("u1", models.RecipeRef{ID: "1"})
	assert.Contains(t, favs, "1")
}

type failingBackend struct {
	*MemoryBackend
	failSaves bool
}

func (f *failingBackend) Save(key string, blob []byte) error {
	if f.failSaves {
		return errors.New("quota exceeded")
	}
	return f.MemoryBackend.Save(key, blob)
}

func TestPersistFailureKeepsSessionState(t *testing.T) {
	backend := &failingBackend{MemoryBackend: NewMemoryBackend(), failSaves: true}
	s, _ := newTestStore(backend)

	favs := s.Toggle("u1", models.RecipeRef{ID: "42", Title: "Tomato Soup"})
	require.Contains(t, favs, "42")

	// the change holds for the session
	assert.Contains(t, s.Load("u1"), "42")

	// but does not survive a reload
	fresh, _ := newTestStore(backend)
	assert.Empty(t, fresh.Load("u1"))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s, _ := newTestStore(NewMemoryBackend())
	assert.Empty(t, s.Remove("u1", "nope"))
}

func TestGuestBucketIsSeparate(t *testing.T) {
	s, _ := newTestStore(NewMemoryBackend())

	s.Toggle("", models.RecipeRef{ID: "9"})
	assert.Contains(t, s.Load(""), "9")
	assert.Contains(t, s.Load(GuestKey), "9")
	assert.Empty(t, s.Load("u1"))
}

func TestToggleNormalizesFallbacks(t *testing.T) {
	s, _ := newTestStore(NewMemoryBackend())
	favs := s.Toggle("u1", models.RecipeRef{ID: "7"})

	entry := favs["7"]
	assert.Equal(t, "Untitled Recipe", entry.Title)
	assert.Equal(t, "/food.png", entry.Image)
	assert.NotNil(t, entry.Tags)
}
