// Package favorites is the per-user favorites cache. Favorites are a
// convenience cache, not a system of record: every mutation persists the full
// blob synchronously, and a persist failure is logged but never surfaced —
// the in-memory state keeps the change for the rest of the session.
package favorites

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"dishcovery/models"
	"dishcovery/normalize"
)

const keyPrefix = "dishcovery_favorites_"

// GuestKey is the bucket used when no identity is known.
const GuestKey = "guest"

// Backend is the blob storage favorites persist to. Load returns (nil, nil)
// when no blob exists for the key.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
}

type Store struct {
	mu      sync.Mutex
	backend Backend
	session map[string]models.FavoritesMap
	now     func() int64
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		session: make(map[string]models.FavoritesMap),
		now:     func() int64 { return time.Now().UnixMilli() },
	}
}

func storageKey(userID string) string {
	if userID == "" {
		userID = GuestKey
	}
	return keyPrefix + userID
}

// Load returns the favorites map for userID. An absent, corrupt, or unreadable
// blob degrades to an empty map; the failure is logged, never returned.
func (s *Store) Load(userID string) models.FavoritesMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMap(s.load(userID))
}

// Toggle removes the recipe if present, otherwise inserts a freshly
// normalized ref stamped with addedAt = now. Re-adding a previously removed
// (or still present, then re-added) recipe always resets addedAt.
func (s *Store) Toggle(userID string, ref models.RecipeRef) models.FavoritesMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.load(userID)
	if _, ok := favs[ref.ID]; ok {
		delete(favs, ref.ID)
	} else {
		entry := normalize.FromStored(ref)
		entry.AddedAt = s.now()
		favs[entry.ID] = entry
	}
	s.persist(userID, favs)
	return copyMap(favs)
}

// Remove deletes the entry if present; absent ids are a no-op.
func (s *Store) Remove(userID, id string) models.FavoritesMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.load(userID)
	if _, ok := favs[id]; ok {
		delete(favs, id)
		s.persist(userID, favs)
	}
	return copyMap(favs)
}

// load must be called with the lock held. The session map is authoritative
// within one process lifetime so a failed persist still reads back.
func (s *Store) load(userID string) models.FavoritesMap {
	key := storageKey(userID)
	if favs, ok := s.session[key]; ok {
		return favs
	}

	favs := models.FavoritesMap{}
	blob, err := s.backend.Load(key)
	if err != nil {
		log.Printf("favorites: failed to load %s: %v", key, err)
	} else if len(blob) > 0 {
		if err := json.Unmarshal(blob, &favs); err != nil {
			log.Printf("favorites: corrupt blob at %s, starting empty: %v", key, err)
			favs = models.FavoritesMap{}
		}
	}
	s.session[key] = favs
	return favs
}

// persist writes the whole blob. Failures are an explicit branch: logged and
// swallowed, while the session map already carries the mutation.
func (s *Store) persist(userID string, favs models.FavoritesMap) {
	key := storageKey(userID)
	s.session[key] = favs

	blob, err := json.Marshal(favs)
	if err != nil {
		log.Printf("favorites: failed to marshal %s: %v", key, err)
		return
	}
	if err := s.backend.Save(key, blob); err != nil {
		log.Printf("favorites: failed to save %s: %v", key, err)
	}
}

// Forget drops the session cache for userID so the next Load re-reads the
// backend. Called when that identity's session ends.
func (s *Store) Forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.session, storageKey(userID))
}

func copyMap(in models.FavoritesMap) models.FavoritesMap {
	out := make(models.FavoritesMap, len(in))
	for id, ref := range in {
		out[id] = ref
	}
	return out
}
