package content

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hariharan358/rec-spo/internal/storage"
)

// ErrNotFound is returned by Get, Update and Delete when no record with
// the given id exists. The collection is left unchanged in that case.
var ErrNotFound = errors.New("record not found")

// Record is any entity held in a collection.
type Record interface {
	RecordID() string
}

// Collection holds one named entity collection in memory and mirrors
// every mutation to its storage key as a whole-collection write.
type Collection[T Record] struct {
	name   string
	store  storage.Store
	withID func(T, string) T

	mu    sync.RWMutex
	items []T
}

// NewCollection loads the collection from its storage key. A persisted,
// parseable value wins verbatim; otherwise the seed list is used (a
// corrupt value logs a warning and falls back to the seed). The loaded
// state is written back immediately so the key always exists afterwards.
func NewCollection[T Record](name string, store storage.Store, seed []T, withID func(T, string) T) *Collection[T] {
	c := &Collection[T]{name: name, store: store, withID: withID}

	data, ok, err := store.Load(name)
	if err != nil {
		log.Printf("content: failed to load %q, using seed data: %v", name, err)
	}
	if ok && err == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			log.Printf("content: corrupt persisted value for %q, using seed data: %v", name, err)
		} else {
			c.items = items
		}
	}
	if c.items == nil {
		c.items = append([]T(nil), seed...)
	}

	if err := c.persist(); err != nil {
		log.Printf("content: failed to persist %q: %v", name, err)
	}
	return c
}

// List returns a copy of the collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.RecordID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Add assigns a new unique id, appends the record and persists the
// collection. The stored record is returned.
func (c *Collection[T]) Add(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item = c.withID(item, uuid.NewString())
	c.items = append(c.items, item)
	if err := c.persist(); err != nil {
		return item, err
	}
	return item, nil
}

// Update applies mutate to the matching record and persists. The record
// id is immutable: whatever mutate returns is pinned back to the
// original id.
func (c *Collection[T]) Update(id string, mutate func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.RecordID() == id {
			updated := c.withID(mutate(item), id)
			c.items[i] = updated
			if err := c.persist(); err != nil {
				return updated, err
			}
			return updated, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes the matching record and persists.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return ErrNotFound
}

// persist serializes the whole collection to its storage key. Callers
// must hold the write lock.
func (c *Collection[T]) persist() error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Save(c.name, data)
}

// Storage keys, one per collection.
const (
	KeyAchievements  = "achievements"
	KeyGalleryImages = "galleryImages"
	KeySports        = "sports"
	KeyEvents        = "events"
	KeyTeamMembers   = "teamMembers"
	KeyRegistrations = "registrations"
)

// Store aggregates the six club content collections over one storage
// backend. Registrations are append/delete only and are therefore not
// exposed as a raw collection.
type Store struct {
	Achievements  *Collection[Achievement]
	GalleryImages *Collection[GalleryImage]
	Sports        *Collection[Sport]
	Events        *Collection[Event]
	TeamMembers   *Collection[TeamMember]

	registrations *Collection[Registration]
}

// NewStore loads all collections from the backend, seeding any that have
// no persisted value.
func NewStore(backend storage.Store) *Store {
	return &Store{
		Achievements: NewCollection(KeyAchievements, backend, seedAchievements(),
			func(a Achievement, id string) Achievement { a.ID = id; return a }),
		GalleryImages: NewCollection(KeyGalleryImages, backend, seedGalleryImages(),
			func(g GalleryImage, id string) GalleryImage { g.ID = id; return g }),
		Sports: NewCollection(KeySports, backend, seedSports(),
			func(s Sport, id string) Sport { s.ID = id; return s }),
		Events: NewCollection(KeyEvents, backend, seedEvents(),
			func(e Event, id string) Event { e.ID = id; return e }),
		TeamMembers: NewCollection(KeyTeamMembers, backend, seedTeamMembers(),
			func(t TeamMember, id string) TeamMember { t.ID = id; return t }),
		registrations: NewCollection(KeyRegistrations, backend, seedRegistrations(),
			func(r Registration, id string) Registration { r.ID = id; return r }),
	}
}

// Registrations returns the signup audit trail in insertion order.
func (s *Store) Registrations() []Registration {
	return s.registrations.List()
}

// AddRegistration stamps RegisteredAt and appends the signup. There is
// no update operation for registrations.
func (s *Store) AddRegistration(r Registration) (Registration, error) {
	r.RegisteredAt = time.Now().UTC().Format(time.RFC3339)
	return s.registrations.Add(r)
}

// DeleteRegistration removes a signup by id.
func (s *Store) DeleteRegistration(id string) error {
	return s.registrations.Delete(id)
}
