package repository

import (
	"sync"

	model "repair-auctions/internal/models"
)

// MemoryDirectory is a concurrency-safe in-memory user-contact directory. It
// stands in for the external user service that owns registration and
// profiles; the engine only ever reads contacts from it.
type MemoryDirectory struct {
	mu       sync.RWMutex
	contacts map[string]model.Contact
}

// NewMemoryDirectory creates a new in-memory directory instance.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		contacts: make(map[string]model.Contact),
	}
}

// PutContact stores or replaces the contact details for a user.
func (d *MemoryDirectory) PutContact(userID string, contact model.Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contacts[userID] = contact
}

// ContactByID returns the contact details for a user, if known.
func (d *MemoryDirectory) ContactByID(userID string) (model.Contact, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	contact, ok := d.contacts[userID]
	return contact, ok
}
