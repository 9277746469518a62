package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/Paintedstork28/fitness-tracker/models"
)

// SlotStore is string-keyed durable storage: one opaque value per named
// slot. It is the only thing this service ever persists into.
type SlotStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// GormSlotStore keeps slots in the storage_slots table.
type GormSlotStore struct {
	db *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) *GormSlotStore {
	return &GormSlotStore{db: db}
}

func (g *GormSlotStore) Get(key string) (string, bool, error) {
	var slot models.StorageSlot
	err := g.db.First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

func (g *GormSlotStore) Set(key, value string) error {
	slot := models.StorageSlot{Key: key, Value: value}
	return g.db.
		Where("key = ?", key).
		Assign(models.StorageSlot{Value: value}).
		FirstOrCreate(&slot).Error
}

func (g *GormSlotStore) Delete(key string) error {
	return g.db.Delete(&models.StorageSlot{}, "key = ?", key).Error
}

// MemorySlotStore is the in-process stand-in the tests run against.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string]string)}
}

func (m *MemorySlotStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	return value, ok, nil
}

func (m *MemorySlotStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MemorySlotStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
