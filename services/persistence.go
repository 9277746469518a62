package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Paintedstork28/fitness-tracker/models"
)

// Slot names in durable storage. fitnessUser and fitnessAuthToken are
// written by the external login flow; this service only ever writes
// fitnessData (and the session slots when logging out or dev-seeding).
const (
	DataSlot  = "fitnessData"
	UserSlot  = "fitnessUser"
	TokenSlot = "fitnessAuthToken"
)

const DefaultAutosaveInterval = 30 * time.Second

// PersistenceBridge mirrors the store into the fitnessData slot. Last
// save wins: there is no merge, no schema versioning, no conflict
// resolution.
type PersistenceBridge struct {
	store    *Store
	slots    SlotStore
	interval time.Duration
}

func NewPersistenceBridge(store *Store, slots SlotStore, interval time.Duration) *PersistenceBridge {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &PersistenceBridge{store: store, slots: slots, interval: interval}
}

// Save serializes the whole store into the data slot.
func (b *PersistenceBridge) Save() error {
	raw, err := json.Marshal(b.store.Snapshot())
	if err != nil {
		return fmt.Errorf("serialize fitness data: %w", err)
	}
	return b.slots.Set(DataSlot, string(raw))
}

// Load replaces the store wholesale with the persisted snapshot, if one
// exists. An absent slot keeps whatever the store already holds (sample
// data). A snapshot that fails to parse is reported without touching the
// store, so startup continues on sample data and the next save overwrites
// the corrupt slot.
func (b *PersistenceBridge) Load() error {
	raw, ok, err := b.slots.Get(DataSlot)
	if err != nil {
		return fmt.Errorf("read fitness data slot: %w", err)
	}
	if !ok {
		return nil
	}

	var data models.FitnessData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return fmt.Errorf("stored fitness data is corrupt: %w", err)
	}
	b.store.Replace(data)
	return nil
}

// StartAutosave saves on a fixed interval until ctx is cancelled, then
// takes one final save so shutdown loses nothing since the last tick.
func (b *PersistenceBridge) StartAutosave(ctx context.Context) {
	go func() {
		t := time.NewTicker(b.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				if err := b.Save(); err != nil {
					log.Printf("final save failed: %v", err)
				}
				return
			case <-t.C:
				if err := b.Save(); err != nil {
					log.Printf("autosave failed: %v", err)
				}
			}
		}
	}()
}
