package models

import "time"

// StorageSlot is one named key-value slot in durable storage. The whole
// serialized store, the session record and the auth token each live in
// their own slot.
type StorageSlot struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
