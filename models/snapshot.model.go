package models

import "time"

// Snapshot slot keys. Each store serializes into its own row.
const (
	SnapshotMotos   = "motos"
	SnapshotFolders = "folders"
	SnapshotMedia   = "media"
)

// Snapshot is one persisted store slot: the full JSON image of a store
// under a fixed key. Slots are rewritten whole on every mutation and read
// back once at startup.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;size:32" json:"key"`
	Data      []byte    `gorm:"type:blob" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
