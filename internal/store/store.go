package store

import (
	"encoding/json"
	"log"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/DanielMotoForca/DanielMotos/models"
)

// Store owns the three collections the site runs on: the folder tree, the
// media registry and the motorcycle catalog. Every mutation rewrites the
// affected snapshot slot before returning, so the on-disk state always
// matches memory. One lock covers all three collections, which keeps a
// mutation and its snapshot write atomic.
type Store struct {
	mu sync.RWMutex
	db *gorm.DB

	folders map[string]*models.Folder
	media   map[string]*models.MediaItem
	motos   []models.Motorcycle
}

// Open connects the snapshot database and rehydrates all three slots.
// A missing or unreadable slot falls back to that slot's default state;
// for the folder tree that is a lone root node.
func Open(databaseURL string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Snapshot{}); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	s.load()
	return s, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) load() {
	s.folders = map[string]*models.Folder{
		models.RootFolderID: {
			ID:          models.RootFolderID,
			Name:        "Motos",
			ChildrenIDs: []string{},
			MediaIDs:    []string{},
		},
	}
	s.media = map[string]*models.MediaItem{}
	s.motos = []models.Motorcycle{}

	if data, ok := s.read(models.SnapshotFolders); ok {
		var folders map[string]*models.Folder
		if err := json.Unmarshal(data, &folders); err != nil {
			log.Printf("Ignoring corrupt %q snapshot: %v", models.SnapshotFolders, err)
		} else if folders[models.RootFolderID] != nil {
			s.folders = folders
		}
	}
	if data, ok := s.read(models.SnapshotMedia); ok {
		var media map[string]*models.MediaItem
		if err := json.Unmarshal(data, &media); err != nil {
			log.Printf("Ignoring corrupt %q snapshot: %v", models.SnapshotMedia, err)
		} else {
			s.media = media
		}
	}
	if data, ok := s.read(models.SnapshotMotos); ok {
		var motos []models.Motorcycle
		if err := json.Unmarshal(data, &motos); err != nil {
			log.Printf("Ignoring corrupt %q snapshot: %v", models.SnapshotMotos, err)
		} else {
			s.motos = motos
		}
	}
}

func (s *Store) read(key string) ([]byte, bool) {
	var snap models.Snapshot
	if err := s.db.First(&snap, "key = ?", key).Error; err != nil {
		return nil, false
	}
	return snap.Data, true
}

// write serializes v into its slot. Persistence failures are logged, not
// returned: the in-memory mutation already happened and stays the source
// of truth for the running process.
func (s *Store) write(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode %q snapshot: %v", key, err)
		return
	}
	snap := models.Snapshot{Key: key, Data: data}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap).Error; err != nil {
		log.Printf("Failed to persist %q snapshot: %v", key, err)
	}
}

func (s *Store) saveFolders() { s.write(models.SnapshotFolders, s.folders) }
func (s *Store) saveMedia()   { s.write(models.SnapshotMedia, s.media) }
func (s *Store) saveMotos()   { s.write(models.SnapshotMotos, s.motos) }
