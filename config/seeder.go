package config

import (
	"log"

	"github.com/DanielMotoForca/DanielMotos/internal/store"
	"github.com/DanielMotoForca/DanielMotos/models"
)

// SeedFolders creates the showcase folder layout on a fresh install:
//
//	Motos
//	├── Fotos e Vídeos Motos
//	│   └── Motos Semi-Novas
//	│       └── Sahara 300 Adventure
//	└── Propagandas
//
// A store whose root already has children is left alone.
func SeedFolders(s *store.Store) {
	root, err := s.Folder(models.RootFolderID)
	if err != nil || len(root.ChildrenIDs) > 0 {
		return
	}

	log.Println("🌱 Seeding folders...")

	photos, err := s.CreateFolder(models.RootFolderID, "Fotos e Vídeos Motos")
	if err == nil {
		var semiNew *models.Folder
		semiNew, err = s.CreateFolder(photos.ID, "Motos Semi-Novas")
		if err == nil {
			_, err = s.CreateFolder(semiNew.ID, "Sahara 300 Adventure")
		}
	}
	if err == nil {
		_, err = s.CreateFolder(models.RootFolderID, "Propagandas")
	}
	if err != nil {
		log.Printf("Failed to seed folders: %v", err)
		return
	}

	log.Println("✅ Seeding complete.")
}
