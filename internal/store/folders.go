package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/DanielMotoForca/DanielMotos/models"
)

var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrMediaNotFound  = errors.New("media not found")
	ErrEmptyName      = errors.New("folder name is required")
	ErrRootFolder     = errors.New("the root folder cannot be deleted")
)

// CreateFolder adds an empty folder under parentID and returns a copy of
// it. Blank names are rejected without touching the tree.
func (s *Store) CreateFolder(parentID, name string) (*models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.folders[parentID]
	if !ok {
		return nil, ErrFolderNotFound
	}

	pid := parent.ID
	folder := &models.Folder{
		ID:          "folder-" + uuid.NewString(),
		Name:        name,
		ParentID:    &pid,
		ChildrenIDs: []string{},
		MediaIDs:    []string{},
	}
	s.folders[folder.ID] = folder
	parent.ChildrenIDs = append(parent.ChildrenIDs, folder.ID)

	s.saveFolders()

	out := copyFolder(folder)
	return &out, nil
}

// DeleteFolder removes a folder and everything under it: descendant
// folders disappear from the tree and their media records are deleted
// from the registry. Published listings keep their snapshot media ids;
// ids that stop resolving are skipped when the gallery is served.
func (s *Store) DeleteFolder(id string) error {
	if id == models.RootFolderID {
		return ErrRootFolder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[id]
	if !ok {
		return ErrFolderNotFound
	}

	if folder.ParentID != nil {
		if parent, ok := s.folders[*folder.ParentID]; ok {
			parent.ChildrenIDs = removeID(parent.ChildrenIDs, id)
		}
	}
	s.deleteSubtree(id)

	s.saveFolders()
	s.saveMedia()
	return nil
}

func (s *Store) deleteSubtree(id string) {
	folder, ok := s.folders[id]
	if !ok {
		return
	}
	for _, mid := range folder.MediaIDs {
		delete(s.media, mid)
	}
	for _, cid := range folder.ChildrenIDs {
		s.deleteSubtree(cid)
	}
	delete(s.folders, id)
}

// Folder returns a copy of one folder node.
func (s *Store) Folder(id string) (models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, ok := s.folders[id]
	if !ok {
		return models.Folder{}, ErrFolderNotFound
	}
	return copyFolder(folder), nil
}

// Children resolves a folder's subfolders in their stored order.
func (s *Store) Children(id string) ([]models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	folder, ok := s.folders[id]
	if !ok {
		return nil, ErrFolderNotFound
	}
	children := make([]models.Folder, 0, len(folder.ChildrenIDs))
	for _, cid := range folder.ChildrenIDs {
		if child, ok := s.folders[cid]; ok {
			children = append(children, copyFolder(child))
		}
	}
	return children, nil
}

// Breadcrumbs walks parent links from id up to the root and returns the
// path in root→id order.
func (s *Store) Breadcrumbs(id string) ([]models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.folders[id]; !ok {
		return nil, ErrFolderNotFound
	}

	var path []models.Folder
	for curr := id; ; {
		folder, ok := s.folders[curr]
		if !ok {
			break
		}
		path = append(path, copyFolder(folder))
		if folder.ParentID == nil {
			break
		}
		curr = *folder.ParentID
	}

	// collected leaf-first, flip to root-first
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// AttachMedia registers a new media record and appends it to the folder's
// media list. Uploads of several files call this once per file; each call
// stands alone.
func (s *Store) AttachMedia(folderID, mediaType, name, url string) (*models.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[folderID]
	if !ok {
		return nil, ErrFolderNotFound
	}

	item := &models.MediaItem{
		ID:   "media-" + uuid.NewString(),
		Type: mediaType,
		URL:  url,
		Name: name,
	}
	s.media[item.ID] = item
	folder.MediaIDs = append(folder.MediaIDs, item.ID)

	s.saveMedia()
	s.saveFolders()

	out := *item
	return &out, nil
}

// DetachMedia removes the item from the folder and deletes its record
// from the registry.
func (s *Store) DetachMedia(folderID, mediaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[folderID]
	if !ok {
		return ErrFolderNotFound
	}
	if !containsID(folder.MediaIDs, mediaID) {
		return ErrMediaNotFound
	}

	folder.MediaIDs = removeID(folder.MediaIDs, mediaID)
	delete(s.media, mediaID)

	s.saveMedia()
	s.saveFolders()
	return nil
}

// Media resolves ids against the registry. Ids that no longer exist are
// skipped, never reported as errors: listings may outlive their folder.
func (s *Store) Media(ids []string) []models.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MediaItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.media[id]; ok {
			items = append(items, *item)
		}
	}
	return items
}

func copyFolder(f *models.Folder) models.Folder {
	out := *f
	out.ChildrenIDs = append([]string(nil), f.ChildrenIDs...)
	out.MediaIDs = append([]string(nil), f.MediaIDs...)
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
