package models

// RootFolderID is the fixed id of the tree root. The root always exists
// and can never be deleted.
const RootFolderID = "root"

// Folder is a node of the media tree the admin panel organizes uploads
// into. ChildrenIDs and MediaIDs keep insertion order; ParentID is nil
// only for the root.
type Folder struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ParentID    *string  `json:"parent_id"`
	ChildrenIDs []string `json:"children_ids"`
	MediaIDs    []string `json:"media_ids"`
}
