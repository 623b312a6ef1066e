package store

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/DanielMotoForca/DanielMotos/models"
)

var (
	ErrMotoNotFound  = errors.New("motorcycle not found")
	ErrEmptyTitle    = errors.New("listing title is required")
	ErrNegativePrice = errors.New("price must not be negative")
)

const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// CreateMotorcycle publishes a listing built from the source folder. The
// folder's media list is copied, not linked; the main image is the first
// image-kind item in folder order, or the house fallback when the folder
// holds no photos.
func (s *Store) CreateMotorcycle(title string, price float64, category, sourceFolderID string) (*models.Motorcycle, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[sourceFolderID]
	if !ok {
		return nil, ErrFolderNotFound
	}

	if !models.ValidCategory(category) {
		category = models.CategoryFallback
	}

	mainImage := models.FallbackMainImage
	for _, mid := range folder.MediaIDs {
		if item, ok := s.media[mid]; ok && item.Type == models.MediaTypeImage {
			mainImage = item.URL
			break
		}
	}

	moto := models.Motorcycle{
		ID:          "moto-" + uuid.NewString(),
		Title:       title,
		Price:       price,
		Description: models.DefaultDescription,
		Category:    category,
		Condition:   models.ConditionSemiNew,
		Brand:       models.DefaultBrand,
		MainImage:   mainImage,
		MediaIDs:    append([]string(nil), folder.MediaIDs...),
	}
	s.motos = append(s.motos, moto)

	s.saveMotos()
	return &moto, nil
}

// DeleteMotorcycle removes a listing from the catalog.
func (s *Store) DeleteMotorcycle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.motos {
		if m.ID == id {
			s.motos = append(s.motos[:i], s.motos[i+1:]...)
			s.saveMotos()
			return nil
		}
	}
	return ErrMotoNotFound
}

// Motorcycle returns one listing by id.
func (s *Store) Motorcycle(id string) (models.Motorcycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.motos {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Motorcycle{}, ErrMotoNotFound
}

// Motorcycles computes the storefront projection: filter by exact
// category (empty or "Tudo" passes everything), then a case-insensitive
// substring search on the title, then a stable sort by price. Equal
// prices keep their catalog order; the catalog itself is never mutated.
func (s *Store) Motorcycles(category, search, order string) []models.Motorcycle {
	s.mu.RLock()
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Motorcycle, 0, len(s.motos))
	for _, m := range s.motos {
		if category != "" && category != models.CategoryAll && m.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(m.Title), term) {
			continue
		}
		out = append(out, m)
	}
	s.mu.RUnlock()

	descending := order == SortDescending
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Price > out[j].Price
		}
		return out[i].Price < out[j].Price
	})
	return out
}
