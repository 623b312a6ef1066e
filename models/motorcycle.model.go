package models

const (
	ConditionNew     = "Nova"
	ConditionSemiNew = "Semi-Nova"
)

// Listing defaults. Every motorcycle published through the admin panel
// gets the house description and brand line; the fallback image covers
// folders that hold no photos yet.
const (
	DefaultDescription = "Moto em excelente estado, revisada e com garantia Moto Força."
	DefaultBrand       = "Honda/Yamaha"
	FallbackMainImage  = "https://images.unsplash.com/photo-1558981403-c5f91cbba527?q=80&w=1000&auto=format&fit=crop"
)

// Motorcycle is a published stock listing. MediaIDs is a copy of the
// source folder's media list taken at publication time; later changes to
// the folder do not touch the listing.
type Motorcycle struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`  // one of Categories
	Condition   string   `json:"condition"` // Nova, Semi-Nova
	Brand       string   `json:"brand"`
	MainImage   string   `json:"main_image"`
	MediaIDs    []string `json:"media_ids"`
}
