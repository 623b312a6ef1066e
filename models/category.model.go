package models

const (
	// CategoryAll is the filter sentinel that disables category filtering.
	CategoryAll = "Tudo"
	// CategoryFallback is what a listing is stored under when the admin
	// submits a category outside the fixed set.
	CategoryFallback = "Outras"
)

// Categories is the fixed set a listing may be filed under.
var Categories = []string{"Scooter", "Esportiva", "Naked", "Trail", "Custom", "Outras"}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
