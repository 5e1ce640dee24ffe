// Package categories manages the admin-editable category hierarchy. The
// tree lives in the durable local store and is re-serialized wholesale on
// every mutation, mirroring how the original storefront kept it.
package categories

type Category struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// DefaultTree is the seed used when no stored tree exists: the two stock
// top-level categories with their standard subcategory lists.
func DefaultTree() []Category {
	return []Category{
		{
			ID:            1,
			Name:          "Books",
			Subcategories: []string{"Fiction", "Non-Fiction", "Educational", "Comics", "Poetry"},
		},
		{
			ID:            2,
			Name:          "Clothes",
			Subcategories: []string{"T-Shirts", "Tops", "Pants", "Jackets", "Dresses", "Skirts"},
		},
	}
}

// nextID assigns strictly above every existing id, so deleted ids are never
// reused while higher ones remain. An empty tree starts over at 1.
func nextID(cats []Category) int {
	max := 0
	for _, c := range cats {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
