// Package nav derives the visible navigation surface from session state.
// It holds no state of its own: everything here is a pure function of the
// current role, so the menu can be recomputed after any session transition.
package nav

import "github.com/hiddenhaul/haul/internal/client/models"

// Link is one navigation entry: a route and its label.
type Link struct {
	Route string
	Label string
}

var baseLinks = []Link{
	{Route: "/", Label: "Home"},
	{Route: "/about", Label: "About"},
}

// Links returns the navigation set for the given role. Guests and buyers
// browse the catalog; sellers manage their listings; admins moderate.
// An unknown role gets the base links only.
func Links(role models.Role) []Link {
	links := make([]Link, 0, 6)
	links = append(links, baseLinks...)

	switch role {
	case models.RoleGuest, models.RoleUser:
		links = append(links,
			Link{Route: "/books", Label: "Books"},
			Link{Route: "/clothes", Label: "Clothes"},
		)
	case models.RoleSeller:
		links = append(links,
			Link{Route: "/seller/add-product", Label: "Add Product"},
			Link{Route: "/seller/items", Label: "Seller Items"},
		)
	case models.RoleAdmin:
		links = append(links,
			Link{Route: "/admin/categories", Label: "Update Categories"},
			Link{Route: "/admin/manage-items", Label: "Manage Items"},
			Link{Route: "/admin/rates", Label: "Rates"},
			Link{Route: "/admin/requests", Label: "Requests"},
		)
	}

	return links
}

// CartVisible reports whether the cart affordance is shown: buyers only,
// and only while authenticated.
func CartVisible(role models.Role, loggedIn bool) bool {
	return loggedIn && role == models.RoleUser
}

// AccountVisible reports whether the account menu is shown.
func AccountVisible(role models.Role, loggedIn bool) bool {
	return loggedIn && role != models.RoleGuest
}
