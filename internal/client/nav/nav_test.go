package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiddenhaul/haul/internal/client/models"
)

func labels(links []Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Label)
	}
	return out
}

func TestLinks_PerRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want []string
	}{
		{models.RoleGuest, []string{"Home", "About", "Books", "Clothes"}},
		{models.RoleUser, []string{"Home", "About", "Books", "Clothes"}},
		{models.RoleSeller, []string{"Home", "About", "Add Product", "Seller Items"}},
		{models.RoleAdmin, []string{"Home", "About", "Update Categories", "Manage Items", "Rates", "Requests"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, labels(Links(tt.role)))
		})
	}
}

func TestLinks_StableUnderRecomputation(t *testing.T) {
	for _, role := range []models.Role{models.RoleGuest, models.RoleUser, models.RoleSeller, models.RoleAdmin} {
		first := Links(role)
		second := Links(role)
		require.Equal(t, first, second, "role %s", role)
	}
}

func TestLinks_SellerNeverSeesCatalogTabs(t *testing.T) {
	for _, l := range Links(models.RoleSeller) {
		assert.NotEqual(t, "Books", l.Label)
		assert.NotEqual(t, "Clothes", l.Label)
	}
}

func TestLinks_UnknownRoleGetsBaseOnly(t *testing.T) {
	assert.Equal(t, []string{"Home", "About"}, labels(Links(models.Role("banana"))))
}

func TestCartVisible(t *testing.T) {
	assert.True(t, CartVisible(models.RoleUser, true))
	assert.False(t, CartVisible(models.RoleUser, false))
	assert.False(t, CartVisible(models.RoleSeller, true))
	assert.False(t, CartVisible(models.RoleAdmin, true))
	assert.False(t, CartVisible(models.RoleGuest, false))
}

func TestAccountVisible(t *testing.T) {
	assert.True(t, AccountVisible(models.RoleUser, true))
	assert.True(t, AccountVisible(models.RoleSeller, true))
	assert.True(t, AccountVisible(models.RoleAdmin, true))
	assert.False(t, AccountVisible(models.RoleGuest, false))
	assert.False(t, AccountVisible(models.RoleGuest, true))
	assert.False(t, AccountVisible(models.RoleUser, false))
}
