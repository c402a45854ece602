package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/domain"
	"github.com/dpandit24/digital-menu-management-system/internal/modules/menu/infra"
)

func TestUniqueSlug(t *testing.T) {
	ctx := context.Background()
	repo := infra.NewMemStore().Restaurants()

	// taken slugs get a numeric suffix, counting up
	for _, want := range []string{"tasty-corner", "tasty-corner-1", "tasty-corner-2"} {
		s, err := domain.UniqueSlug(ctx, "Tasty Corner", repo)
		require.NoError(t, err)
		assert.Equal(t, want, s)
		_, err = repo.Create(ctx, domain.CreateRestaurantParams{
			OwnerID: "owner", Name: "Tasty Corner", Location: "Lisbon", Slug: s,
		})
		require.NoError(t, err)
	}
}

func TestUniqueSlugEmptyName(t *testing.T) {
	repo := infra.NewMemStore().Restaurants()
	s, err := domain.UniqueSlug(context.Background(), "!!!", repo)
	require.NoError(t, err)
	assert.Equal(t, "restaurant", s)
}
