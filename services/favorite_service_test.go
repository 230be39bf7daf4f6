package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteLifecycle(t *testing.T) {
	svc := NewFavoriteServiceWithDB(newTestDB(t))

	fav, err := svc.Favorite(1, testRecipe("Ramen"), false)
	require.NoError(t, err)
	assert.False(t, fav.Custom)

	favs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "Ramen", favs[0].Recipe.Data().Name)

	require.NoError(t, svc.Unfavorite(1, fav.ID))

	favs, err = svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestUnfavoriteForeignRecordFails(t *testing.T) {
	svc := NewFavoriteServiceWithDB(newTestDB(t))

	fav, err := svc.Favorite(1, testRecipe("Ramen"), false)
	require.NoError(t, err)

	err = svc.Unfavorite(2, fav.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	svc := NewFavoriteServiceWithDB(newTestDB(t))

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := svc.Favorite(1, testRecipe(name), true)
		require.NoError(t, err)
	}

	favs, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, favs, 3)
	assert.Equal(t, "First", favs[0].Recipe.Data().Name)
	assert.Equal(t, "Third", favs[2].Recipe.Data().Name)
}
