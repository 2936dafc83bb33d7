package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxride/internal/models"
)

func TestFavorites(t *testing.T) {
	store := newStore(t)
	p := NewPlaces(store, store, nil)
	ctx := context.Background()

	require.NoError(t, p.AddFavorite(ctx, "u1", "Home Base"))
	assert.ErrorIs(t, p.AddFavorite(ctx, "u1", " Home Base "), ErrAlreadyFavorite)
	assert.ErrorIs(t, p.AddFavorite(ctx, "u1", ""), ErrMissingField)

	favs, err := p.Favorites(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Home Base"}, favs)

	require.NoError(t, p.RemoveFavorite(ctx, "u1", "Home Base"))
	favs, err = p.Favorites(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestRecentsShowFive(t *testing.T) {
	store := newStore(t)
	p := NewPlaces(store, store, nil)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.NoError(t, p.AddRecent(ctx, "u1", fmt.Sprintf("Place %d", i)))
	}
	require.NoError(t, p.AddRecent(ctx, "u1", "  "))

	recents, err := p.Recents(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Place 11", "Place 10", "Place 9", "Place 8", "Place 7"}, recents)
}

func TestSavedPlaces(t *testing.T) {
	store := newStore(t)
	p := NewPlaces(store, store, nil)
	ctx := context.Background()

	_, err := p.SavePlace(ctx, "u1", "gym", "x")
	assert.ErrorIs(t, err, ErrInvalidPlace)

	_, err = p.SavePlace(ctx, "u1", models.PlaceHome, "1 Elm St")
	require.NoError(t, err)
	_, err = p.SavePlace(ctx, "u1", models.PlaceHome, "2 Oak St")
	require.NoError(t, err)
	_, err = p.SavePlace(ctx, "u1", models.PlaceWork, "9 Office Rd")
	require.NoError(t, err)

	got, err := p.SavedPlaces(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2 Oak St", got[0].Address)
	assert.Equal(t, models.PlaceWork, got[1].Kind)
}

func TestSuggest(t *testing.T) {
	store := newStore(t)
	p := NewPlaces(store, store, nil)
	ctx := context.Background()

	got, err := p.Suggest(ctx, "u1", "a")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, p.AddRecent(ctx, "u1", "Airport Hotel"))
	require.NoError(t, p.AddFavorite(ctx, "u1", "Grand Airport Lounge"))

	got, err = p.Suggest(ctx, "u1", "AIRPORT")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Grand Airport Lounge",
		"Airport Hotel",
		"JFK Airport, New York, NY",
		"LaGuardia Airport, New York, NY",
	}, got)

	got, err = p.Suggest(ctx, "u1", "new york")
	require.NoError(t, err)
	assert.Len(t, got, DisplayLimit)
}

func TestPopular(t *testing.T) {
	store := newStore(t)
	p := NewPlaces(store, store, nil)
	ctx := context.Background()
	for _, loc := range []string{"B", "A", "B"} {
		require.NoError(t, store.Increment(ctx, "u1", loc))
	}
	top, err := p.Popular(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Location)
	assert.EqualValues(t, 2, top[0].Count)
}
