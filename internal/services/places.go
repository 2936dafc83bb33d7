package services

import (
	"context"
	"strings"

	"luxride/internal/changes"
	"luxride/internal/models"
	"luxride/internal/repository"
)

const (
	// RecentRetain is how many recent locations are kept per user.
	RecentRetain = 10
	// DisplayLimit caps favorites, recents and suggestions shown at once.
	DisplayLimit = 5

	minQueryRunes = 2
)

var landmarks = []string{
	"123 Main Street, New York, NY",
	"456 Park Avenue, New York, NY",
	"789 Broadway, New York, NY",
	"JFK Airport, New York, NY",
	"LaGuardia Airport, New York, NY",
	"Times Square, New York, NY",
	"Central Park, New York, NY",
	"Empire State Building, New York, NY",
	"Brooklyn Bridge, New York, NY",
	"Statue of Liberty, New York, NY",
}

// Places manages favorites, recents, saved places and suggestions.
type Places struct {
	store    repository.PlaceStore
	popular  repository.PopularityCounter
	notifier changes.Notifier
}

func NewPlaces(store repository.PlaceStore, popular repository.PopularityCounter, notifier changes.Notifier) *Places {
	return &Places{store: store, popular: popular, notifier: notifier}
}

// AddFavorite stars location. Starring twice fails with ErrAlreadyFavorite
// and writes nothing.
func (p *Places) AddFavorite(ctx context.Context, userID, location string) error {
	location = strings.TrimSpace(location)
	if err := required(field{"location", location}); err != nil {
		return err
	}
	added, err := p.store.AddFavorite(ctx, userID, location)
	if err != nil {
		return err
	}
	if !added {
		return ErrAlreadyFavorite
	}
	changes.Announce(ctx, p.notifier, changes.Change{UserID: userID, Collection: CollectionFavorites, Action: changes.ActionCreated})
	return nil
}

func (p *Places) RemoveFavorite(ctx context.Context, userID, location string) error {
	if err := p.store.RemoveFavorite(ctx, userID, strings.TrimSpace(location)); err != nil {
		return err
	}
	changes.Announce(ctx, p.notifier, changes.Change{UserID: userID, Collection: CollectionFavorites, Action: changes.ActionDeleted})
	return nil
}

func (p *Places) Favorites(ctx context.Context, userID string) ([]string, error) {
	return p.store.Favorites(ctx, userID, DisplayLimit)
}

func (p *Places) AddRecent(ctx context.Context, userID, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}
	if err := p.store.AddRecent(ctx, userID, location, RecentRetain); err != nil {
		return err
	}
	changes.Announce(ctx, p.notifier, changes.Change{UserID: userID, Collection: CollectionRecents, Action: changes.ActionCreated})
	return nil
}

func (p *Places) Recents(ctx context.Context, userID string) ([]string, error) {
	return p.store.Recents(ctx, userID, DisplayLimit)
}

func (p *Places) SavePlace(ctx context.Context, userID string, kind models.SavedPlaceKind, address string) (*models.SavedPlace, error) {
	if kind != models.PlaceHome && kind != models.PlaceWork {
		return nil, ErrInvalidPlace
	}
	address = strings.TrimSpace(address)
	if err := required(field{"address", address}); err != nil {
		return nil, err
	}
	sp := &models.SavedPlace{UserID: userID, Kind: kind, Address: address}
	if err := p.store.SavePlace(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (p *Places) SavedPlaces(ctx context.Context, userID string) ([]models.SavedPlace, error) {
	return p.store.SavedPlaces(ctx, userID)
}

func (p *Places) Popular(ctx context.Context, userID string) ([]models.PopularDestination, error) {
	return p.popular.Top(ctx, userID, DisplayLimit)
}

// Suggest matches query case-insensitively against the user's favorites, then
// recents, then the built-in landmarks. Queries under two characters match
// nothing.
func (p *Places) Suggest(ctx context.Context, userID, query string) ([]string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < minQueryRunes {
		return []string{}, nil
	}

	favorites, err := p.store.Favorites(ctx, userID, DisplayLimit)
	if err != nil {
		return nil, err
	}
	recents, err := p.store.Recents(ctx, userID, RecentRetain)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := []string{}
	for _, group := range [][]string{favorites, recents, landmarks} {
		for _, loc := range group {
			if len(out) == DisplayLimit {
				return out, nil
			}
			if seen[loc] || !strings.Contains(strings.ToLower(loc), query) {
				continue
			}
			seen[loc] = true
			out = append(out, loc)
		}
	}
	return out, nil
}
