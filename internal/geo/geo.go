// Package geo turns a device position into a pickup address.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

var (
	ErrLocationUnavailable = errors.New("unable to access location")

	ErrPermissionDenied    = fmt.Errorf("%w: permission denied", ErrLocationUnavailable)
	ErrPositionUnavailable = fmt.Errorf("%w: position unavailable", ErrLocationUnavailable)
	ErrTimeout             = fmt.Errorf("%w: timeout", ErrLocationUnavailable)
)

// Browser Geolocation API error codes.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// Position is what the device reported: coordinates, or an error code.
type Position struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ErrorCode int      `json:"error_code"`
}

type Location struct {
	Address  string          `json:"address"`
	Geocoded bool            `json:"geocoded"`
	Geometry json.RawMessage `json:"geometry"`
}

// Resolver reverse-geocodes through an OSM Nominatim compatible endpoint.
type Resolver struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

func NewResolver(baseURL string, timeout time.Duration) *Resolver {
	return &Resolver{
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
		userAgent: "luxride/1.0",
	}
}

// Resolve validates pos and names it. Geocoding failures fall back to the
// raw coordinates; only device errors and bad coordinates are returned.
func (r *Resolver) Resolve(ctx context.Context, pos Position) (Location, error) {
	switch pos.ErrorCode {
	case 0:
	case CodePermissionDenied:
		return Location{}, ErrPermissionDenied
	case CodeTimeout:
		return Location{}, ErrTimeout
	default:
		return Location{}, ErrPositionUnavailable
	}
	if pos.Latitude == nil || pos.Longitude == nil {
		return Location{}, ErrPositionUnavailable
	}
	lat, lon := *pos.Latitude, *pos.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Location{}, fmt.Errorf("%w: coordinates out of range", ErrPositionUnavailable)
	}

	point := geom.NewPointFlat(geom.XY, []float64{lon, lat})
	geometry, err := gjson.Marshal(point)
	if err != nil {
		return Location{}, err
	}

	loc := Location{Address: Fallback(lat, lon), Geometry: geometry}
	if r.baseURL == "" {
		return loc, nil
	}
	name, err := r.reverse(ctx, lat, lon)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"lat": lat, "lon": lon}).
			Info("Reverse geocoding failed, using raw coordinates.")
		return loc, nil
	}
	loc.Address = name
	loc.Geocoded = true
	return loc, nil
}

// Fallback formats coordinates the way the pickup field shows them.
func Fallback(lat, lon float64) string {
	return fmt.Sprintf("Current Location (%.4f, %.4f)", lat, lon)
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (r *Resolver) reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned %s", resp.Status)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Error != "" {
		return "", errors.New(body.Error)
	}
	if body.DisplayName == "" {
		return "", errors.New("geocoder returned no address")
	}
	return body.DisplayName, nil
}
