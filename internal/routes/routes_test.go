package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxride/internal/changes"
	"luxride/internal/controllers"
	"luxride/internal/events"
	"luxride/internal/geo"
	"luxride/internal/middleware"
	"luxride/internal/repository"
	"luxride/internal/services"
	"luxride/internal/testutil"
	"luxride/internal/tracking"
)

type app struct {
	router *gin.Engine
	hub    *changes.Hub
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repository.New(testutil.NewDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := changes.NewHub()
	go hub.Run(ctx)
	notifier := changes.NewLocal(hub)

	auth := middleware.NewAuth("test-secret", time.Hour)
	ctl := Controllers{
		Auth:     controllers.NewAuthController(services.NewAccounts(store), auth),
		Booking:  controllers.NewBookingController(services.NewBookings(store, store, notifier, events.Nop{})),
		Inbox:    controllers.NewInboxController(services.NewInbox(store, notifier)),
		Place:    controllers.NewPlaceController(services.NewPlaces(store, store, notifier)),
		Schedule: controllers.NewScheduleController(services.NewSchedules(store, notifier), services.NewRatings(store, store)),
		Location: controllers.NewLocationController(geo.NewResolver("", time.Second)),
		Socket:   controllers.NewSocketController(auth, tracking.NewSimulator(10*time.Millisecond, 40, 1), hub),
	}
	r := gin.New()
	r.Use(middleware.CORS())
	return &app{router: SetupRouter(r, ctl, auth), hub: hub}
}

func (a *app) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (a *app) signup(t *testing.T, email, userType string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/auth/signup", "", gin.H{
		"name": "Pat Doe", "email": email, "phone": "555-0101",
		"password": "pw", "confirm_password": "pw", "user_type": userType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	return body.Token
}

func TestSignupAndLogin(t *testing.T) {
	a := newApp(t)
	a.signup(t, "pat@x.com", "rider")

	w := a.do(t, http.MethodPost, "/auth/signup", "", gin.H{
		"name": "Pat", "email": "pat@x.com", "phone": "1", "password": "pw", "confirm_password": "pw",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(t, http.MethodPost, "/auth/login", "", gin.H{"identifier": "pat@x.com", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "pat@x.com", "password": "pw", "user_type": "rider"})
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
		User  struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}
	decode(t, w, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "pat@x.com", body.User.Email)
	assert.Empty(t, body.User.Password)

	w = a.do(t, http.MethodGet, "/profile", body.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodGet, "/driver/profile", body.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDriverProfile(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "drv@x.com", "driver")

	w := a.do(t, http.MethodGet, "/driver/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Driver struct {
			FirstName  string `json:"first_name"`
			DriverCode string `json:"driver_id"`
		} `json:"driver"`
	}
	decode(t, w, &body)
	assert.Equal(t, "Pat", body.Driver.FirstName)
	assert.True(t, strings.HasPrefix(body.Driver.DriverCode, "DR-"))
}

func TestBookingFlowOverHTTP(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "pat@x.com", "rider")

	w := a.do(t, http.MethodGet, "/trips", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodPost, "/booking/draft/next", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPut, "/booking/draft", token, gin.H{
		"pickup": "A", "destination": "B", "datetime": "2030-01-02T10:00", "vehicle_type": "standard",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPost, "/booking/draft/confirm", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, want := range []string{"vehicle_selection", "confirmation"} {
		w = a.do(t, http.MethodPost, "/booking/draft/next", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Draft services.DraftView `json:"draft"`
		}
		decode(t, w, &body)
		assert.Equal(t, want, body.Draft.Step)
	}

	w = a.do(t, http.MethodPost, "/booking/draft/confirm", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var confirmed struct {
		Booking struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
		} `json:"booking"`
		Trip struct {
			Route string `json:"route"`
		} `json:"trip"`
	}
	decode(t, w, &confirmed)
	assert.Equal(t, "A to B", confirmed.Trip.Route)
	assert.InDelta(t, 34.5, confirmed.Booking.Price, 1e-9)

	w = a.do(t, http.MethodGet, "/trips", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Upcoming"`)

	w = a.do(t, http.MethodGet, "/inbox", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inbox struct {
		Notifications []struct {
			ID string `json:"id"`
		} `json:"notifications"`
		Unread int `json:"unread"`
	}
	decode(t, w, &inbox)
	require.Len(t, inbox.Notifications, 1)
	assert.Equal(t, 1, inbox.Unread)

	w = a.do(t, http.MethodPost, "/inbox/"+inbox.Notifications[0].ID+"/read", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodGet, "/bookings/"+confirmed.Booking.ID+"/receipt.txt", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "luxride-receipt-"+confirmed.Booking.ID+".txt")
	assert.Contains(t, w.Body.String(), "TOTAL: $34.50")

	w = a.do(t, http.MethodPost, "/bookings/"+confirmed.Booking.ID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	other := a.signup(t, "other@x.com", "rider")
	w = a.do(t, http.MethodGet, "/bookings/"+confirmed.Booking.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlacesAndRatings(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "pat@x.com", "rider")

	w := a.do(t, http.MethodPost, "/places/favorites", token, gin.H{"location": "Times Square, New York, NY"})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = a.do(t, http.MethodPost, "/places/favorites", token, gin.H{"location": "Times Square, New York, NY"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"already in favorites"}`, w.Body.String())

	w = a.do(t, http.MethodGet, "/places/suggestions?q=times", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":["Times Square, New York, NY"]}`, w.Body.String())

	w = a.do(t, http.MethodPut, "/places/saved/home", token, gin.H{"address": "1 Elm St"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPost, "/ratings", token, gin.H{"rating": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"please select a rating"}`, w.Body.String())

	w = a.do(t, http.MethodPost, "/ratings", token, gin.H{"rating": 5, "feedback": "smooth"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = a.do(t, http.MethodPost, "/scheduled", token, gin.H{"pickup": "A", "destination": "B", "datetime": "2001-01-01T10:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurrentLocation(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "pat@x.com", "rider")

	w := a.do(t, http.MethodPost, "/location/current", token, gin.H{"error_code": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = a.do(t, http.MethodPost, "/location/current", token, gin.H{"latitude": 40.7128, "longitude": -74.006})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Current Location (40.7128, -74.0060)")
}

func dialWS(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestTrackingWebSocket(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "pat@x.com", "rider")
	srv := httptest.NewServer(a.router)
	defer srv.Close()

	// 11 + 8 runes estimate a 24 km trip, so the driver starts 6 km away.
	conn := dialWS(t, srv, "/ws/tracking?token="+token+"&pickup=JFK%20Airport&destination=Broadway")
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first, second tracking.Update
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))
	assert.True(t, first.Active)
	assert.Equal(t, 6.0, first.DistanceKm)
	assert.LessOrEqual(t, second.DistanceKm, first.DistanceKm)
	assert.GreaterOrEqual(t, second.DistanceKm, tracking.MinDistanceKm)
}

func TestTrackingWebSocketIdle(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "pat@x.com", "rider")
	srv := httptest.NewServer(a.router)
	defer srv.Close()

	conn := dialWS(t, srv, "/ws/tracking?token="+token+"&pickup=JFK%20Airport")
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var first tracking.Update
	require.NoError(t, conn.ReadJSON(&first))
	assert.False(t, first.Active)
	assert.Equal(t, tracking.DefaultIdleDistKm, first.DistanceKm)
}

func TestChangesWebSocket(t *testing.T) {
	a := newApp(t)
	token := a.signup(t, "pat@x.com", "rider")
	srv := httptest.NewServer(a.router)
	defer srv.Close()

	conn := dialWS(t, srv, "/ws/changes?token="+token)
	require.Eventually(t, func() bool {
		return a.hub.Subscribers(userIDOf(t, a, token)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	w := a.do(t, http.MethodPost, "/places/favorites", token, gin.H{"location": "Home"})
	require.Equal(t, http.StatusCreated, w.Code)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var c changes.Change
	require.NoError(t, conn.ReadJSON(&c))
	assert.Equal(t, services.CollectionFavorites, c.Collection)
	assert.Equal(t, changes.ActionCreated, c.Action)
}

func TestWebSocketRejectsMissingToken(t *testing.T) {
	a := newApp(t)
	w := a.do(t, http.MethodGet, "/ws/tracking", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func userIDOf(t *testing.T, a *app, token string) string {
	t.Helper()
	w := a.do(t, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &body)
	return body.User.ID
}
