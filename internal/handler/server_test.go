package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jeevamp6/travel-planner/internal/auth"
	"github.com/jeevamp6/travel-planner/internal/handler"
	"github.com/jeevamp6/travel-planner/internal/repo"
	"github.com/jeevamp6/travel-planner/internal/service"
	"github.com/jeevamp6/travel-planner/testutil"
)

// newTestServer wires the full stack (real store, repos, services) behind an
// httptest server, the same shape main assembles in production.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := testutil.NewStore(t)

	tokens, err := auth.NewTokenManager("integration-test-secret-key")
	require.NoError(t, err)
	hasher := auth.NewPasswordHasherWithCost(bcrypt.MinCost)

	users := repo.NewUserRepo(st)
	trips := repo.NewTripRepo(st)
	stops := repo.NewStopRepo(st)
	activities := repo.NewActivityRepo(st)
	expenses := repo.NewExpenseRepo(st)

	srv := handler.NewServer(
		service.NewAuthService(users, hasher, tokens),
		service.NewTripService(trips, activities),
		service.NewStopService(trips, stops),
		service.NewActivityService(trips, stops, activities),
		service.NewExpenseService(trips, expenses),
		service.NewBookingService(trips, expenses),
		service.NewStatsService(trips, stops, activities, expenses),
		service.NewExportService(trips, stops, activities),
		tokens,
	)

	r := chi.NewRouter()
	srv.Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

// doJSON sends a JSON request and decodes the JSON response into out (when
// out is non-nil), returning the status code.
func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func signUp(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()

	var resp struct {
		Token string `json:"token"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	}, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func tripPayload() map[string]any {
	return map[string]any{
		"title":         "Golden Triangle",
		"description":   "",
		"startDate":     "2026-11-01",
		"endDate":       "2026-11-10",
		"totalBudget":   1000,
		"isPublic":      false,
		"origin":        "Delhi",
		"destination":   "Jaipur",
		"travelMode":    "car",
		"coverPhoto":    "",
		"attractionIds": []int{},
	}
}

func TestAPI_SignupLoginMe(t *testing.T) {
	ts := newTestServer(t)

	token := signUp(t, ts, "asha@example.com")

	var me struct {
		Email string `json:"email"`
	}
	status := doJSON(t, ts, http.MethodGet, "/api/auth/me", token, nil, &me)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "asha@example.com", me.Email)

	// Duplicate signup conflicts.
	status = doJSON(t, ts, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Again", "email": "asha@example.com", "password": "secret123",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	// Login round-trips.
	var login struct {
		Token string `json:"token"`
	}
	status = doJSON(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "secret123",
	}, &login)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, login.Token)

	// Wrong password is a 401.
	status = doJSON(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "nope",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_ProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	status := doJSON(t, ts, http.MethodGet, "/api/trips", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_TripLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := signUp(t, ts, "asha@example.com")

	var trip struct {
		ID      string `json:"id"`
		ShareID string `json:"shareId"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/trips", token, tripPayload(), &trip)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, trip.ID)
	require.NotEmpty(t, trip.ShareID)

	// Stop under the trip.
	var stop struct {
		ID    string `json:"id"`
		Order int    `json:"order"`
	}
	status = doJSON(t, ts, http.MethodPost, "/api/trips/"+trip.ID+"/stops", token, map[string]any{
		"city": "Agra", "country": "India",
		"arrivalDate": "2026-11-02", "departureDate": "2026-11-04",
		"order": 0, "notes": "",
	}, &stop)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, stop.Order) // auto-assigned

	// Activity at the stop; date must be inside the visit.
	var activity struct {
		ID     string `json:"id"`
		TripID string `json:"tripId"`
	}
	status = doJSON(t, ts, http.MethodPost, "/api/stops/"+stop.ID+"/activities", token, map[string]any{
		"title": "Taj Mahal", "description": "", "category": "sightseeing",
		"date": "2026-11-03", "estimatedCost": 50, "actualCost": 0,
		"duration": 180, "location": "", "isBooked": false,
	}, &activity)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, trip.ID, activity.TripID)

	// Expense against the trip.
	status = doJSON(t, ts, http.MethodPost, "/api/trips/"+trip.ID+"/expenses", token, map[string]any{
		"stopId": nil, "activityId": nil, "category": "Food",
		"amount": 200, "description": "", "date": "2026-11-03",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	// Trip statistics: expenses only, remaining unclamped.
	var stats struct {
		TotalStops      int     `json:"totalStops"`
		TotalActivities int     `json:"totalActivities"`
		TotalExpenses   float64 `json:"totalExpenses"`
		Remaining       float64 `json:"remaining"`
	}
	status = doJSON(t, ts, http.MethodGet, "/api/trips/"+trip.ID+"/stats", token, nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, stats.TotalStops)
	assert.Equal(t, 1, stats.TotalActivities)
	assert.Equal(t, 200.0, stats.TotalExpenses)
	assert.Equal(t, 800.0, stats.Remaining)

	// The activity's estimate landed on the trip's actualSpent.
	var fetched struct {
		ActualSpent float64 `json:"actualSpent"`
	}
	status = doJSON(t, ts, http.MethodGet, "/api/trips/"+trip.ID, token, nil, &fetched)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 50.0, fetched.ActualSpent)

	// Delete cascades; the trip is gone.
	status = doJSON(t, ts, http.MethodDelete, "/api/trips/"+trip.ID, token, nil, nil)
	require.Equal(t, http.StatusNoContent, status)
	status = doJSON(t, ts, http.MethodGet, "/api/trips/"+trip.ID, token, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_OwnershipIsolation(t *testing.T) {
	ts := newTestServer(t)
	owner := signUp(t, ts, "owner@example.com")
	intruder := signUp(t, ts, "intruder@example.com")

	var trip struct {
		ID string `json:"id"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/trips", owner, tripPayload(), &trip)
	require.Equal(t, http.StatusCreated, status)

	// Someone else's trip is indistinguishable from a missing one.
	status = doJSON(t, ts, http.MethodGet, "/api/trips/"+trip.ID, intruder, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = doJSON(t, ts, http.MethodDelete, "/api/trips/"+trip.ID, intruder, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_ShareLink(t *testing.T) {
	ts := newTestServer(t)
	token := signUp(t, ts, "asha@example.com")

	var trip struct {
		ID      string `json:"id"`
		ShareID string `json:"shareId"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/trips", token, tripPayload(), &trip)
	require.Equal(t, http.StatusCreated, status)

	// Private trip: the share link is dead even with a valid share id.
	status = doJSON(t, ts, http.MethodGet, "/api/share/"+trip.ShareID, "", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Make it public; the link comes alive, no auth needed.
	payload := tripPayload()
	payload["isPublic"] = true
	status = doJSON(t, ts, http.MethodPut, "/api/trips/"+trip.ID, token, payload, nil)
	require.Equal(t, http.StatusOK, status)

	var shared struct {
		ID string `json:"id"`
	}
	status = doJSON(t, ts, http.MethodGet, "/api/share/"+trip.ShareID, "", nil, &shared)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, trip.ID, shared.ID)
}

func TestAPI_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)
	token := signUp(t, ts, "asha@example.com")

	// End date before start date.
	payload := tripPayload()
	payload["endDate"] = "2026-10-01"
	status := doJSON(t, ts, http.MethodPost, "/api/trips", token, payload, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Unknown fields are rejected.
	payload = tripPayload()
	payload["surprise"] = true
	status = doJSON(t, ts, http.MethodPost, "/api/trips", token, payload, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Malformed UUID in the path.
	status = doJSON(t, ts, http.MethodGet, "/api/trips/not-a-uuid", token, nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestAPI_ReferenceData(t *testing.T) {
	ts := newTestServer(t)

	var cities []struct {
		Name string `json:"Name"`
	}
	status := doJSON(t, ts, http.MethodGet, "/api/cities?q=tokyo", "", nil, &cities)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, cities, 1)

	var hotels []struct {
		State string `json:"State"`
	}
	status = doJSON(t, ts, http.MethodGet, "/api/hotels?state=Delhi", "", nil, &hotels)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, hotels)
}

func TestAPI_ExportCSV(t *testing.T) {
	ts := newTestServer(t)
	token := signUp(t, ts, "asha@example.com")

	var trip struct {
		ID string `json:"id"`
	}
	status := doJSON(t, ts, http.MethodPost, "/api/trips", token, tripPayload(), &trip)
	require.Equal(t, http.StatusCreated, status)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/trips/"+trip.ID+"/export", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// Header line plus the single no-stops row.
	assert.Contains(t, string(body), "tripTitle,origin,destination")
	assert.Contains(t, string(body), "Golden Triangle,Delhi,Jaipur")
}
