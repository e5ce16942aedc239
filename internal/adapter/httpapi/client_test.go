package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

func newTestClient(ts *httptest.Server, token string) *Client {
	source := func() string { return token }
	return NewClient(ts.URL, 2*time.Second, source, zap.NewNop())
}

func TestSearchCars_SendsCriteriaAsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cars":[],"total":0}`))
	}))
	defer ts.Close()

	minYear := 2021
	fuel := domain.FuelDiesel
	_, err := newTestClient(ts, "").SearchCars(context.Background(), domain.SearchParams{
		Brand:    "toyota",
		MinYear:  &minYear,
		FuelType: &fuel,
		Page:     3,
		Limit:    5,
		SortBy:   domain.SortByPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"toyota"}, gotQuery["brand"])
	assert.Equal(t, []string{"2021"}, gotQuery["minYear"])
	assert.Equal(t, []string{"diesel"}, gotQuery["fuelType"])
	assert.Equal(t, []string{"3"}, gotQuery["page"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
	assert.Equal(t, []string{"price"}, gotQuery["sortBy"])
	assert.Equal(t, []string{"desc"}, gotQuery["sortOrder"])
}

func TestClient_AttachesBearerTokenWhenPresent(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"cars":[],"total":0}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "token-abc").SearchCars(context.Background(), domain.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"cars":[],"total":0}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").SearchCars(context.Background(), domain.SearchParams{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_RequestIDHeaderIsSet(t *testing.T) {
	var gotRequestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"cars":[],"total":0}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").SearchCars(context.Background(), domain.SearchParams{})
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_ConnectionRefusedIsNetworkClass(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(ts, "")
	ts.Close() // ничего не слушает - connection refused

	_, err := client.SearchCars(context.Background(), domain.SearchParams{})
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestClient_TimeoutIsNetworkClass(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, 50*time.Millisecond, nil, zap.NewNop())
	_, err := client.SearchCars(context.Background(), domain.SearchParams{})
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestSearchCars_MissingCarsArrayIsMalformed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":5}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").SearchCars(context.Background(), domain.SearchParams{})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestSearchCars_UndecodableBodyIsMalformed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").SearchCars(context.Background(), domain.SearchParams{})
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestGetCar_404BecomesNotFoundWithID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"car not found"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").GetCar(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrCarNotFound)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "abc", notFound.ID)
}

func TestClient_ServerErrorBecomesAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"brand is required"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").CreateCar(context.Background(), domain.NewCarInput{})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "brand is required", apiErr.Message)
}

func TestDeleteCar_NoContentIsSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	assert.NoError(t, newTestClient(ts, "").DeleteCar(context.Background(), "1"))
}

func TestLogin_DecodesSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"t1","user":{"id":"u1","name":"Ivan","email":"ivan@example.com"}}`))
	}))
	defer ts.Close()

	session, err := newTestClient(ts, "").Login(context.Background(), "ivan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, "u1", session.User.ID)
}
