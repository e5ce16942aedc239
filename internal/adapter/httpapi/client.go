// Package httpapi is the JSON client for the remote marketplace API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

const DefaultTimeout = 10 * time.Second

// TokenSource yields the current session token, or "" when logged out.
// Every outgoing request consults it, so a fresh login is picked up
// transparently by all subsequent calls.
type TokenSource func() string

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, token TokenSource, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		logger:     logger,
	}
}

func (c *Client) SearchCars(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	endpoint := c.baseURL + "/cars?" + searchQuery(params.Normalized()).Encode()

	var result domain.SearchResult
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	// Сервер обязан вернуть массив cars; без него ответ считается битым.
	if result.Cars == nil {
		c.logger.Warn("Car search response has no cars array", zap.String("url", endpoint))
		return nil, domain.ErrMalformedResponse
	}
	return &result, nil
}

func (c *Client) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	var car domain.Car
	err := c.do(ctx, http.MethodGet, c.baseURL+"/cars/"+url.PathEscape(id), nil, &car)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, err
	}
	return &car, nil
}

func (c *Client) CreateCar(ctx context.Context, input domain.NewCarInput) (*domain.Car, error) {
	var car domain.Car
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/cars", input, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

func (c *Client) UpdateCar(ctx context.Context, id string, update domain.CarUpdate) (*domain.Car, error) {
	var car domain.Car
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/cars/"+url.PathEscape(id), update, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

func (c *Client) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/cars/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/login", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error) {
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/register", input, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// do runs one request: marshals the body, attaches the bearer token when
// present, classifies failures. Transport errors (refused connection,
// timeout, DNS) become ErrServiceUnavailable; HTTP error statuses become
// APIError; an undecodable success body becomes ErrMalformedResponse.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Car service request failed",
			zap.String("method", method), zap.String("url", endpoint), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to decode car service response",
			zap.String("url", endpoint), zap.Error(err))
		return domain.ErrMalformedResponse
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return string(bytes.TrimSpace(data))
}

func searchQuery(p domain.SearchParams) url.Values {
	q := url.Values{}
	if p.Brand != "" {
		q.Set("brand", p.Brand)
	}
	if p.Model != "" {
		q.Set("model", p.Model)
	}
	if p.Location != "" {
		q.Set("location", p.Location)
	}
	if p.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.MinYear != nil {
		q.Set("minYear", strconv.Itoa(*p.MinYear))
	}
	if p.MaxYear != nil {
		q.Set("maxYear", strconv.Itoa(*p.MaxYear))
	}
	if p.FuelType != nil {
		q.Set("fuelType", string(*p.FuelType))
	}
	if p.Transmission != nil {
		q.Set("transmission", string(*p.Transmission))
	}
	if p.BodyType != nil {
		q.Set("bodyType", string(*p.BodyType))
	}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.SortBy != "" {
		q.Set("sortBy", string(p.SortBy))
		q.Set("sortOrder", string(p.SortOrder))
	}
	return q
}
