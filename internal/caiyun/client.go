// Package caiyun is a thin client for the Caiyun place and weather APIs.
package caiyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fakhrymubarak/sunny-weather/internal/config"
	"github.com/fakhrymubarak/sunny-weather/internal/model"
)

var (
	ErrTokenMissing = errors.New("caiyun token missing")
	ErrEmptyBody    = errors.New("response body is null")
)

// StatusError is returned when Caiyun answers with a non-2xx HTTP status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("caiyun responded %d: %s", e.Code, e.Body)
}

// Client issues requests against the Caiyun endpoints. The token is embedded in
// every request: as a query parameter for place search, as a path segment for weather.
type Client struct {
	placeURL   string
	weatherURL string
	token      string
	lang       string
	httpClient *http.Client
}

// NewClient builds a client from config. An optional *http.Client replaces the default one.
func NewClient(httpClient ...*http.Client) *Client {
	client := &http.Client{Timeout: config.GetHTTPClientTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &Client{
		placeURL:   config.GetCaiyunPlaceURL(),
		weatherURL: config.GetCaiyunWeatherURL(),
		token:      config.GetCaiyunToken(),
		lang:       config.GetCaiyunLang(),
		httpClient: client,
	}
}

// NewClientWithURLs builds a client against explicit endpoints, mainly for tests.
func NewClientWithURLs(placeURL, weatherURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		placeURL:   placeURL,
		weatherURL: strings.TrimRight(weatherURL, "/"),
		token:      token,
		lang:       "zh_CN",
		httpClient: httpClient,
	}
}

// SearchPlaces looks places up by free text.
func (c *Client) SearchPlaces(ctx context.Context, query string) (*model.PlaceResponse, error) {
	if c.token == "" {
		return nil, ErrTokenMissing
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("token", c.token)
	params.Set("lang", c.lang)

	var resp model.PlaceResponse
	if err := c.get(ctx, c.placeURL+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRealtimeWeather fetches current conditions for a coordinate pair.
func (c *Client) GetRealtimeWeather(ctx context.Context, lng, lat string) (*model.RealtimeResponse, error) {
	var resp model.RealtimeResponse
	if err := c.getWeather(ctx, lng, lat, "realtime.json", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDailyWeather fetches the multi-day forecast for a coordinate pair.
func (c *Client) GetDailyWeather(ctx context.Context, lng, lat string) (*model.DailyResponse, error) {
	var resp model.DailyResponse
	if err := c.getWeather(ctx, lng, lat, "daily.json", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getWeather(ctx context.Context, lng, lat, resource string, out interface{}) error {
	if c.token == "" {
		return ErrTokenMissing
	}
	endpoint := fmt.Sprintf("%s/%s/%s,%s/%s",
		c.weatherURL, url.PathEscape(c.token), url.PathEscape(lng), url.PathEscape(lat), resource)
	return c.get(ctx, endpoint, out)
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call caiyun: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read caiyun response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	if len(strings.TrimSpace(string(body))) == 0 || strings.TrimSpace(string(body)) == "null" {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode caiyun response: %w", err)
	}
	return nil
}
