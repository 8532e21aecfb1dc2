package storeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/merchview/merchview/internal/configs"
	"github.com/merchview/merchview/pkg/metric"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL   = "https://dummyjson.com"
	defaultTimeoutMs = 10000

	pathCarts    = "/carts"
	pathUsers    = "/users"
	pathProducts = "/products"
)

// Client is the read-only adapter over the demo store API. Limit 0 means
// "no pagination, return everything", matching the upstream semantics.
type Client interface {
	GetCarts(ctx context.Context) (*CartsResponse, error)
	GetUsers(ctx context.Context, limit int) (*UsersResponse, error)
	GetProducts(ctx context.Context, query ProductQuery) (*ProductsResponse, error)
}

// ProductQuery narrows the product listing. SortBy/Order are passed through
// verbatim when set.
type ProductQuery struct {
	Limit  int
	SortBy string
	Order  string
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cache      *ristretto.Cache
	cacheTTL   time.Duration
}

// NewClient builds a store API client from the app configuration. The
// response cache holds raw payload bytes keyed by request URL; caching at
// the fetch-result level keeps repeated dashboard loads from hammering the
// upstream while leaving every derived value freshly computed.
func NewClient(config configs.Configs) (Client, error) {
	baseURL := config.StoreApiBaseUrl
	if baseURL == "" {
		baseURL = defaultBaseURL
		log.Warn().Str("baseUrl", baseURL).Msg("Store API base URL not set, using default")
	}
	timeoutMs := config.StoreApiTimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = defaultTimeoutMs
	}

	c := &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMs) * time.Millisecond,
		},
	}

	if config.StoreApiCacheEnabled {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1 << 10,
			MaxCost:     64 << 20,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build store API response cache: %w", err)
		}
		ttl := config.StoreApiCacheTtlSeconds
		if ttl <= 0 {
			ttl = 60
		}
		c.cache = cache
		c.cacheTTL = time.Duration(ttl) * time.Second
		log.Info().Int("ttlSeconds", ttl).Msg("Store API response cache enabled")
	}

	return c, nil
}

func (c *client) GetCarts(ctx context.Context) (*CartsResponse, error) {
	body, err := c.get(ctx, pathCarts, nil)
	if err != nil {
		return nil, err
	}
	var res CartsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("malformed carts payload: %w", err)
	}
	if res.Carts == nil {
		return nil, fmt.Errorf("malformed carts payload: missing carts field")
	}
	return &res, nil
}

func (c *client) GetUsers(ctx context.Context, limit int) (*UsersResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	body, err := c.get(ctx, pathUsers, params)
	if err != nil {
		return nil, err
	}
	var res UsersResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("malformed users payload: %w", err)
	}
	if res.Users == nil {
		return nil, fmt.Errorf("malformed users payload: missing users field")
	}
	return &res, nil
}

func (c *client) GetProducts(ctx context.Context, query ProductQuery) (*ProductsResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(query.Limit))
	if query.SortBy != "" {
		params.Set("sortBy", query.SortBy)
	}
	if query.Order != "" {
		params.Set("order", query.Order)
	}
	body, err := c.get(ctx, pathProducts, params)
	if err != nil {
		return nil, err
	}
	var res ProductsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("malformed products payload: %w", err)
	}
	if res.Products == nil {
		return nil, fmt.Errorf("malformed products payload: missing products field")
	}
	return &res, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	if c.cache != nil {
		if cached, found := c.cache.Get(requestURL); found {
			metric.Incr(metric.UpstreamCacheHitCount, metric.BuildTag(
				metric.NewTag(metric.TagResource, path),
			))
			return cached.([]byte), nil
		}
		metric.Incr(metric.UpstreamCacheMissCount, metric.BuildTag(
			metric.NewTag(metric.TagResource, path),
		))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build store API request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", requestURL).Msg("Store API request failed")
		return nil, fmt.Errorf("store API request for %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	metricTags := metric.BuildTag(
		metric.NewTag(metric.TagExternalService, "store-api"),
		metric.NewTag(metric.TagExternalServicePath, path),
		metric.NewTag(metric.TagExternalServiceMethod, http.MethodGet),
		metric.NewTag(metric.TagExternalServiceStatusCode, strconv.Itoa(resp.StatusCode)),
	)
	metric.Incr(metric.ExternalApiRequestCount, metricTags)
	metric.Timing(metric.ExternalApiRequestLatency, time.Since(startTime), metricTags)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read store API response for %s: %w", path, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("url", requestURL).Msg("Store API returned non-2xx status")
		return nil, fmt.Errorf("store API request for %s returned status %d", path, resp.StatusCode)
	}

	if c.cache != nil {
		c.cache.SetWithTTL(requestURL, body, int64(len(body)), c.cacheTTL)
	}
	return body, nil
}
