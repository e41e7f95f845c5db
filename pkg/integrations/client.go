package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/matzehuels/spiget/pkg/buildinfo"
	"github.com/matzehuels/spiget/pkg/cache"
	"github.com/matzehuels/spiget/pkg/observability"
)

const (
	// DefaultBaseURL is the public Spiget API.
	DefaultBaseURL = "https://api.spiget.org/v2/"

	// DefaultTimeout bounds a single request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultTTL is how long backend entries stay valid.
	DefaultTTL = time.Hour

	memoTier = "memo"
)

// RequestOptions alters how a single request is made.
// It is part of the memo key.
type RequestOptions struct {
	// FollowRedirects makes the client follow 3xx responses. When false the
	// redirect response itself is returned and Location can be inspected.
	FollowRedirects bool
}

// DefaultRequestOptions follows redirects.
var DefaultRequestOptions = RequestOptions{FollowRedirects: true}

// Client performs GET requests against the API and memoizes the responses.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	http       *http.Client
	noRedirect *http.Client

	memo  *cache.Memo[*Response]
	group singleflight.Group

	backend     cache.Cache
	backendName string
	ttl         time.Duration
	keyer       cache.Keyer

	limiter *rate.Limiter

	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. A trailing slash is added if missing.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u == "" {
			return
		}
		if u[len(u)-1] != '/' {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client with a copy of hc, so
// later options never modify the caller's client. Its CheckRedirect is
// honored for requests that follow redirects.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithCache adds a second-tier backend. name labels the tier in logs and
// hooks ("file", "redis"). Entries expire after ttl; zero means DefaultTTL.
func WithCache(backend cache.Cache, name string, ttl time.Duration) Option {
	return func(c *Client) {
		if backend == nil {
			return
		}
		if ttl <= 0 {
			ttl = DefaultTTL
		}
		c.backend, c.backendName, c.ttl = backend, name, ttl
	}
}

// WithRateLimit caps outgoing requests at limit per second with the given
// burst. Memo and backend hits are not counted. A non-positive limit
// disables the limiter.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(limit, max(burst, 1))
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client. Without options it talks to DefaultBaseURL
// with a 30s timeout and no backend cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: buildinfo.UserAgent(),
		http:      &http.Client{Timeout: DefaultTimeout},
		memo:      cache.NewMemo[*Response](),
		backend:   cache.NewNullCache(),
		ttl:       DefaultTTL,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	nr := *c.http
	nr.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	c.noRedirect = &nr
	c.keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.baseURL+"|")
	return c
}

// BaseURL returns the URL paths are resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// UserAgent returns the User-Agent header sent with every request.
func (c *Client) UserAgent() string { return c.userAgent }

// Fetch returns the response for GET <base URL><path>.
//
// Identical (path, opts) pairs return the memoized *Response without
// touching the network. Responses are returned whatever their status;
// only transport failures produce an error, and those are not wrapped.
// Concurrent callers for the same pair share one load. A caller whose ctx
// ends stops waiting with ctx.Err(); the load carries on for the others.
func (c *Client) Fetch(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	key := memoKey(path, opts)
	if resp, ok := c.memo.Get(key); ok {
		observability.Cache().OnCacheHit(ctx, memoTier, key)
		return resp, nil
	}
	observability.Cache().OnCacheMiss(ctx, memoTier, key)

	ch := c.group.DoChan(key, func() (any, error) {
		if resp, ok := c.memo.Get(key); ok {
			return resp, nil
		}
		lctx, cancel := c.detach(ctx)
		defer cancel()
		resp, err := c.load(lctx, key, path, opts)
		if err != nil {
			return nil, err
		}
		actual, _ := c.memo.LoadOrStore(key, resp)
		return actual, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Response), nil
	}
}

// detach returns the context a shared load runs under. It keeps ctx's
// values but not its cancellation, since other callers may be waiting on
// the same load; the client timeout bounds it instead.
func (c *Client) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	lctx := context.WithoutCancel(ctx)
	if c.http.Timeout > 0 {
		return context.WithTimeout(lctx, c.http.Timeout)
	}
	return context.WithCancel(lctx)
}

// Forget drops the memoized and persisted response for (path, opts).
func (c *Client) Forget(ctx context.Context, path string, opts RequestOptions) error {
	key := memoKey(path, opts)
	c.memo.Delete(key)
	return c.backend.Delete(ctx, c.keyer.HTTPKey("spiget", key))
}

// Reset drops every memoized response. The backend is left alone.
func (c *Client) Reset() { c.memo.Reset() }

// Close releases the backend cache.
func (c *Client) Close() error { return c.backend.Close() }

func (c *Client) load(ctx context.Context, key, path string, opts RequestOptions) (*Response, error) {
	bkey := c.keyer.HTTPKey("spiget", key)
	if resp := c.fromBackend(ctx, bkey); resp != nil {
		return resp, nil
	}

	resp, err := c.do(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusBadRequest {
		c.toBackend(ctx, bkey, resp)
	}
	return resp, nil
}

func (c *Client) fromBackend(ctx context.Context, key string) *Response {
	if c.backendName == "" {
		return nil
	}
	data, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", "tier", c.backendName, "err", err)
		return nil
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, c.backendName, key)
		return nil
	}
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("discarding unreadable cache entry", "tier", c.backendName, "err", err)
		return nil
	}
	observability.Cache().OnCacheHit(ctx, c.backendName, key)
	c.logger.Debug("cache hit", "tier", c.backendName, "url", resp.URL)
	return &resp
}

func (c *Client) toBackend(ctx context.Context, key string, resp *Response) {
	if c.backendName == "" {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.backend.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "tier", c.backendName, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, c.backendName, key, len(data))
}

func (c *Client) do(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	hc := c.http
	if !opts.FollowRedirects {
		hc = c.noRedirect
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	hooks := observability.HTTP()
	host, urlPath := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, urlPath)
	c.logger.Debug("fetch", "url", req.URL.String(), "redirects", opts.FollowRedirects)

	start := time.Now()
	res, err := hc.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, urlPath, err)
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, urlPath, err)
		return nil, err
	}
	hooks.OnResponse(ctx, req.Method, host, urlPath, res.StatusCode, time.Since(start))
	c.logger.Debug("fetched", "url", req.URL.String(), "status", res.StatusCode, "bytes", len(body))

	return &Response{
		URL:        req.URL.String(),
		StatusCode: res.StatusCode,
		Header:     res.Header.Clone(),
		Body:       body,
	}, nil
}

func memoKey(path string, opts RequestOptions) string {
	if opts.FollowRedirects {
		return path
	}
	return "raw\x00" + path
}
