package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements HTTPHooks and CacheHooks by writing debug-level
// records to a charmbracelet logger. Transport errors are logged at warn.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
// A nil logger falls back to the package-level default logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, statusCode int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", statusCode, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("request failed", "method", method, "host", host, "path", path, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, tier, key string) {
	h.logger.Debug("cache hit", "tier", tier, "key", key)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, tier, key string) {
	h.logger.Debug("cache miss", "tier", tier, "key", key)
}

func (h *LogHooks) OnCacheSet(_ context.Context, tier, key string, size int) {
	h.logger.Debug("cache set", "tier", tier, "key", key, "bytes", size)
}
