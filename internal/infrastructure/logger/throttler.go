package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Throttler rate-limits repetitive warnings per key. The first warning in
// each interval is logged at WARN, the rest are demoted to DEBUG.
type Throttler struct {
	log      *zap.Logger
	limiters sync.Map // map[string]*rate.Limiter
	interval time.Duration
}

// NewThrottler creates a Throttler. A zero interval defaults to one minute.
func NewThrottler(log *zap.Logger, interval time.Duration) *Throttler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Throttler{log: log, interval: interval}
}

// Warn logs at WARN once per interval per key and at DEBUG otherwise.
func (t *Throttler) Warn(key, msg string, fields ...zap.Field) {
	if t.limiter(key).Allow() {
		t.log.Warn(msg, fields...)
		return
	}
	t.log.Debug(msg, fields...)
}

func (t *Throttler) limiter(key string) *rate.Limiter {
	if l, ok := t.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	actual, _ := t.limiters.LoadOrStore(key, rate.NewLimiter(rate.Every(t.interval), 1))
	return actual.(*rate.Limiter)
}
