package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/reelmatch/backend/internal/common/clock Clock,Ticker

type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker abstracts time.Ticker so poll loops can be driven by hand in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

func (c *DefaultClock) NewTicker(d time.Duration) Ticker {
	return &defaultTicker{ticker: time.NewTicker(d)}
}

type defaultTicker struct {
	ticker *time.Ticker
}

func (t *defaultTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *defaultTicker) Stop() {
	t.ticker.Stop()
}
