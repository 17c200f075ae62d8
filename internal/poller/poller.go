// Package poller implements the client-resident half of the match protocol:
// a participant swipes through a finite candidate feed while a fixed-interval
// poll watches for a match caused by anyone in the session. There is no push
// channel; convergence is polling by design.
package poller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/reelmatch/backend/internal/common/clock"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_api.go github.com/reelmatch/backend/internal/poller MatchAPI

// DefaultInterval is how often the poll loop asks the server whether the
// session has matched.
const DefaultInterval = 3 * time.Second

type State int

const (
	// StateSwiping is the working state: the participant is voting and the
	// poll loop is running. Re-entrant; a failed match check stays here.
	StateSwiping State = iota
	// StateMatched is terminal for this client. Other participants reach it
	// independently through their own polls.
	StateMatched
	// StateExhausted is terminal for this client: the feed ran dry before a
	// match was observed. The session itself may still match later.
	StateExhausted
)

// CheckResult mirrors the aggregator's answer as seen over the wire.
type CheckResult struct {
	Matched     bool
	CandidateID uint
	Votes       int32
}

// MatchAPI is the client's view of the server. Implementations are expected
// to translate transport failures into errors; the poller treats every error
// as "no match yet" and retries on the next tick.
type MatchAPI interface {
	RecordVote(ctx context.Context, sessionID string, candidateID uint, kind string, value bool) (bool, error)
	CheckCandidate(ctx context.Context, sessionID string, candidateID uint) (CheckResult, error)
	CheckSession(ctx context.Context, sessionID string) (CheckResult, error)
}

// FeedItem is one candidate in the participant's ordered feed.
type FeedItem struct {
	CandidateID uint
	Kind        string
}

// Outcome is delivered exactly once, when the poller leaves StateSwiping.
type Outcome struct {
	State State
	Match CheckResult
}

type Config struct {
	SessionID string
	API       MatchAPI
	Feed      []FeedItem
	Interval  time.Duration
	Clock     clock.Clock
}

type Poller struct {
	sessionID string
	api       MatchAPI
	interval  time.Duration
	clock     clock.Clock

	mu      sync.Mutex
	state   State
	feed    []FeedItem
	pos     int
	outcome chan Outcome
	stop    chan struct{}
}

func New(cfg *Config) (*Poller, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.SessionID == "" {
		return nil, errors.New("session id is required")
	}
	if cfg.API == nil {
		return nil, errors.New("match API is required")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	p := &Poller{
		sessionID: cfg.SessionID,
		api:       cfg.API,
		interval:  interval,
		clock:     clk,
		state:     StateSwiping,
		feed:      cfg.Feed,
		outcome:   make(chan Outcome, 1),
		stop:      make(chan struct{}),
	}

	// An empty feed has nothing to swipe: the participant is exhausted
	// before the first poll, so the loop must never start waiting for one.
	if len(p.feed) == 0 {
		p.finish(StateExhausted, CheckResult{})
	}

	return p, nil
}

// Start launches the poll loop and returns the outcome channel. The loop runs
// until the poller leaves StateSwiping or ctx is cancelled; it only ever
// learns about matches it did not cause itself, since the causing vote's
// immediate check happens in Swipe.
func (p *Poller) Start(ctx context.Context) <-chan Outcome {
	go p.poll(ctx)
	return p.outcome
}

func (p *Poller) poll(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C():
			result, err := p.api.CheckSession(ctx, p.sessionID)
			if err != nil {
				// Indistinguishable from "no match yet"; the next
				// tick retries.
				logrus.Errorf("Session check failed for %s: %v", p.sessionID, err)
				continue
			}
			if result.Matched {
				p.finish(StateMatched, result)
				return
			}
		}
	}
}

// Next returns the candidate the participant should see, without consuming
// it. ok is false once the feed is exhausted or the poller is terminal.
func (p *Poller) Next() (FeedItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateSwiping || p.pos >= len(p.feed) {
		return FeedItem{}, false
	}
	return p.feed[p.pos], true
}

// Swipe records the participant's verdict on the current candidate and
// advances the feed. A positive swipe is followed by an immediate candidate
// check, which gives the voter who completes a quorum its low-latency answer.
// A failed vote is logged and skipped; it simply never registers.
func (p *Poller) Swipe(ctx context.Context, liked bool) State {
	p.mu.Lock()
	if p.state != StateSwiping || p.pos >= len(p.feed) {
		state := p.state
		p.mu.Unlock()
		return state
	}
	item := p.feed[p.pos]
	p.pos++
	exhausted := p.pos >= len(p.feed)
	p.mu.Unlock()

	if _, err := p.api.RecordVote(ctx, p.sessionID, item.CandidateID, item.Kind, liked); err != nil {
		logrus.Errorf("Vote failed for session %s candidate %d: %v", p.sessionID, item.CandidateID, err)
	} else if liked {
		result, err := p.api.CheckCandidate(ctx, p.sessionID, item.CandidateID)
		if err != nil {
			logrus.Errorf("Candidate check failed for session %s candidate %d: %v", p.sessionID, item.CandidateID, err)
		} else if result.Matched {
			p.finish(StateMatched, result)
			return StateMatched
		}
	}

	if exhausted {
		p.finish(StateExhausted, CheckResult{})
		return StateExhausted
	}

	return p.State()
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// finish performs the single terminal transition: later callers lose the race
// and the first outcome stands.
func (p *Poller) finish(state State, result CheckResult) {
	p.mu.Lock()
	if p.state != StateSwiping {
		p.mu.Unlock()
		return
	}
	p.state = state
	p.mu.Unlock()

	close(p.stop)
	p.outcome <- Outcome{State: state, Match: result}
	close(p.outcome)
}
