package core

import "time"

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

type timer struct {
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	fn       func()
}

// Scheduler runs callbacks against host time that the owner advances
// explicitly, one frame at a time. Nothing in it blocks or spawns goroutines,
// so a game loop stays single-threaded while still owning timeouts and
// intervals.
type Scheduler struct {
	now    time.Duration
	last   Token
	timers map[Token]*timer
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[Token]*timer)}
}

// Now returns the current host time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After arms a one-shot callback that fires once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	return s.arm(d, 0, fn)
}

// Every arms a repeating callback with the given period.
// Periods below one millisecond are raised to one millisecond.
func (s *Scheduler) Every(period time.Duration, fn func()) Token {
	if period < time.Millisecond {
		period = time.Millisecond
	}
	return s.arm(period, period, fn)
}

func (s *Scheduler) arm(d, interval time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	s.last++
	s.timers[s.last] = &timer{due: s.now + d, interval: interval, fn: fn}
	return s.last
}

// Cancel disarms a token. It reports whether the token was still pending.
func (s *Scheduler) Cancel(t Token) bool {
	if _, ok := s.timers[t]; !ok {
		return false
	}
	delete(s.timers, t)
	return true
}

// CancelAll disarms every pending token.
func (s *Scheduler) CancelAll() {
	for t := range s.timers {
		delete(s.timers, t)
	}
}

// Pending returns the number of armed tokens.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Active reports whether the token is still armed.
func (s *Scheduler) Active(t Token) bool {
	_, ok := s.timers[t]
	return ok
}

// Advance moves host time forward by d, firing every callback that falls due
// in order of due time. Callbacks armed with the same due time fire in the
// order they were armed. A callback may arm or cancel other tokens.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		tok, t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			delete(s.timers, tok)
		}
		t.fn()
	}
	s.now = target
}

// nextDue finds the earliest timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) (Token, *timer) {
	var (
		bestTok Token
		best    *timer
	)
	for tok, t := range s.timers {
		if t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && tok < bestTok) {
			bestTok, best = tok, t
		}
	}
	return bestTok, best
}
