package engine

import "time"

type timerID int

// Order matters: timers due at the same instant fire in this order.
const (
	timerCountdown timerID = iota
	timerMove
	timerSpawn
	timerSecond
	timerCelebration
	timerCount
)

type timer struct {
	period  time.Duration
	elapsed time.Duration
	active  bool
}

// schedule is the engine's virtual clock. Timers only accumulate time when
// the host advances the schedule, so a paused engine freezes them in place.
type schedule struct {
	timers [timerCount]timer
}

func (s *schedule) start(id timerID, period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	s.timers[id] = timer{period: period, active: true}
}

func (s *schedule) stop(id timerID) {
	s.timers[id] = timer{}
}

func (s *schedule) stopAll() {
	s.timers = [timerCount]timer{}
}

func (s *schedule) running(id timerID) bool {
	return s.timers[id].active
}

// next returns the active timer that fires soonest and how long until it does.
func (s *schedule) next() (timerID, time.Duration, bool) {
	best := timerID(-1)
	var wait time.Duration
	for i := range s.timers {
		t := &s.timers[i]
		if !t.active {
			continue
		}
		left := t.period - t.elapsed
		if best < 0 || left < wait {
			best, wait = timerID(i), left
		}
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, max(wait, 0), true
}

func (s *schedule) advance(d time.Duration) {
	for i := range s.timers {
		if s.timers[i].active {
			s.timers[i].elapsed += d
		}
	}
}

// rearm restarts a periodic timer after it fired.
func (s *schedule) rearm(id timerID) {
	if s.timers[id].active {
		s.timers[id].elapsed = 0
	}
}
