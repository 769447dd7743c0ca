package app

import "time"

// overrunLogEvery limits how often an over-budget frame is reported.
const overrunLogEvery = time.Second

// FrameStats accounts frame work time against the budget.
type FrameStats struct {
	budget   time.Duration
	frames   uint64
	overruns uint64
	last     time.Duration
	max      time.Duration
	total    time.Duration

	lastReport time.Duration
	reported   bool
}

func NewFrameStats(budget time.Duration) *FrameStats {
	return &FrameStats{budget: budget}
}

// Observe records one frame that took work, stamped at now. It reports true
// when the frame went over budget and a report is due.
func (s *FrameStats) Observe(work, now time.Duration) bool {
	s.frames++
	s.last = work
	s.total += work
	if work > s.max {
		s.max = work
	}
	if work <= s.budget {
		return false
	}
	s.overruns++
	if s.reported && now-s.lastReport < overrunLogEvery {
		return false
	}
	s.reported = true
	s.lastReport = now
	return true
}

func (s *FrameStats) Budget() time.Duration { return s.budget }
func (s *FrameStats) Frames() uint64        { return s.frames }
func (s *FrameStats) Overruns() uint64      { return s.overruns }
func (s *FrameStats) Last() time.Duration   { return s.last }
func (s *FrameStats) Max() time.Duration    { return s.max }

func (s *FrameStats) Mean() time.Duration {
	if s.frames == 0 {
		return 0
	}
	return s.total / time.Duration(s.frames)
}
