//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostClock reports either wall time since creation or a virtual time that
// only moves when a runner advances it by one frame period.
type hostClock struct {
	mu      sync.Mutex
	virtual bool
	start   time.Time
	now     time.Duration
}

func newHostClock(virtual bool) *hostClock {
	return &hostClock{virtual: virtual, start: time.Now()}
}

func (c *hostClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.virtual {
		return c.now
	}
	return time.Since(c.start)
}

func (c *hostClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// VirtualClock is a manually advanced Clock for tools and tests.
type VirtualClock struct {
	c hostClock
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{c: hostClock{virtual: true}}
}

func (v *VirtualClock) Now() time.Duration      { return v.c.Now() }
func (v *VirtualClock) Advance(d time.Duration) { v.c.advance(d) }
