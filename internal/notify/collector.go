package notify

import (
	"fmt"
	"sync"
)

// Collector accumulates notifications in memory. Used by tests and by the
// API layer to attach messages to a response.
type Collector struct {
	mu       sync.Mutex
	Warnings []string
	Errors   []string
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Warnf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Collector) Errorf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}

// Messages returns all collected messages, warnings first.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.Warnings)+len(c.Errors))
	out = append(out, c.Warnings...)
	out = append(out, c.Errors...)
	return out
}
