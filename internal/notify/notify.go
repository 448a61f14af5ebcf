// Package notify carries human-readable failure messages from the pipeline
// to its caller. Adapter-level failures are absorbed locally and surfaced
// here rather than propagated as raised errors across the fetch boundary.
package notify

import "log"

// Notifier receives short descriptive messages at the point of failure.
// The caller decides how to render them (log line, UI banner, ...).
type Notifier interface {
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LogNotifier writes notifications to the standard logger with a component
// prefix.
type LogNotifier struct {
	Component string
}

func NewLog(component string) *LogNotifier {
	return &LogNotifier{Component: component}
}

func (n *LogNotifier) Warnf(format string, args ...interface{}) {
	log.Printf("["+n.Component+"] WARN: "+format, args...)
}

func (n *LogNotifier) Errorf(format string, args ...interface{}) {
	log.Printf("["+n.Component+"] ERROR: "+format, args...)
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Warnf(string, ...interface{})  {}
func (Discard) Errorf(string, ...interface{}) {}
