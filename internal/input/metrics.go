package input

import (
	"sync/atomic"
	"time"
)

// Metrics counts processed player events.
type Metrics struct {
	byKind         [eventKindCount]atomic.Uint64
	dropped        atomic.Uint64
	hookConsumed   atomic.Uint64
	clicksAssigned atomic.Uint64

	peakLatency atomic.Int64
	totalNanos  atomic.Int64

	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// RecordEvent records a processed event and its processing time.
func (m *Metrics) RecordEvent(kind EventKind, latency time.Duration) {
	if !m.enabled.Load() || kind >= eventKindCount {
		return
	}
	m.byKind[kind].Add(1)

	ns := latency.Nanoseconds()
	m.totalNanos.Add(ns)
	for {
		current := m.peakLatency.Load()
		if ns <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}
}

// RecordDropped records an event that produced no input event, such as an
// unmapped gamepad button.
func (m *Metrics) RecordDropped() {
	if m.enabled.Load() {
		m.dropped.Add(1)
	}
}

// RecordHookConsumption records an event consumed by a hook.
func (m *Metrics) RecordHookConsumption() {
	if m.enabled.Load() {
		m.hookConsumed.Add(1)
	}
}

// RecordClickAssigned records a click index computed by the manager.
func (m *Metrics) RecordClickAssigned() {
	if m.enabled.Load() {
		m.clicksAssigned.Add(1)
	}
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	ByKind         map[EventKind]uint64
	Total          uint64
	Dropped        uint64
	HookConsumed   uint64
	ClicksAssigned uint64
	AvgLatency     time.Duration
	PeakLatency    time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		ByKind:         make(map[EventKind]uint64),
		Dropped:        m.dropped.Load(),
		HookConsumed:   m.hookConsumed.Load(),
		ClicksAssigned: m.clicksAssigned.Load(),
		PeakLatency:    time.Duration(m.peakLatency.Load()),
	}
	for k := range m.byKind {
		if n := m.byKind[k].Load(); n > 0 {
			snap.ByKind[EventKind(k)] = n
			snap.Total += n
		}
	}
	if snap.Total > 0 {
		snap.AvgLatency = time.Duration(m.totalNanos.Load() / int64(snap.Total))
	}
	return snap
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	for k := range m.byKind {
		m.byKind[k].Store(0)
	}
	m.dropped.Store(0)
	m.hookConsumed.Store(0)
	m.clicksAssigned.Store(0)
	m.peakLatency.Store(0)
	m.totalNanos.Store(0)
}
