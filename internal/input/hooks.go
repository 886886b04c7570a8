package input

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hook observes player events around Manager.Process.
type Hook interface {
	// PreEvent is called before an event is processed.
	// Return true to consume the event (stop further processing).
	PreEvent(ev PlayerEvent) bool

	// PostEvent is called after processing. out is nil when the event
	// produced no input event.
	PostEvent(ev PlayerEvent, out InputEvent)
}

// HookPriority defines the execution order for hooks.
// Lower values execute first.
type HookPriority int

const (
	// HookPriorityHigh runs early in the hook chain.
	HookPriorityHigh HookPriority = -100
	// HookPriorityNormal is the default priority.
	HookPriorityNormal HookPriority = 0
	// HookPriorityLow runs late in the hook chain.
	HookPriorityLow HookPriority = 100
)

// HookID uniquely identifies a registered hook.
type HookID uint64

type hookRegistration struct {
	id       HookID
	name     string
	priority HookPriority
	hook     Hook
}

// HookManager keeps hooks sorted by priority. Registration order breaks
// ties.
type HookManager struct {
	mu     sync.RWMutex
	hooks  []hookRegistration
	nextID HookID
}

// NewHookManager creates a new hook manager.
func NewHookManager() *HookManager {
	return &HookManager{}
}

// Register adds a hook with default priority.
func (m *HookManager) Register(hook Hook) HookID {
	return m.RegisterWithOptions(hook, "", HookPriorityNormal)
}

// RegisterWithOptions adds a named hook with a priority. A non-empty name
// replaces any hook previously registered under it.
func (m *HookManager) RegisterWithOptions(hook Hook, name string, priority HookPriority) HookID {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name != "" {
		m.removeLocked(func(r hookRegistration) bool { return r.name == name })
	}

	m.nextID++
	m.hooks = append(m.hooks, hookRegistration{
		id:       m.nextID,
		name:     name,
		priority: priority,
		hook:     hook,
	})
	sort.SliceStable(m.hooks, func(i, j int) bool {
		return m.hooks[i].priority < m.hooks[j].priority
	})
	return m.nextID
}

// Unregister removes a hook by ID.
func (m *HookManager) Unregister(id HookID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(func(r hookRegistration) bool { return r.id == id })
}

// UnregisterByName removes a hook by name.
func (m *HookManager) UnregisterByName(name string) bool {
	if name == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(func(r hookRegistration) bool { return r.name == name })
}

func (m *HookManager) removeLocked(match func(hookRegistration) bool) bool {
	for i := range m.hooks {
		if match(m.hooks[i]) {
			m.hooks = append(m.hooks[:i], m.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered hooks.
func (m *HookManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hooks)
}

func (m *HookManager) snapshot() []Hook {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hooks := make([]Hook, len(m.hooks))
	for i := range m.hooks {
		hooks[i] = m.hooks[i].hook
	}
	return hooks
}

// RunPreEvent runs PreEvent hooks in priority order, stopping at the first
// that consumes the event. Hooks run outside the lock so they may register
// or remove hooks.
func (m *HookManager) RunPreEvent(ev PlayerEvent) bool {
	for _, hook := range m.snapshot() {
		if hook.PreEvent(ev) {
			return true
		}
	}
	return false
}

// RunPostEvent runs every PostEvent hook in priority order.
func (m *HookManager) RunPostEvent(ev PlayerEvent, out InputEvent) {
	for _, hook := range m.snapshot() {
		hook.PostEvent(ev, out)
	}
}

// FuncHook wraps functions into a Hook. Nil functions are no-ops.
type FuncHook struct {
	Pre  func(PlayerEvent) bool
	Post func(PlayerEvent, InputEvent)
}

// PreEvent calls Pre if set.
func (h FuncHook) PreEvent(ev PlayerEvent) bool {
	if h.Pre != nil {
		return h.Pre(ev)
	}
	return false
}

// PostEvent calls Post if set.
func (h FuncHook) PostEvent(ev PlayerEvent, out InputEvent) {
	if h.Post != nil {
		h.Post(ev, out)
	}
}

// LoggingHook logs every event at debug level.
type LoggingHook struct {
	Log logrus.FieldLogger
}

// PreEvent logs the player event.
func (h LoggingHook) PreEvent(ev PlayerEvent) bool {
	h.Log.WithField("kind", ev.Kind()).Debug(Describe(ev))
	return false
}

// PostEvent logs the resulting input event.
func (h LoggingHook) PostEvent(ev PlayerEvent, out InputEvent) {
	if out == nil {
		h.Log.WithField("kind", ev.Kind()).Debug("dropped")
		return
	}
	h.Log.WithField("kind", ev.Kind()).Debug("-> " + DescribeInput(out))
}
