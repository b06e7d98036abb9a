package settings

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// DefaultPriority is used when a hook is added without an explicit priority.
const DefaultPriority = 10

// Hook events dispatched by the admin surface.
const (
	EventAdminMenu = "admin_menu"
	EventAdminInit = "admin_init"
	EventAdminHead = "admin_head"
)

// Handler reacts to an event. Handlers that emit markup write it to w.
type Handler func(ctx context.Context, w io.Writer) error

// Registration is one entry of the hook table.
type Registration struct {
	Event    string
	Priority int
	Handler  Handler

	seq int
}

// Hooks is an ordered (event, priority, handler) table.
type Hooks struct {
	mu      sync.Mutex
	entries map[string][]Registration
	seq     int
}

// NewHooks creates an empty hook table.
func NewHooks() *Hooks {
	return &Hooks{entries: make(map[string][]Registration)}
}

// Add registers handler for event.
func (h *Hooks) Add(event string, priority int, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.entries[event] = append(h.entries[event], Registration{
		Event:    event,
		Priority: priority,
		Handler:  handler,
		seq:      h.seq,
	})
}

// Registrations returns the handlers of event in dispatch order.
func (h *Hooks) Registrations(event string) []Registration {
	h.mu.Lock()
	regs := make([]Registration, len(h.entries[event]))
	copy(regs, h.entries[event])
	h.mu.Unlock()

	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].Priority != regs[j].Priority {
			return regs[i].Priority < regs[j].Priority
		}
		return regs[i].seq < regs[j].seq
	})
	return regs
}

// Run dispatches event by ascending priority, then registration order.
// The first handler error stops dispatch.
func (h *Hooks) Run(ctx context.Context, event string, w io.Writer) error {
	if w == nil {
		w = io.Discard
	}
	for _, reg := range h.Registrations(event) {
		if err := reg.Handler(ctx, w); err != nil {
			return fmt.Errorf("hook %s (priority %d): %w", event, reg.Priority, err)
		}
	}
	return nil
}
