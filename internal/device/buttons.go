package device

import (
	"sort"
	"sync"
	"time"
)

type buttonWatch struct {
	id        WatchID
	button    Button
	handler   func()
	options   WatchOptions
	lastFired time.Time
}

// Buttons implements Input with software debounce. Press is the rising edge.
type Buttons struct {
	mu      sync.Mutex
	clock   Clock
	nextID  WatchID
	watches map[WatchID]*buttonWatch
}

// NewButtons creates an input multiplexer timed by clock.
func NewButtons(clock Clock) *Buttons {
	return &Buttons{
		clock:   clock,
		watches: make(map[WatchID]*buttonWatch),
	}
}

// Watch registers handler for rising edges of button.
func (buttons *Buttons) Watch(button Button, handler func(), options WatchOptions) WatchID {
	buttons.mu.Lock()
	defer buttons.mu.Unlock()
	buttons.nextID++
	buttons.watches[buttons.nextID] = &buttonWatch{
		id:      buttons.nextID,
		button:  button,
		handler: handler,
		options: options,
	}
	return buttons.nextID
}

// Unwatch removes a watch. Unknown ids are ignored.
func (buttons *Buttons) Unwatch(id WatchID) {
	buttons.mu.Lock()
	delete(buttons.watches, id)
	buttons.mu.Unlock()
}

// Press delivers a rising edge on button to its watches in registration
// order. A watch ignores edges inside its debounce interval, and a
// non-repeating watch is removed after it fires.
func (buttons *Buttons) Press(button Button) {
	now := buttons.clock.Now()

	buttons.mu.Lock()
	var fire []func()
	for _, watch := range buttons.sortedLocked() {
		if watch.button != button {
			continue
		}
		if !watch.lastFired.IsZero() && now.Sub(watch.lastFired) < watch.options.Debounce {
			continue
		}
		watch.lastFired = now
		fire = append(fire, watch.handler)
		if !watch.options.Repeat {
			delete(buttons.watches, watch.id)
		}
	}
	buttons.mu.Unlock()

	for _, handler := range fire {
		handler()
	}
}

// Watching returns the number of active watches on button.
func (buttons *Buttons) Watching(button Button) int {
	buttons.mu.Lock()
	defer buttons.mu.Unlock()
	count := 0
	for _, watch := range buttons.watches {
		if watch.button == button {
			count++
		}
	}
	return count
}

func (buttons *Buttons) sortedLocked() []*buttonWatch {
	watches := make([]*buttonWatch, 0, len(buttons.watches))
	for _, watch := range buttons.watches {
		watches = append(watches, watch)
	}
	sort.Slice(watches, func(i, j int) bool {
		return watches[i].id < watches[j].id
	})
	return watches
}
