// Package scroll provides the vertical scroll surface a windowed list hangs off.
//
// A Surface plays the role of the host's scrollable element: it owns the scroll
// offset, clamps it to the content, and notifies subscribers when it moves.
// Subscriptions are detached explicitly and detaching twice is a no-op.
package scroll

// Event describes a scroll position change.
type Event struct {
	Offset        int
	ViewHeight    int
	ContentHeight int
}

// Listener receives scroll events synchronously.
type Listener func(Event)

// Surface tracks the visible region of vertically scrollable content.
// It is not safe for concurrent use.
type Surface struct {
	offset        int
	contentHeight int
	viewHeight    int

	nextID    int
	listeners map[int]Listener
	// order keeps delivery in subscription order.
	order []int
}

// NewSurface creates a surface with the given view height.
func NewSurface(viewHeight int) *Surface {
	return &Surface{viewHeight: max(viewHeight, 0)}
}

// Offset returns the current offset.
func (s *Surface) Offset() int {
	if s == nil {
		return 0
	}
	return s.offset
}

// ViewHeight returns the height of the visible region.
func (s *Surface) ViewHeight() int {
	if s == nil {
		return 0
	}
	return s.viewHeight
}

// ContentHeight returns the scrollable content height.
func (s *Surface) ContentHeight() int {
	if s == nil {
		return 0
	}
	return s.contentHeight
}

// MaxOffset returns the largest reachable offset.
func (s *Surface) MaxOffset() int {
	if s == nil {
		return 0
	}
	return max(s.contentHeight-s.viewHeight, 0)
}

// SetContentHeight updates the content height and clamps the offset.
func (s *Surface) SetContentHeight(height int) {
	if s == nil {
		return
	}
	s.contentHeight = max(height, 0)
	s.SetOffset(s.offset)
}

// SetViewHeight updates the view height and clamps the offset.
func (s *Surface) SetViewHeight(height int) {
	if s == nil {
		return
	}
	s.viewHeight = max(height, 0)
	s.SetOffset(s.offset)
}

// SetOffset moves to offset, clamped to [0, MaxOffset]. Listeners are
// notified only if the offset changed.
func (s *Surface) SetOffset(offset int) {
	if s == nil {
		return
	}
	next := min(max(offset, 0), s.MaxOffset())
	if next == s.offset {
		return
	}
	s.offset = next
	s.emit()
}

// ScrollBy moves the offset by delta.
func (s *Surface) ScrollBy(delta int) {
	if s == nil {
		return
	}
	s.SetOffset(s.offset + delta)
}

// PageBy moves the offset by whole view heights.
func (s *Surface) PageBy(pages int) {
	if s == nil {
		return
	}
	s.ScrollBy(pages * max(s.viewHeight, 1))
}

// ScrollToStart moves to the top.
func (s *Surface) ScrollToStart() {
	s.SetOffset(0)
}

// ScrollToEnd moves to the bottom.
func (s *Surface) ScrollToEnd() {
	if s == nil {
		return
	}
	s.SetOffset(s.MaxOffset())
}

// AtTop reports whether the surface shows the first row of content.
func (s *Surface) AtTop() bool {
	return s.Offset() == 0
}

// AtBottom reports whether the surface shows the last row of content.
func (s *Surface) AtBottom() bool {
	return s.Offset() >= s.MaxOffset()
}

// Subscribe registers fn for scroll events. A nil surface or listener yields a
// subscription whose Detach does nothing.
func (s *Surface) Subscribe(fn Listener) *Subscription {
	if s == nil || fn == nil {
		return &Subscription{}
	}
	if s.listeners == nil {
		s.listeners = make(map[int]Listener)
	}
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return &Subscription{surface: s, id: id}
}

// Listeners returns the number of attached listeners.
func (s *Surface) Listeners() int {
	if s == nil {
		return 0
	}
	return len(s.listeners)
}

func (s *Surface) event() Event {
	return Event{Offset: s.offset, ViewHeight: s.viewHeight, ContentHeight: s.contentHeight}
}

func (s *Surface) emit() {
	if len(s.listeners) == 0 {
		return
	}
	ev := s.event()
	// Snapshot so listeners may detach themselves during delivery.
	ids := append([]int(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn(ev)
		}
	}
}

func (s *Surface) remove(id int) {
	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
