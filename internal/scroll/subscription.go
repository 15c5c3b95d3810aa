package scroll

// Subscription is the handle returned by Surface.Subscribe.
type Subscription struct {
	surface *Surface
	id      int
}

// Detach removes the listener. Detaching a nil, never-attached or already
// detached subscription does nothing.
func (sub *Subscription) Detach() {
	if sub == nil || sub.surface == nil {
		return
	}
	sub.surface.remove(sub.id)
	sub.surface = nil
}

// Attached reports whether the subscription still receives events.
func (sub *Subscription) Attached() bool {
	return sub != nil && sub.surface != nil
}
