package engine

// Event is a multi-cast event with one argument. Listeners run synchronously
// in subscription order.
type Event[T any] struct {
	listeners []func(T)
}

func (e *Event[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Event[T]) removeAllListeners() {
	e.listeners = nil
}

func (e *Event[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *Event[T]) listenerCount() int {
	return len(e.listeners)
}

// ChangeKind says what happened to a registry object.
type ChangeKind int

const (
	ObjectSpawned ChangeKind = iota
	ObjectRemoved
	ObjectMoved
	ObjectRotated
)

var changeKindNames = [...]string{"spawned", "removed", "moved", "rotated"}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeKindNames) {
		return "unknown"
	}
	return changeKindNames[k]
}

// Change is the argument of Registry.Changed.
type Change struct {
	Kind   ChangeKind
	Object *MapObject
}
