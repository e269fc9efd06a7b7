// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type   EventType
	Source any // виджет, который отправил событие
	Data   any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription — ключ подписки, по нему идёт отписка
type Subscription struct {
	Type EventType
	id   uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher — синхронный диспетчер событий; рассылка идёт в потоке Update
type Dispatcher struct {
	listeners map[EventType][]entry
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], entry{id: d.nextID, listener: listener})
	return Subscription{Type: eventType, id: d.nextID}
}

// Unsubscribe — отписка; повторный вызов ничего не делает
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	entries := d.listeners[sub.Type]
	for i, e := range entries {
		if e.id == sub.id {
			d.listeners[sub.Type] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, e := range d.listeners[event.Type] {
		e.listener.OnEvent(event)
	}
}
