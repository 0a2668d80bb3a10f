// internal/event/event.go
package event

// EventType — имя события
type EventType string

// Event — событие с произвольными данными. Формат Data для каждого типа
// описан в types.go, шина его не проверяет.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// funcListener оборачивает замыкание. Указатель сравним, поэтому такую
// подписку можно снять через Unsubscribe.
type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(e Event) { l.fn(e) }

// HandlerFunc превращает функцию в Listener с идентичностью по указателю.
func HandlerFunc(fn func(Event)) Listener {
	return &funcListener{fn: fn}
}

// Dispatcher — синхронная шина событий. Один экземпляр на игру,
// живёт от Start до Cleanup.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие. Один и тот же слушатель можно подписать
// несколько раз, он будет вызван столько же раз.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — снимает первую подписку данного слушателя
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			// Новый слайс: снимок, который сейчас обходит Dispatch, не портится.
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			next = append(next, listeners[i+1:]...)
			if len(next) == 0 {
				delete(d.listeners, eventType)
			} else {
				d.listeners[eventType] = next
			}
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки.
// Паника в обработчике не перехватывается и прерывает рассылку.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}

// Publish — сокращение для Dispatch(Event{Type: t, Data: data})
func (d *Dispatcher) Publish(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}

// Clear — удаляет все подписки
func (d *Dispatcher) Clear() {
	d.listeners = make(map[EventType][]Listener)
}

// ListenerCount возвращает число подписок на событие.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
