// internal/event/event.go
package event

import "sync"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

type funcListener struct {
	fn func(event Event)
}

func (l *funcListener) OnEvent(event Event) { l.fn(event) }

// Func оборачивает функцию в Listener. Для отписки нужно сохранить
// возвращённое значение.
func Func(fn func(event Event)) Listener {
	return &funcListener{fn: fn}
}

// Dispatcher — диспетчер событий.
// Подписчики вызываются синхронно, вне блокировки: подписчик может сам
// вызвать Dispatch или Subscribe.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			// новый срез, чтобы не трогать копию, которую сейчас обходит Dispatch
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			d.listeners[eventType] = append(next, listeners[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	listeners := d.listeners[event.Type]
	d.mu.RUnlock()
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
