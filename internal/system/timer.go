// internal/system/timer.go
package system

import "time"

// TimerID — идентификатор отложенного вызова
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// TimerQueue — кооперативные таймеры, которые двигает цикл хоста.
// Колбэки вызываются в потоке, вызвавшем Advance, в порядке срока,
// при равном сроке в порядке регистрации.
type TimerQueue struct {
	now    time.Duration
	nextID TimerID
	timers map[TimerID]*timer
}

// NewTimerQueue создаёт пустую очередь с нулевым временем.
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{
		nextID: 1,
		timers: make(map[TimerID]*timer),
	}
}

// Now — текущее время очереди
func (q *TimerQueue) Now() time.Duration {
	return q.now
}

// Len — количество ожидающих таймеров
func (q *TimerQueue) Len() int {
	return len(q.timers)
}

// After регистрирует fn через d от текущего момента.
func (q *TimerQueue) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	id := q.nextID
	q.nextID++
	q.timers[id] = &timer{id: id, due: q.now + d, fn: fn}
	return id
}

// Cancel снимает таймер. Возвращает false, если он уже сработал.
func (q *TimerQueue) Cancel(id TimerID) bool {
	if _, ok := q.timers[id]; !ok {
		return false
	}
	delete(q.timers, id)
	return true
}

// Advance сдвигает время на dt и вызывает все созревшие таймеры.
// Таймеры, зарегистрированные из колбэков, срабатывают в этом же вызове,
// если их срок уже наступил.
func (q *TimerQueue) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := q.now + dt
	for {
		next := q.earliest(target)
		if next == nil {
			break
		}
		delete(q.timers, next.id)
		q.now = next.due
		next.fn()
	}
	q.now = target
}

func (q *TimerQueue) earliest(limit time.Duration) *timer {
	var best *timer
	for _, t := range q.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
