package domain

import "time"

// BookingState срез бронирований относительно текущего момента
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// stateFilters для каждого состояния дополняет фильтр условиями относительно now
var stateFilters = map[BookingState]func(f *BookingsFilter, now time.Time){
	StateAll: func(*BookingsFilter, time.Time) {},
	StateCurrent: func(f *BookingsFilter, now time.Time) {
		f.StartBefore = &now
		f.EndAfter = &now
	},
	StatePast: func(f *BookingsFilter, now time.Time) {
		f.EndBefore = &now
	},
	StateFuture: func(f *BookingsFilter, now time.Time) {
		f.StartAfter = &now
	},
	StateWaiting: func(f *BookingsFilter, _ time.Time) {
		status := StatusWaiting
		f.Status = &status
	},
	StateRejected: func(f *BookingsFilter, _ time.Time) {
		status := StatusRejected
		f.Status = &status
	},
}

// ParseBookingState разбирает значение параметра state
// Неизвестное значение возвращает *UnsupportedStateError
func ParseBookingState(s string) (BookingState, error) {
	state := BookingState(s)
	if _, ok := stateFilters[state]; !ok {
		return "", &UnsupportedStateError{State: s}
	}
	return state, nil
}

// Apply дополняет фильтр условиями состояния
func (s BookingState) Apply(f *BookingsFilter, now time.Time) {
	if apply, ok := stateFilters[s]; ok {
		apply(f, now)
	}
}

// BookingStates все поддерживаемые состояния
func BookingStates() []BookingState {
	return []BookingState{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}
}
