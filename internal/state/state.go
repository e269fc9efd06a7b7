// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resizer is implemented by states that lay out against the window size.
type Resizer interface {
	Resize(width, height int)
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current       State
	width, height int
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
		if r, ok := sm.current.(Resizer); ok && sm.width > 0 {
			r.Resize(sm.width, sm.height)
		}
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Resize запоминает размер окна и передаёт его текущему состоянию
func (sm *StateMachine) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.current.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
