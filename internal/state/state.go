// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64, in Input)
	Draw(screen *ebiten.Image)
	Exit()
}

// Overlay — экран рисуется поверх предыдущего (пауза, новый уровень).
type Overlay interface {
	Overlay() bool
}

// Resumer — экран хочет знать, что снова оказался наверху.
type Resumer interface {
	Resume()
}

// Stack — стек экранов. Обновляется только верхний; оверлеи сначала
// рисуют то, что под ними.
type Stack struct {
	states []State
	quit   bool
}

// NewStack создаёт пустой стек
func NewStack() *Stack {
	return &Stack{}
}

// Push кладёт экран наверх и вызывает его Enter.
func (s *Stack) Push(st State) {
	s.states = append(s.states, st)
	st.Enter()
}

// Pop снимает верхний экран. Экран под ним получает Resume.
func (s *Stack) Pop() State {
	top := s.pop()
	if top != nil {
		s.resumeTop()
	}
	return top
}

func (s *Stack) pop() State {
	if len(s.states) == 0 {
		return nil
	}
	top := s.states[len(s.states)-1]
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
	top.Exit()
	return top
}

// Replace заменяет верхний экран, не будя тот, что под ним.
func (s *Stack) Replace(st State) {
	s.pop()
	s.Push(st)
}

// PopToRoot снимает всё, кроме нижнего экрана.
func (s *Stack) PopToRoot() {
	if len(s.states) <= 1 {
		return
	}
	for len(s.states) > 1 {
		s.pop()
	}
	s.resumeTop()
}

func (s *Stack) resumeTop() {
	if r, ok := s.Top().(Resumer); ok {
		r.Resume()
	}
}

// Top — верхний экран или nil.
func (s *Stack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

func (s *Stack) Len() int {
	return len(s.states)
}

// Quit просит приложение завершиться.
func (s *Stack) Quit() {
	s.quit = true
}

// Done — стек пуст или запрошен выход.
func (s *Stack) Done() bool {
	return s.quit || len(s.states) == 0
}

// Update обновляет верхний экран
func (s *Stack) Update(deltaTime float64, in Input) {
	if top := s.Top(); top != nil {
		top.Update(deltaTime, in)
	}
}

// Draw рисует верхний экран и все оверлеи под ним до первого непрозрачного.
func (s *Stack) Draw(screen *ebiten.Image) {
	for _, st := range s.visible() {
		st.Draw(screen)
	}
}

func (s *Stack) visible() []State {
	from := len(s.states) - 1
	for from > 0 {
		o, ok := s.states[from].(Overlay)
		if !ok || !o.Overlay() {
			break
		}
		from--
	}
	if from < 0 {
		return nil
	}
	return s.states[from:]
}
