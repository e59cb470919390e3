package util

// Stack is a LIFO used by the TUI to remember which view to return to.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top element. It returns the zero value on an empty stack.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}
	last := len(s.items) - 1
	item, s.items = s.items[last], s.items[:last]
	return
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (item T) {
	if len(s.items) > 0 {
		item = s.items[len(s.items)-1]
	}
	return
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Clear() {
	s.items = nil
}
