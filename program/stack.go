package program

// Stack of open bracket offsets.
type Stack struct {
	Data []int
}

func (s *Stack) Push(offset int) {
	s.Data = append(s.Data, offset)
}

func (s *Stack) Pop() (offset int, ok bool) {
	offset, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (offset int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
