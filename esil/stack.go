package esil

const (
	STACK_LIMIT = 32 // Default stack depth
)

// Stack is a bounded LIFO of 32-bit values.
type Stack struct {
	Data  []int32
	Limit int // Maximum depth; zero selects STACK_LIMIT.
}

// NewStack creates an empty stack holding at most depth values.
func NewStack(depth uint) (s Stack) {
	s.Limit = int(depth)
	s.Data = make([]int32, 0, s.limit())
	return
}

func (s *Stack) limit() int {
	if s.Limit <= 0 {
		return STACK_LIMIT
	}
	return s.Limit
}

// Push appends a value, returning false if the stack is full.
func (s *Stack) Push(value int32) (ok bool) {
	if s.Full() {
		return
	}

	s.Data = append(s.Data, value)
	return true
}

func (s *Stack) Pop() (value int32, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= s.limit()
}

func (s *Stack) Len() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value int32, ok bool) {
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
