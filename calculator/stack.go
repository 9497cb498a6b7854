package calculator

import (
	"github.com/tuneinsight/polycalc/poly"
)

// Stack is a LIFO stack of polynomials.
// The zero value is an empty stack.
type Stack struct {
	polys []poly.Polynomial
}

// Len returns the number of polynomials on the stack.
func (s *Stack) Len() int {
	return len(s.polys)
}

// Push pushes p on top of the stack. The stack takes ownership of p.
func (s *Stack) Push(p poly.Polynomial) {
	s.polys = append(s.polys, p)
}

// Top returns the polynomial on top of the stack, which stays owned by the stack.
// The method panics if the stack is empty.
func (s *Stack) Top() poly.Polynomial {
	return s.Peek(0)
}

// Peek returns the i-th polynomial from the top of the stack, Peek(0) being the top.
// The method panics if i is out of range.
func (s *Stack) Peek(i int) poly.Polynomial {
	if i < 0 || i >= len(s.polys) {
		panic("cannot Peek: index out of range")
	}
	return s.polys[len(s.polys)-1-i]
}

// Pop removes the top of the stack and returns it to the caller, who owns it.
// The method panics if the stack is empty.
func (s *Stack) Pop() (p poly.Polynomial) {
	p = s.Top()
	s.polys[len(s.polys)-1] = poly.Polynomial{}
	s.polys = s.polys[:len(s.polys)-1]
	return
}

// Replace replaces the top of the stack with p and releases the previous top.
// The method panics if the stack is empty.
func (s *Stack) Replace(p poly.Polynomial) {
	top := &s.polys[len(s.polys)-1]
	top.Release()
	*top = p
}

// Clear releases every polynomial on the stack.
func (s *Stack) Clear() {
	for i := range s.polys {
		s.polys[i].Release()
	}
	s.polys = s.polys[:0]
}
