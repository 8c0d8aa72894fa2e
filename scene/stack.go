package scene

import "github.com/gogpu/geom"

// Stack is a transform state stack for immediate-mode traversal: push the
// current transform before descending into a subtree, concatenate the
// subtree's transforms, pop on the way out.
type Stack struct {
	current geom.Mat3[float64]
	saved   []geom.Mat3[float64]
}

// NewStack returns a stack whose current transform is the identity.
func NewStack() *Stack {
	return &Stack{
		current: geom.Mat3Identity[float64](),
		saved:   make([]geom.Mat3[float64], 0, 8),
	}
}

// Current returns the current combined transform.
func (s *Stack) Current() geom.Mat3[float64] { return s.current }

// Push saves the current transform.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop restores the most recently pushed transform. Popping an empty stack
// resets the current transform to the identity.
func (s *Stack) Pop() {
	if len(s.saved) == 0 {
		s.current = geom.Mat3Identity[float64]()
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Concat multiplies the current transform by m: the new transform applies
// m first, then everything already on the stack.
func (s *Stack) Concat(m geom.Mat3[float64]) {
	s.current = s.current.Mul(m)
}

// Translate concatenates a translation.
func (s *Stack) Translate(x, y float64) {
	s.Concat(geom.Translation(geom.V2(x, y)))
}

// Scale concatenates a scaling.
func (s *Stack) Scale(x, y float64) {
	s.Concat(geom.Scaling(geom.V2(x, y)))
}

// Rotate concatenates a counter-clockwise rotation in radians.
func (s *Stack) Rotate(angle float64) {
	s.Concat(geom.Rotation(angle))
}

// Reset clears the stack and restores the identity transform, keeping the
// allocated capacity for reuse.
func (s *Stack) Reset() {
	s.current = geom.Mat3Identity[float64]()
	s.saved = s.saved[:0]
}
