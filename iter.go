package dlx

import "iter"

// All adapts Next into a Go 1.23 range-over-func iterator, so callers can
// write "for sol := range s.All() { ... }" instead of a manual Next loop.
// It adds no capability Next lacks and holds no state of its own beyond
// the loop closure; grounded on kwshi-dancinglinks's push-style
// GenerateSolutions(yield func([]Step) bool) bool, translated to the
// standard iter.Seq shape.
func (s *Solver) All() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for {
			sol, ok := s.Next()
			if !ok {
				return
			}
			if !yield(sol) {
				return
			}
		}
	}
}
