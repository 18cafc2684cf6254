// Package dlx implements Knuth's Algorithm X over a Dancing Links (DLX)
// mesh: an arena-indexed, four-directionally linked sparse incidence matrix
// supporting O(1) cover/uncover and a minimum-remaining-values (MRV)
// branching heuristic.
//
// A Solver is built over a universe of items split into primary items
// (which must be covered exactly once by the final solution) and secondary
// items (covered at most once, and otherwise left alone). Named options —
// each a subset of items — are added with AddOption, and solutions are
// pulled one at a time from Next, which suspends after each solution and
// resumes exactly where it left off on the following call. There is no
// recursion: the search is an explicit five-state machine threaded through
// the mesh, so a branch depth bounded only by the number of options never
// risks blowing a goroutine stack.
//
//	s, err := dlx.New(7)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s.AddOption("A", []int{1, 4, 7}).
//		AddOption("B", []int{1, 4}).
//		AddOption("C", []int{4, 5, 7}).
//		AddOption("D", []int{3, 5, 6}).
//		AddOption("E", []int{2, 3, 6, 7}).
//		AddOption("F", []int{2, 7})
//	for sol, ok := s.Next(); ok; sol, ok = s.Next() {
//		fmt.Println(sol) // [B D F]
//	}
//
// Callers that prefer Go 1.23's range-over-func iterators can use All
// instead of hand-rolling the Next loop:
//
//	for sol := range s.All() {
//		fmt.Println(sol)
//	}
//
// Client adapters — Sudoku, N-queens, polyomino/exact-tiling encoders and
// the like — are not part of this package. They build a Solver, call
// AddOption once per feasible placement (naming each option so the name
// encodes the placement, e.g. "R3C5#7"), optionally force a subset of
// options into the solution with Select, and decode the emitted option
// names back into domain objects. Names are opaque strings to this
// package.
package dlx
