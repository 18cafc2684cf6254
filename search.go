package dlx

import "log"

// stage labels the five states of the iterative Algorithm X state
// machine (spec.md §4.3), named after their role rather than Knuth's
// X2/X3+X4/X5+X7/X6/X8 labels (which dancing_links_xcc.go and the
// original Rust solver.rs use verbatim as enum variants/goto labels —
// this package keeps the same five transitions but names them for what
// they do, per this codebase's convention of not referencing invariant
// tags or upstream labels in identifiers).
type stage int

const (
	stageChooseOrYield stage = iota
	stageBranch
	stageTryOption
	stageTryNext
	stageLeaveLevel
)

// Next advances the search and returns the next solution as an
// insertion-ordered (by branching order, not sorted) list of option
// names, along with true. It returns (nil, false) once the search is
// exhausted. Next fully captures its own suspension point: stage, level,
// partial, branchItem and justYielded are the only state that changes between one
// solution and the next, and the mesh itself is restored to the
// appropriate point by TryNext's backtracking before the following
// ChooseOrYield is reached.
func (s *Solver) Next() ([]string, bool) {
	for {
		switch s.stage {
		case stageChooseOrYield:
			if sol, yielded := s.chooseOrYield(); yielded {
				return sol, true
			}
		case stageBranch:
			s.branch()
		case stageTryOption:
			s.tryOption()
		case stageTryNext:
			s.tryNext()
		case stageLeaveLevel:
			if !s.leaveLevel() {
				return nil, false
			}
		}
	}
}

// chooseOrYield is X2: check whether every primary item is covered (the
// header's right link is 0, meaning no items remain, or points past the
// primary segment into the secondary one). If so, yield the current
// solution the first time we arrive here, then on the next arrival (after
// the caller resumed us) fall through to backtracking.
func (s *Solver) chooseOrYield() (sol []string, yielded bool) {
	s.stats.enterLevel(s.level)
	if s.stats != nil && s.stats.Debug {
		log.Printf("dlx: ChooseOrYield level=%d partial=%v", s.level, s.partial[:s.level])
	}

	done := s.right[0] == 0 || s.right[0] >= s.primaryBoundary
	if !done {
		s.stage = stageBranch
		return nil, false
	}

	if !s.justYielded {
		s.justYielded = true
		sol = s.emit()
		if s.stats != nil {
			s.stats.Solutions++
		}
		return sol, true
	}

	s.justYielded = false
	s.stage = stageLeaveLevel
	return nil, false
}

// branch is X3+X4: pick the live primary item with the fewest remaining
// options (MRV, ties broken leftmost), cover it, and set up the first
// candidate option to try.
func (s *Solver) branch() {
	idx := s.right[0]
	branchItem := idx
	minLen := s.length[idx]
	for idx = s.right[idx]; idx != 0 && idx < s.primaryBoundary; idx = s.right[idx] {
		if s.length[idx] < minLen {
			minLen = s.length[idx]
			branchItem = idx
		}
	}

	s.branchItem = branchItem
	s.coverItem(branchItem)
	s.partial[s.level] = s.down[branchItem]
	s.stage = stageTryOption
}

// tryOption is X5/X7: if the current candidate option is the item itself
// (the vertical list wrapped all the way around), every candidate has
// been exhausted for this item — uncover it and back out a level.
// Otherwise cover every other item in the candidate's row, descend a
// level, and go choose the next item to branch on.
func (s *Solver) tryOption() {
	x := s.partial[s.level]
	if x == s.branchItem {
		s.uncoverItem(s.branchItem)
		s.stage = stageLeaveLevel
		return
	}

	for p := x + 1; p != x; {
		switch s.kind(p) {
		case kindSpacer:
			p = s.up[p] + 1
		case kindOption:
			s.coverItem(s.top[p])
			p++
		default:
			corrupt("tryOption", p)
		}
	}

	s.level++
	s.stage = stageChooseOrYield
}

// tryNext is X6: undo the commitment made by the previous TryOption (or
// by a resumed yield) by uncovering the other items in the current
// candidate's row in reverse, then advance to the next candidate option
// in the branch item's vertical list.
func (s *Solver) tryNext() {
	x := s.partial[s.level]
	for p := x - 1; p != x; {
		switch s.kind(p) {
		case kindSpacer:
			p = s.down[p] - 1
		case kindOption:
			s.uncoverItem(s.top[p])
			p--
		default:
			corrupt("tryNext", p)
		}
	}

	s.branchItem = s.top[x]
	s.partial[s.level] = s.down[x]
	s.stage = stageTryOption
}

// leaveLevel is X8: if we're already at the top level, the search is
// exhausted. Otherwise back up one level and go try the next candidate
// there.
func (s *Solver) leaveLevel() bool {
	if s.level == 0 {
		return false
	}
	s.level--
	s.stage = stageTryNext
	return true
}

// emit reconstructs the current partial solution's option names by, for
// each chosen option node, walking forward until hitting that option's
// trailing spacer and mapping the spacer index to an option name.
func (s *Solver) emit() []string {
	sol := make([]string, s.level)
	for i := 0; i < s.level; i++ {
		x := s.partial[i]
		for s.kind(x) != kindSpacer {
			x++
		}
		sol[i] = s.optionNames[s.spacerToOption[x]]
	}
	return sol
}

// Select forces the named option into the solution before the first call
// to Next, covering each item the option touches. Preselected options are
// not recorded in partial and so will never appear in a yielded solution
// — callers that preselect options (e.g. Sudoku givens) must remember
// them separately. Calling Select after the first Next yields unspecified
// results, per spec.md §4.5. Returns ErrUnknownOption if name was never
// added via AddOption.
func (s *Solver) Select(name string) error {
	idx := -1
	for i, n := range s.optionNames {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownOption
	}

	spacer := s.rootSpacer()
	for i := 0; i < idx; i++ {
		spacer = s.down[spacer]
	}

	for p := spacer + 1; s.kind(p) == kindOption; p++ {
		s.coverItem(s.top[p])
	}
	return nil
}
