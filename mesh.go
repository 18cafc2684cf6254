package dlx

import (
	"fmt"
	"strings"
)

// nodeKind classifies a node index by where it falls in the arena and,
// for indices past the last item, by whether it carries a nonzero top.
// Header and items occupy indices [0, n]; everything past that is either
// a spacer (top == 0) or an option node (top == owning item index).
type nodeKind int

const (
	kindHeaderOrItem nodeKind = iota
	kindSpacer
	kindOption
)

// Solver is the Dancing Links exact-cover engine: an arena of nodes
// encoded as parallel index slices (up, down, left, right, top), plus the
// auxiliary state the resumable search state machine needs (partial,
// level, branchItem, stage, justYielded). See the package doc for the
// public contract and mesh.go/cover.go/search.go for the three layers
// described in SPEC_FULL.md: link mesh, cover/uncover primitives, and the
// search state machine.
type Solver struct {
	up, down, left, right, top []int
	length                     []int // length[i] valid for i in [1, n]; length[0] unused

	n               int // total items = primaryCount + secondaryCount
	primaryBoundary int // exclusive upper bound of primary item indices (= primaryCount + 1)

	optionNames    []string
	spacerToOption map[int]int

	partial     []int
	level       int
	branchItem  int
	stage       stage
	justYielded bool

	stats *SearchStats
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithStats attaches a *SearchStats to the solver, to be updated as the
// search proceeds. Passing nil is equivalent to omitting the option.
func WithStats(stats *SearchStats) Option {
	return func(s *Solver) {
		s.stats = stats
	}
}

// Stats returns the *SearchStats attached via WithStats, or nil if none was
// attached.
func (s *Solver) Stats() *SearchStats {
	return s.stats
}

// New builds a solver over primaryCount primary items and no secondary
// items. Equivalent to NewOptional(primaryCount, 0).
func New(primaryCount int, opts ...Option) (*Solver, error) {
	return NewOptional(primaryCount, 0, opts...)
}

// NewOptional builds a solver over primaryCount primary items (indices
// [1, primaryCount], must be covered exactly once) followed by
// secondaryCount secondary items (indices [primaryCount+1,
// primaryCount+secondaryCount], covered at most once).
func NewOptional(primaryCount, secondaryCount int, opts ...Option) (*Solver, error) {
	if primaryCount < 0 || secondaryCount < 0 {
		return nil, ErrInvalidConfig
	}
	n := primaryCount + secondaryCount
	if n == 0 {
		return nil, ErrInvalidConfig
	}

	size := n + 2 // header (0) .. items (1..n) .. root spacer (n+1)
	s := &Solver{
		up:              make([]int, size),
		down:            make([]int, size),
		left:            make([]int, size),
		right:           make([]int, size),
		top:             make([]int, size),
		length:          make([]int, n+1),
		n:               n,
		primaryBoundary: primaryCount + 1,
		// partial holds one entry per search-tree level; a level is entered
		// only by covering a primary item, so depth can never exceed
		// primaryCount regardless of how many options end up added (even
		// zero). Sizing it here, rather than growing it alongside
		// AddOption, means branch() has room to write into even when no
		// option has ever been added.
		partial:        make([]int, primaryCount),
		spacerToOption: make(map[int]int),
		stage:          stageChooseOrYield,
	}

	// Header: right chains to the first item (or itself, if n == 0, which
	// NewOptional already rejects); left wraps to the last item.
	s.right[0] = 1
	s.left[0] = n

	for i := 1; i <= n; i++ {
		s.up[i] = i
		s.down[i] = i
		s.left[i] = i - 1
		if i < n {
			s.right[i] = i + 1
		} else {
			s.right[i] = 0
		}
	}

	rootSpacer := n + 1
	s.up[rootSpacer] = rootSpacer
	s.down[rootSpacer] = rootSpacer

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// kind reports whether idx names the header/an item, a spacer, or an
// option node.
func (s *Solver) kind(idx int) nodeKind {
	if idx <= s.n {
		return kindHeaderOrItem
	}
	if s.top[idx] == 0 {
		return kindSpacer
	}
	return kindOption
}

// rootSpacer is the index of the sentinel spacer created at construction.
func (s *Solver) rootSpacer() int {
	return s.n + 1
}

// AddOption appends a new option named name, covering the given items (in
// the order given). Item ids must lie in [1, n] and must not repeat
// within a single option; AddOption panics on either violation rather
// than silently corrupting length counters or hiding a row twice, per
// SPEC_FULL.md §11's resolution of the "duplicate item ids" open
// question. It returns s so calls may be chained, mirroring the
// original add_option(name, items) -> chainable Solver ref contract.
func (s *Solver) AddOption(name string, items []int) *Solver {
	seen := make(map[int]bool, len(items))
	for _, id := range items {
		if id < 1 || id > s.n {
			panic(fmt.Sprintf("dlx: AddOption(%q): item %d out of range [1, %d]", name, id, s.n))
		}
		if seen[id] {
			panic(fmt.Sprintf("dlx: AddOption(%q): item %d repeated within one option", name, id))
		}
		seen[id] = true
	}

	for _, id := range items {
		oldUp := s.up[id]
		newIdx := len(s.up)
		s.up = append(s.up, oldUp)
		s.down = append(s.down, id)
		s.left = append(s.left, 0)
		s.right = append(s.right, 0)
		s.top = append(s.top, id)

		s.down[oldUp] = newIdx
		s.up[id] = newIdx
		s.length[id]++
	}

	root := s.rootSpacer()
	priorSpacer := s.up[root]
	spacerIdx := len(s.up)
	s.up = append(s.up, priorSpacer)
	s.down = append(s.down, root)
	s.left = append(s.left, 0)
	s.right = append(s.right, 0)
	s.top = append(s.top, 0)

	s.down[priorSpacer] = spacerIdx
	s.up[root] = spacerIdx

	s.optionNames = append(s.optionNames, name)
	s.spacerToOption[spacerIdx] = len(s.optionNames) - 1

	return s
}

// Clone returns a deep copy of s, sharing no mutable state with it. Per
// spec.md §5, a Solver may be cloned before iteration starts to
// branch-explore independently; once Next has been called the two
// solvers' internal states (partial, level, stage, justYielded, and the
// mesh itself) naturally diverge from whatever shared starting point they
// had.
func (s *Solver) Clone() *Solver {
	clone := &Solver{
		up:              append([]int(nil), s.up...),
		down:            append([]int(nil), s.down...),
		left:            append([]int(nil), s.left...),
		right:           append([]int(nil), s.right...),
		top:             append([]int(nil), s.top...),
		length:          append([]int(nil), s.length...),
		n:               s.n,
		primaryBoundary: s.primaryBoundary,
		optionNames:     append([]string(nil), s.optionNames...),
		spacerToOption:  make(map[int]int, len(s.spacerToOption)),
		partial:         append([]int(nil), s.partial...),
		level:           s.level,
		branchItem:      s.branchItem,
		stage:           s.stage,
		justYielded:     s.justYielded,
		stats:           s.stats,
	}
	for k, v := range s.spacerToOption {
		clone.spacerToOption[k] = v
	}
	return clone
}

// String renders the current state of the mesh for debugging: one line
// listing the live items with their lengths (secondary items marked "*"),
// then one line per added option giving the items it touches. Grounded on taocp.XCC's internal dump()
// closure and the original Rust source's impl fmt::Display for Solver.
func (s *Solver) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "items:")
	for i := s.right[0]; i != 0; i = s.right[i] {
		marker := ""
		if i >= s.primaryBoundary {
			marker = "*"
		}
		fmt.Fprintf(&b, " %d%s(len=%d)", i, marker, s.length[i])
	}
	b.WriteString("\n")

	// Option nodes occupy contiguous index ranges bounded by spacers, in
	// insertion order; the spacer down-chain is fixed at AddOption time
	// and is never rewired by cover/hide, so it's safe to walk mid-search.
	spacer := s.rootSpacer()
	for _, name := range s.optionNames {
		start := spacer + 1
		spacer = s.down[spacer]
		b.WriteString(name)
		b.WriteString(":")
		for p := start; p < spacer; p++ {
			fmt.Fprintf(&b, " %d", s.top[p])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// MeshSnapshot is a point-in-time, JSON-encodable capture of the arena's
// link fields, for offline inspection or diffing (e.g. dumping exact mesh
// state from a failing test). It carries link fields only, not the search
// machine's partial/level/stage, so it is deliberately not sufficient to
// reconstruct a resumable Solver — this does not reintroduce "persistence
// of solver state across serialization", which spec.md lists as an
// explicit Non-goal.
type MeshSnapshot struct {
	Up              []int    `json:"up,omitempty"`
	Down            []int    `json:"down,omitempty"`
	Left            []int    `json:"left,omitempty"`
	Right           []int    `json:"right,omitempty"`
	Top             []int    `json:"top,omitempty"`
	Length          []int    `json:"length,omitempty"`
	PrimaryBoundary int      `json:"primary_boundary"`
	OptionNames     []string `json:"option_names,omitempty"`
}

// Snapshot captures the current arena state.
func (s *Solver) Snapshot() MeshSnapshot {
	return MeshSnapshot{
		Up:              append([]int(nil), s.up...),
		Down:            append([]int(nil), s.down...),
		Left:            append([]int(nil), s.left...),
		Right:           append([]int(nil), s.right...),
		Top:             append([]int(nil), s.top...),
		Length:          append([]int(nil), s.length...),
		PrimaryBoundary: s.primaryBoundary,
		OptionNames:     append([]string(nil), s.optionNames...),
	}
}
