package dlx

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the recoverable, caller-visible surface of
// Solver. Follow the one-var-per-failure-mode convention the pack's own
// errors.go files use (e.g. lvlath's gridgraph.ErrEmptyGrid,
// dijkstra.ErrEmptySource): test against these with errors.Is, never by
// comparing error strings.
var (
	// ErrInvalidConfig is returned by New/NewOptional when there are no
	// items at all to cover (primary + secondary count is zero).
	ErrInvalidConfig = errors.New("dlx: solver requires at least one item")

	// ErrInvalidKind is returned by Cover/Uncover when the index given is
	// not a live item (out of [1, primaryCount+secondaryCount] range, or
	// the header itself).
	ErrInvalidKind = errors.New("dlx: index does not name an item")

	// ErrUnknownOption is returned by Select when no option was added
	// under the given name.
	ErrUnknownOption = errors.New("dlx: no option with that name")
)

// MeshCorruptionError reports that the link mesh violated an internal
// invariant the search state machine relies on — concretely, that a
// row-walk (hide/unhide, or the option-row scan in the search machine)
// stepped onto an item or the header instead of a spacer or option node.
// This can only happen if the mesh was mutated outside the Cover/Uncover/
// AddOption/Select surface, or by a bug in this package; it is not part of
// the recoverable error contract (spec.md §7: "fatal... halt the solver
// with a diagnostic"), so it is raised with panic rather than returned.
type MeshCorruptionError struct {
	Op    string // the operation that detected the corruption (hide, unhide, tryOption, tryNext)
	Index int    // the node index where the row walk went off the rails
}

func (e *MeshCorruptionError) Error() string {
	return fmt.Sprintf("dlx: mesh corruption detected in %s at node %d: row walk reached an item or the header", e.Op, e.Index)
}

func corrupt(op string, index int) {
	panic(&MeshCorruptionError{Op: op, Index: index})
}
