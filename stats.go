package dlx

// SearchStats collects runtime counters for a search, optionally attached
// to a Solver via WithStats. Grounded on taocp.ExactCoverStats, whose
// field set is reconstructed here from its call sites in
// dancing_links_xcc.go (its own definition was not present in the
// retrieved source): stats.Solutions, stats.Nodes, stats.MaxLevel,
// stats.Levels, stats.Debug and stats.Progress all appear there.
//
// When Debug is set, Next logs the level and partial solution each time it
// enters ChooseOrYield, with the standard library log package, the same
// way taocp.XCC gates its dump()/log.Printf calls behind stats.Debug. No
// other stage logs.
type SearchStats struct {
	// Solutions counts how many times a solution has been yielded.
	Solutions int

	// Nodes counts how many times the search entered ChooseOrYield
	// (roughly, how many search-tree nodes were visited).
	Nodes int

	// MaxLevel records the deepest level reached so far.
	MaxLevel int

	// Levels[l] counts how many times level l was entered. Grown lazily
	// as deeper levels are reached.
	Levels []int

	// Debug enables verbose per-stage logging via the standard log
	// package.
	Debug bool

	// Progress, Delta and Theta mirror taocp.ExactCoverStats's
	// progress-throttling fields. Nothing in this package reads them;
	// setting them produces no progress logging.
	Progress bool
	Delta    int
	Theta    int
}

func (stats *SearchStats) enterLevel(level int) {
	if stats == nil {
		return
	}
	stats.Nodes++
	if level > stats.MaxLevel {
		stats.MaxLevel = level
	}
	for len(stats.Levels) <= level {
		stats.Levels = append(stats.Levels, 0)
	}
	stats.Levels[level]++
}
