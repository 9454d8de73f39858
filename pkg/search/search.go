// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search implements iterative-deepening negamax search over a
// board.Position: alpha-beta pruning, transposition table cutoffs,
// quiescence search, and principal-variation extraction.
package search

import (
	"errors"

	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/clock"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/tt"
)

// MaxDepth bounds how many plys iterative deepening will search to.
const MaxDepth = 256

// EvalFunc scores a position from the perspective of its side to move.
type EvalFunc func(*board.Position) eval.Eval

// NewContext creates a new search Context over b, using evalFunc to
// score leaf positions and a 16 MB transposition table.
func NewContext(b *board.Position, evalFunc EvalFunc) *Context {
	return &Context{
		Board:    b,
		evalFunc: evalFunc,
		tt:       tt.NewTable(16),
		stopped:  true,
	}
}

// Context holds the state of a single search: the position being
// searched, its transposition table, move-ordering heuristics, and the
// limits governing when the search should stop. A Context may be
// reused across searches of the same game; Board should be swapped out
// between positions, and NewGame called between games.
type Context struct {
	Board    *board.Position
	evalFunc EvalFunc
	tt       *tt.Table

	depth   int
	stopped bool

	nodes  int
	ttHits int

	killers [MaxDepth][2]move.Move
	history [2][64][64]eval.Eval

	limits Limits
}

// Limits bounds how long and how deep a search may run.
type Limits struct {
	Nodes int
	Depth int

	Infinite bool
	Clock    clock.Clock
}

// Search runs iterative deepening on the context's position under the
// given limits, returning the best line found and its evaluation.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	if search.Board.IsInCheck(search.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is currently running.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop requests that any ongoing search return as soon as possible.
func (search *Context) Stop() {
	search.stopped = true
}

// NewGame resets search state that must not leak across games: the
// transposition table and move-ordering heuristics.
func (search *Context) NewGame() {
	search.tt.Clear()
	search.killers = [MaxDepth][2]move.Move{}
	search.history = [2][64][64]eval.Eval{}
}

// UpdateLimits swaps in limits for the currently running search, e.g.
// to exchange an infinite ponder search's limits for real ones once
// ponderhit arrives and starts its clock.
func (search *Context) UpdateLimits(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.Depth == 0 {
		limits.Depth = MaxDepth
	}
	limits.Clock.Start()
	search.limits = limits
}

// ResizeTT rebuilds the transposition table to the given size in
// megabytes, discarding its previous contents.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.Depth == 0 {
		limits.Depth = MaxDepth
	}
	search.limits = limits

	search.nodes = 0
	search.ttHits = 0

	search.stopped = false
	search.limits.Clock.Start()
}

// shouldStop reports whether some search limit has been crossed. Node
// and time limits are checked only periodically to keep the check
// itself cheap.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		return true

	case search.nodes&2047 != 0, search.limits.Infinite:
		return false

	case search.limits.Nodes != 0 && search.nodes > search.limits.Nodes, search.limits.Clock.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}

// score returns the static evaluation of the context's current
// position.
func (search *Context) score() eval.Eval {
	return search.evalFunc(search.Board)
}

// draw returns a small randomized draw score, to avoid search treating
// every repetition-reachable line as exactly equal.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(search.nodes)
}
