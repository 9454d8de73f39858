// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package search

import (
	"math"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/tt"
)

// ordering bands for move.ScoreMoves: the tt move sorts before
// everything, then captures/promotions by MVV-LVA, then killers, then
// quiets by history score. Each band is kept clear of the others'
// range so a move's band alone determines its relative order.
const (
	captureBand int32 = 1 << 20
	killerBand  int32 = 1 << 19
)

// negamax searches the current position to depth plys, returning an
// evaluation within (alpha, beta) from the side to move's perspective,
// and writes the principal variation from this node into pv.
// https://www.chessprogramming.org/Negamax
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	pv.Clear()

	isRoot := plys == 0
	isPVNode := beta-alpha != 1

	if !isRoot {
		if search.Board.IsDraw() {
			return search.draw()
		}

		// mate distance pruning: a shorter path to mate can never be
		// beaten by one found deeper, so bounds can be tightened early
		alpha = max(alpha, eval.MatedIn(plys))
		beta = min(beta, eval.Mate-eval.Eval(plys))
		if alpha >= beta {
			return alpha
		}
	}

	if search.shouldStop() {
		return 0
	}

	if depth <= 0 {
		return search.quiescence(plys, alpha, beta)
	}

	search.nodes++

	originalAlpha := alpha

	var ttMove move.Move
	entry, found := search.tt.Probe(search.Board.Hash)
	if found {
		ttMove = entry.Move

		if !isPVNode && int(entry.Depth) >= depth {
			value := entry.Value.Eval(plys)
			switch entry.Type {
			case tt.ExactEntry:
				search.ttHits++
				return value
			case tt.LowerBound:
				alpha = max(alpha, value)
			case tt.UpperBound:
				beta = min(beta, value)
			}

			if alpha >= beta {
				search.ttHits++
				return value
			}
		}
	}

	moves := search.Board.GenerateMoves(false)
	if len(moves) == 0 {
		if search.Board.CheckN > 0 {
			return eval.MatedIn(plys)
		}
		return eval.Draw
	}

	orderFunc := eval.OfMove(search.Board, ttMove)
	list := move.ScoreMoves(moves, func(m move.Move) int32 {
		switch {
		case m == ttMove:
			return math.MaxInt32

		case m.IsQuiet():
			switch m {
			case search.killers[plys][0]:
				return killerBand + 1
			case search.killers[plys][1]:
				return killerBand
			default:
				return int32(search.historyOf(m))
			}

		default:
			return captureBand + int32(orderFunc(m))
		}
	})

	var childPV move.Variation

	bestMove := moves[0]
	bestEval := -eval.Inf

	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		search.Board.MakeMove(m)

		var childEval eval.Eval
		switch {
		case i == 0:
			childEval = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
		default:
			// principal variation search: a cheap null-window search
			// first, with a full re-search only if it beats alpha
			childEval = -search.negamax(plys+1, depth-1, -alpha-1, -alpha, &childPV)
			if childEval > alpha && childEval < beta {
				childEval = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		search.Board.UnmakeMove()

		if search.stopped {
			return 0
		}

		if childEval > bestEval {
			bestEval = childEval
			bestMove = m

			if childEval > alpha {
				alpha = childEval
				pv.Update(m, childPV)
			}

			if alpha >= beta {
				if m.IsQuiet() {
					search.storeKiller(plys, m)
					search.updateHistory(m, search.depthBonus(depth))
				}
				break
			}
		}
	}

	entryType := tt.ExactEntry
	switch {
	case bestEval <= originalAlpha:
		entryType = tt.UpperBound
	case bestEval >= beta:
		entryType = tt.LowerBound
	}

	search.tt.Store(tt.Entry{
		Hash:  search.Board.Hash,
		Move:  bestMove,
		Value: tt.EvalFrom(bestEval, plys),
		Type:  entryType,
		Depth: uint8(depth),
	})

	return bestEval
}
