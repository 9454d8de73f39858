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
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// quiescence extends the search along capturing and promoting lines
// only, until the position is quiet, to avoid the horizon effect of
// evaluating a position in the middle of a capture sequence.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	if search.shouldStop() {
		return 0
	}

	if search.Board.IsDraw() {
		return search.draw()
	}

	search.nodes++

	standPat := search.score()
	if standPat >= beta {
		return standPat
	}
	alpha = max(alpha, standPat)

	// captures-only generation never yields a quiet check evasion (a
	// king step to a safe square, or a non-capturing block), so a
	// position with only such moves would otherwise look mated; fall
	// back to full generation whenever in check.
	inCheck := search.Board.CheckN > 0
	moves := search.Board.GenerateMoves(!inCheck)
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}
		return standPat
	}

	orderFunc := eval.OfMove(search.Board, move.Null)
	list := move.ScoreMoves(moves, orderFunc)

	best := standPat

	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		// SEE pruning assumes a quiet position where a losing capture
		// can simply be skipped; an evasion may be the only legal move
		// available, so it must never be pruned.
		if !inCheck && !eval.SEE(search.Board, m, 0) {
			continue
		}

		search.Board.MakeMove(m)
		childEval := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if search.stopped {
			return 0
		}

		if childEval > best {
			best = childEval

			if childEval > alpha {
				alpha = childEval
			}

			if alpha >= beta {
				break
			}
		}
	}

	return best
}
