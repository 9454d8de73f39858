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
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// storeKiller records m as a killer move at plys: a quiet move that
// caused a beta cutoff, and so is worth trying early in sibling nodes
// at the same ply. The most recent killer is kept in slot 0.
func (search *Context) storeKiller(plys int, killer move.Move) {
	if search.killers[plys][0] == killer {
		return
	}
	search.killers[plys][1] = search.killers[plys][0]
	search.killers[plys][0] = killer
}

// historyOf returns the accumulated history score of a quiet move,
// used to order it relative to other quiets tried at a sibling node.
func (search *Context) historyOf(m move.Move) eval.Eval {
	return search.history[search.Board.SideToMove][m.From()][m.To()]
}

// updateHistory adjusts the history score of a quiet move that caused a
// beta cutoff towards bonus, scaling the step down as the entry nears
// the bound so scores stay within ±32768. Only the cutoff move's entry
// changes; other quiet moves tried at the same node are left as they are.
// https://www.chessprogramming.org/History_Heuristic
func (search *Context) updateHistory(best move.Move, bonus eval.Eval) {
	entry := &search.history[search.Board.SideToMove][best.From()][best.To()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// depthBonus scales a history update by the depth at which the cutoff
// occurred: cutoffs found deeper in the tree are more reliable signal.
func (search *Context) depthBonus(depth int) eval.Eval {
	return eval.Eval(util.Min(2000, depth*155))
}
