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
	"fmt"
	"time"

	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
)

// iterativeDeepening is the main search loop. It calls negamax once
// per depth from 1 up to the depth limit, stopping early if the clock
// or node limit fires. Earlier iterations populate the transposition
// table with scores and pv moves, which makes a deeper iterative
// search faster than searching that depth directly.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	start := time.Now()

	for search.depth = 1; search.depth <= search.limits.Depth; search.depth++ {
		// the new pv is not written into pv directly, since a stopped
		// search's line is likely incomplete and should not overwrite
		// the previous, fully-searched iteration's line
		childPV, childScore := search.aspirationWindow(search.depth, score)

		if search.stopped {
			break
		}

		score = childScore
		pv = childPV

		searchTime := time.Since(start)
		fmt.Printf(
			"info depth %d score %s nodes %d nps %.f time %d pv %s\n",
			search.depth, score, search.nodes,
			float64(search.nodes)/util.Max(0.001, searchTime.Seconds()),
			searchTime.Milliseconds(), pv,
		)

		if score > eval.WinInMaxPly || score < eval.LoseInMaxPly {
			// a forced mate has been found; deepening further cannot
			// improve on a proven mate
			break
		}
	}

	return pv, score
}
