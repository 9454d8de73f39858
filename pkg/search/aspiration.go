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

// aspirationWindow searches depth with alpha-beta bounds narrowed
// around prevScore, the previous iteration's result. A narrower window
// yields more beta cutoffs and a faster search, at the cost of a
// re-search whenever the true score falls outside it.
func (search *Context) aspirationWindow(depth int, prevScore eval.Eval) (move.Variation, eval.Eval) {
	alpha := -eval.Inf
	beta := eval.Inf

	initialDepth := depth

	var windowSize eval.Eval = 50

	if depth >= 5 {
		alpha = prevScore - windowSize
		beta = prevScore + windowSize
	}

	for {
		if search.shouldStop() {
			return move.Variation{}, 0
		}

		var pv move.Variation
		result := search.negamax(0, depth, alpha, beta, &pv)

		switch {
		case result <= alpha:
			// failed low: widen downward and reset the reduced depth
			beta = (alpha + beta) / 2
			alpha = util.Max(alpha-windowSize, -eval.Inf)
			depth = initialDepth

		case result >= beta:
			// failed high: widen upward; keep the reduced depth unless
			// we're chasing a mate score, where depth matters more
			beta = util.Min(beta+windowSize, eval.Inf)
			if util.Abs(result) <= eval.Inf/2 {
				depth--
			}

		default:
			return pv, result
		}

		windowSize += windowSize / 2
	}
}
