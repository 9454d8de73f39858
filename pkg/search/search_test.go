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

package search_test

import (
	"math"
	"strings"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/clock"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
)

func bestMoveAt(t *testing.T, fen string, depth int) string {
	t.Helper()

	p, err := board.NewPosition(strings.Fields(fen))
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}

	ctx := search.NewContext(p, eval.Material)
	pv, _, err := ctx.Search(search.Limits{
		Depth: depth,
		Nodes: math.MaxInt,
		Clock: clock.Infinite{},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	return pv.Move(0).String()
}

func TestSearchEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		best  string
	}{
		{"capture the queen", "8/1kQ5/8/8/8/8/8/7K b - - 0 1", 6, "b7c7"},
		{"mate in one", "8/8/8/8/8/6q1/7r/K6k b - - 6 4", 6, "g3e1"},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/K2R4 w - - 0 1", 6, "d1d8"},
		{"mating capture", "1Q3q1k/p5pp/8/2p2P2/P1B2P1P/6K1/R7/8 w - - 4 41", 7, "b8f8"},
		{"only good move", "1r6/8/8/8/8/8/2k5/K7 w - - 0 1", 3, "a1a2"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := bestMoveAt(t, test.fen, test.depth); got != test.best {
				t.Errorf("best move = %s, want %s", got, test.best)
			}
		})
	}
}

// TestForcedMateResponse checks scenario 5's second half: after White
// plays its only legal move, Black's reply must deliver mate.
func TestForcedMateResponse(t *testing.T) {
	p, err := board.NewPosition(strings.Fields("1r6/8/8/8/8/8/2k5/K7 w - - 0 1"))
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	m, ok := p.NewMoveFromUCI("a1a2")
	if !ok {
		t.Fatal("a1a2 not legal in starting position")
	}
	p.MakeMove(m)

	ctx := search.NewContext(p, eval.Material)
	pv, _, err := ctx.Search(search.Limits{
		Depth: 3,
		Nodes: math.MaxInt,
		Clock: clock.Infinite{},
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if got := pv.Move(0).String(); got != "b8a8" {
		t.Errorf("black's reply = %s, want b8a8", got)
	}
}
