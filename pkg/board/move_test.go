// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package board_test

import (
	"strings"
	"testing"

	"github.com/corvidchess/corvid/pkg/board"
)

// TestMakeUnmakeSequence plays a known legal sequence from Kiwipete and
// checks both the resulting FEN and Zobrist hash against a position
// built directly from the destination FEN, to catch any make/unmake
// state (castling rights, en passant, hash) that drifts out of sync.
func TestMakeUnmakeSequence(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	const want = "r3k2r/2ppqpb1/1n2pnp1/pB1PN3/1p2P3/2N2Q1p/PPPB1PPP/1R2K2R w Kkq - 0 3"

	moves := []string{"a1b1", "a6b5", "e2b5", "a7a5"}

	p, err := board.NewPosition(strings.Fields(kiwipete))
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	for _, s := range moves {
		m, ok := p.NewMoveFromUCI(s)
		if !ok {
			t.Fatalf("move %q not legal in current position (fen %q)", s, p.FEN())
		}
		p.MakeMove(m)
	}

	if got := p.FEN(); got != want {
		t.Errorf("fen after sequence = %q, want %q", got, want)
	}

	expect, err := board.NewPosition(strings.Fields(want))
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	if p.Hash != expect.Hash {
		t.Errorf("hash after sequence = %016X, want %016X", uint64(p.Hash), uint64(expect.Hash))
	}

	// unmaking the whole sequence must restore the starting position
	for range moves {
		p.UnmakeMove()
	}
	if got := p.FEN(); got != kiwipete {
		t.Errorf("fen after full unmake = %q, want %q", got, kiwipete)
	}
}
