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

package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
)

// boardLabel styles the "Fen:"/"Key:" lines the board's String prints
// after its ascii art, so they stand out from the grid above them.
var boardLabel = lipgloss.NewStyle().Bold(true)

// Custom command d
//
// This command prints out the current position using ascii art, along with
// it's fen string, and zobrist key.
func NewD(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			// print the current board with ascii art
			interaction.Reply(styleBoard(engine.Search.Board.String()))
			return nil
		},
	}
}

// styleBoard bolds the "Fen:" and "Key:" labels trailing the board's
// ascii art, leaving the grid itself untouched.
func styleBoard(board string) string {
	for _, label := range []string{"Fen:", "Key:"} {
		board = strings.Replace(board, label, boardLabel.Render(label), 1)
	}
	return board
}
