// Package scenarios is the rule regression list. Each entry names one rule
// behavior and checks it against a hand-built position; the worker runs the
// whole list as its startup self-test, and the package's own test keeps the
// list honest in CI.
package scenarios

import (
	"fmt"

	"github.com/panopteo/hnefatafl-engine/pkg/assess"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
)

type Scenario struct {
	Name  string
	Check func() error
}

// All returns the scenarios in a fixed order.
func All() []Scenario {
	return []Scenario{
		{"custodian-pair-capture", custodianPairCapture},
		{"custodian-corner-capture", custodianCornerCapture},
		{"king-captured-on-throne", kingCapturedOnThrone},
		{"king-captured-beside-throne", kingCapturedBesideThrone},
		{"king-sandwiched-in-open", kingSandwichedInOpen},
		{"shieldwall-capture", shieldwallCapture},
		{"king-escapes-to-corner", kingEscapesToCorner},
		{"king-safe-in-exit-fort", kingSafeInExitFort},
		{"encirclement-ends-game", encirclementEndsGame},
		{"boxed-side-loses", boxedSideLoses},
		{"defender-repetition-loses", defenderRepetitionLoses},
		{"attacker-repetition-plays-on", attackerRepetitionPlaysOn},
		{"random-ai-plays-legal-moves", randomAIPlaysLegalMoves},
	}
}

// Run executes every scenario, converts panics into failures, and reports
// the names of the ones that did not pass.
func Run() (ok bool, failures []string) {
	for _, s := range All() {
		if err := check(s); err != nil {
			failures = append(failures, s.Name)
		}
	}
	return len(failures) == 0, failures
}

func check(s Scenario) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.Check()
}

func position(placements map[tafl.Cell]tafl.Piece) *tafl.Board {
	b := tafl.NewEmptyBoard()
	for c, p := range placements {
		b.Place(c, p)
	}
	return b
}

func wantOutcome(got, want tafl.Outcome) error {
	if got != want {
		return fmt.Errorf("outcome %s, want %s", got, want)
	}
	return nil
}

func custodianPairCapture() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(3, 3): tafl.Defender,
		tafl.NewCell(4, 3): tafl.Attacker,
		tafl.NewCell(2, 3): tafl.Attacker,
		tafl.NewCell(9, 9): tafl.King,
	})
	cs := tafl.CapturesAfter(b, tafl.NewMove(tafl.NewCell(2, 8), tafl.NewCell(2, 3)))
	if !cs.Contains(tafl.NewCell(3, 3)) {
		return fmt.Errorf("sandwiched defender not captured")
	}
	return nil
}

func custodianCornerCapture() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(1, 0): tafl.Defender,
		tafl.NewCell(2, 0): tafl.Attacker,
		tafl.NewCell(9, 9): tafl.King,
	})
	cs := tafl.CapturesAfter(b, tafl.NewMove(tafl.NewCell(2, 4), tafl.NewCell(2, 0)))
	if !cs.Contains(tafl.NewCell(1, 0)) {
		return fmt.Errorf("defender against corner not captured")
	}
	return nil
}

func kingCapturedOnThrone() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(5, 5): tafl.King,
		tafl.NewCell(4, 5): tafl.Attacker,
		tafl.NewCell(6, 5): tafl.Attacker,
		tafl.NewCell(5, 4): tafl.Attacker,
		tafl.NewCell(5, 9): tafl.Attacker,
		tafl.NewCell(0, 8): tafl.Defender,
	})
	g, err := tafl.NewGameFrom(b, tafl.Attackers)
	if err != nil {
		return err
	}
	if err := g.ApplyMove(tafl.NewMove(tafl.NewCell(5, 9), tafl.NewCell(5, 6))); err != nil {
		return err
	}
	return wantOutcome(g.Outcome(), tafl.Outcome{Winner: tafl.Attackers, Reason: tafl.KingCaptured})
}

func kingCapturedBesideThrone() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(5, 4): tafl.King,
		tafl.NewCell(4, 4): tafl.Attacker,
		tafl.NewCell(6, 4): tafl.Attacker,
		tafl.NewCell(5, 0): tafl.Attacker,
		tafl.NewCell(0, 8): tafl.Defender,
	})
	g, err := tafl.NewGameFrom(b, tafl.Attackers)
	if err != nil {
		return err
	}
	if err := g.ApplyMove(tafl.NewMove(tafl.NewCell(5, 0), tafl.NewCell(5, 3))); err != nil {
		return err
	}
	return wantOutcome(g.Outcome(), tafl.Outcome{Winner: tafl.Attackers, Reason: tafl.KingCaptured})
}

func kingSandwichedInOpen() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(7, 7):  tafl.King,
		tafl.NewCell(7, 6):  tafl.Attacker,
		tafl.NewCell(7, 10): tafl.Attacker,
		tafl.NewCell(0, 8):  tafl.Defender,
	})
	g, err := tafl.NewGameFrom(b, tafl.Attackers)
	if err != nil {
		return err
	}
	if err := g.ApplyMove(tafl.NewMove(tafl.NewCell(7, 10), tafl.NewCell(7, 8))); err != nil {
		return err
	}
	return wantOutcome(g.Outcome(), tafl.Outcome{Winner: tafl.Attackers, Reason: tafl.KingCaptured})
}

func shieldwallCapture() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(3, 0): tafl.Defender,
		tafl.NewCell(4, 0): tafl.Defender,
		tafl.NewCell(3, 1): tafl.Attacker,
		tafl.NewCell(4, 1): tafl.Attacker,
		tafl.NewCell(2, 0): tafl.Attacker,
		tafl.NewCell(5, 4): tafl.Attacker,
		tafl.NewCell(9, 9): tafl.King,
	})
	g, err := tafl.NewGameFrom(b, tafl.Attackers)
	if err != nil {
		return err
	}
	if err := g.ApplyMove(tafl.NewMove(tafl.NewCell(5, 4), tafl.NewCell(5, 0))); err != nil {
		return err
	}
	after := g.Board()
	if after.Occupant(tafl.NewCell(3, 0)) != tafl.Empty || after.Occupant(tafl.NewCell(4, 0)) != tafl.Empty {
		return fmt.Errorf("shieldwall run not captured")
	}
	return nil
}

func kingEscapesToCorner() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(0, 2): tafl.King,
		tafl.NewCell(5, 5): tafl.Attacker,
	})
	g, err := tafl.NewGameFrom(b, tafl.Defenders)
	if err != nil {
		return err
	}
	if err := g.ApplyMove(tafl.NewMove(tafl.NewCell(0, 2), tafl.NewCell(0, 0))); err != nil {
		return err
	}
	return wantOutcome(g.Outcome(), tafl.Outcome{Winner: tafl.Defenders, Reason: tafl.KingEscaped})
}

func kingSafeInExitFort() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(5, 0): tafl.King,
		tafl.NewCell(4, 0): tafl.Defender,
		tafl.NewCell(4, 1): tafl.Defender,
		tafl.NewCell(5, 2): tafl.Defender,
		tafl.NewCell(6, 2): tafl.Defender,
		tafl.NewCell(7, 1): tafl.Defender,
		tafl.NewCell(7, 0): tafl.Defender,
		tafl.NewCell(0, 5): tafl.Attacker,
	})
	got := tafl.OutcomeAfter(b, tafl.NewHistory(), tafl.Defenders)
	return wantOutcome(got, tafl.Outcome{Winner: tafl.Defenders, Reason: tafl.KingEscaped})
}

func encirclementEndsGame() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(5, 5): tafl.King,
		tafl.NewCell(5, 6): tafl.Defender,
		tafl.NewCell(5, 4): tafl.Attacker,
		tafl.NewCell(4, 5): tafl.Attacker,
		tafl.NewCell(6, 5): tafl.Attacker,
		tafl.NewCell(4, 6): tafl.Attacker,
		tafl.NewCell(6, 6): tafl.Attacker,
		tafl.NewCell(5, 7): tafl.Attacker,
	})
	got := tafl.OutcomeAfter(b, tafl.NewHistory(), tafl.Attackers)
	return wantOutcome(got, tafl.Outcome{Winner: tafl.Attackers, Reason: tafl.KingCaptured})
}

func boxedSideLoses() error {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(0, 5): tafl.King,
		tafl.NewCell(0, 4): tafl.Attacker,
		tafl.NewCell(0, 6): tafl.Attacker,
		tafl.NewCell(1, 5): tafl.Attacker,
		tafl.NewCell(9, 9): tafl.Attacker,
	})
	got := tafl.OutcomeAfter(b, tafl.NewHistory(), tafl.Attackers)
	return wantOutcome(got, tafl.Outcome{Winner: tafl.Attackers, Reason: tafl.OpponentNoLegalMoves})
}

func repetitionShuffle() (*tafl.Game, []tafl.Move, error) {
	b := position(map[tafl.Cell]tafl.Piece{
		tafl.NewCell(0, 4):  tafl.Attacker,
		tafl.NewCell(10, 4): tafl.Defender,
		tafl.NewCell(5, 5):  tafl.King,
	})
	g, err := tafl.NewGameFrom(b, tafl.Attackers)
	if err != nil {
		return nil, nil, err
	}
	plies := []tafl.Move{
		tafl.NewMove(tafl.NewCell(0, 4), tafl.NewCell(0, 3)),
		tafl.NewMove(tafl.NewCell(10, 4), tafl.NewCell(10, 3)),
		tafl.NewMove(tafl.NewCell(0, 3), tafl.NewCell(0, 4)),
		tafl.NewMove(tafl.NewCell(10, 3), tafl.NewCell(10, 4)),
	}
	return g, plies, nil
}

func defenderRepetitionLoses() error {
	g, cycle, err := repetitionShuffle()
	if err != nil {
		return err
	}
	for round := 0; round < 2; round++ {
		for _, m := range cycle {
			if err := g.ApplyMove(m); err != nil {
				return err
			}
		}
	}
	// third occurrence of the post-move position with defenders to move
	if err := g.ApplyMove(cycle[0]); err != nil {
		return err
	}
	return wantOutcome(g.Outcome(), tafl.Outcome{Winner: tafl.Attackers, Reason: tafl.DefenderRepetition})
}

func attackerRepetitionPlaysOn() error {
	g, cycle, err := repetitionShuffle()
	if err != nil {
		return err
	}
	// two full cycles put the start position, attackers to move, at three
	// occurrences; the game must continue
	for round := 0; round < 2; round++ {
		for _, m := range cycle {
			if err := g.ApplyMove(m); err != nil {
				return err
			}
		}
	}
	return wantOutcome(g.Outcome(), tafl.InProgress)
}

func randomAIPlaysLegalMoves() error {
	g := tafl.NewGame()
	for i := 0; i < 10 && !g.Outcome().Over(); i++ {
		m, err := assess.RandMove(g)
		if err != nil {
			return err
		}
		if err := g.ApplyMove(m); err != nil {
			return fmt.Errorf("ply %d: engine rejected its own move %s: %w", i, m, err)
		}
	}
	return nil
}
