package board

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, s string) *Position {
	t.Helper()
	pos, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return pos
}

func TestOpeningMove(t *testing.T) {
	pos := NewPosition()

	next, r, err := pos.DoMove("a3", "b4")
	if err != nil {
		t.Fatal(err)
	}
	if r != Accepted || next == nil {
		t.Fatalf("a3 b4 rejected: %v", r)
	}

	if next.SideToMove() != Black {
		t.Errorf("side to move = %v, want black", next.SideToMove())
	}
	if !next.IsEmpty(A3) {
		t.Errorf("a3 = %v, want empty", next.PieceAt(A3))
	}
	if got := next.PieceAt(B4); got != RedMan {
		t.Errorf("b4 = %v, want r", got)
	}

	// The original position is untouched.
	if pos.String() != StartPosition {
		t.Errorf("original position changed to %q", pos.String())
	}
}

func TestRejectedMoveLeavesPosition(t *testing.T) {
	pos := NewPosition()

	next, r, err := pos.DoMove("a3", "a4")
	if err != nil {
		t.Fatal(err)
	}
	if next != nil {
		t.Fatal("expected rejection")
	}
	if r != RejectNotDiagonal {
		t.Errorf("rejection = %v, want %v", r, RejectNotDiagonal)
	}
	if pos.SideToMove() != Red {
		t.Errorf("side to move = %v, want red", pos.SideToMove())
	}
	if got := pos.PieceAt(A3); got != RedMan {
		t.Errorf("a3 = %v, want r", got)
	}
}

func TestCapture(t *testing.T) {
	pos := mustParse(t, "r ........ ........ ........ ........ ...b.... ..r..... ........ ........")

	next, r := pos.Play(NewMove(C3, E5))
	if r != Accepted {
		t.Fatalf("c3 e5 rejected: %v", r)
	}
	if !next.IsEmpty(D4) {
		t.Errorf("d4 = %v, want captured", next.PieceAt(D4))
	}
	if !next.IsEmpty(C3) {
		t.Errorf("c3 = %v, want empty", next.PieceAt(C3))
	}
	if got := next.PieceAt(E5); got != RedMan {
		t.Errorf("e5 = %v, want r", got)
	}
	if next.SideToMove() != Black {
		t.Errorf("side to move = %v, want black", next.SideToMove())
	}
	if !next.IsTerminal() || next.Winner() != Red {
		t.Error("capturing the last black piece should end the game")
	}

	if got := pos.PieceAt(D4); got != BlackMan {
		t.Errorf("original d4 = %v, want b", got)
	}
}

func TestKingCapturesBackward(t *testing.T) {
	pos := mustParse(t, "b ........ ........ ........ ....B... ...r.... ........ ......r. ........")

	next, r := pos.Play(NewMove(E5, C3))
	if r != Accepted {
		t.Fatalf("e5 c3 rejected: %v", r)
	}
	if !next.IsEmpty(D4) {
		t.Error("d4 not captured")
	}
	if got := next.PieceAt(C3); got != BlackKing {
		t.Errorf("c3 = %v, want B", got)
	}
	if next.IsTerminal() {
		t.Error("red still has g2")
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		move  Move
		want  Piece
	}{
		{"red step", "r ........ ..r..... ........ ........ ........ ........ ........ .....b..", NewMove(C7, D8), RedKing},
		{"red jump", "r ........ ...b.... ..r..... ........ ........ ........ ........ .....b..", NewMove(C6, E8), RedKing},
		{"black step", "b ......r. ........ ........ ........ ........ ........ .b...... ........", NewMove(B2, A1), BlackKing},
		{"red no promotion", "r ........ ........ ..r..... ........ ........ ........ ........ .....b..", NewMove(C6, D7), RedMan},
		{"king stays king", "r ........ ..R..... ........ ........ ........ ........ ........ .....b..", NewMove(C7, B8), RedKing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.input)
			next, r := pos.Play(tc.move)
			if r != Accepted {
				t.Fatalf("%v rejected: %v", tc.move, r)
			}
			if got := next.PieceAt(tc.move.To); got != tc.want {
				t.Errorf("%v = %v, want %v", tc.move.To, got, tc.want)
			}
		})
	}
}

func TestRejections(t *testing.T) {
	start := StartPosition
	tests := []struct {
		name  string
		input string
		from  string
		to    string
		want  Rejection
	}{
		{"empty source", start, "b4", "c5", RejectEmptySource},
		{"occupied target", start, "b2", "a3", RejectOccupiedTarget},
		{"not your piece", start, "b6", "a5", RejectNotYourPiece},
		{"black moving on red turn", start, "h6", "g5", RejectNotYourPiece},
		{"straight ahead", start, "a3", "a4", RejectNotDiagonal},
		{"sideways", "r ........ ........ ........ ........ ........ ..r..... ........ ........", "c3", "e3", RejectNotDiagonal},
		{"knight shape", start, "c3", "d5", RejectNotDiagonal},
		{"three squares", "r .......b ........ ........ ........ ........ .r...... ........ ........", "b3", "e6", RejectBadDistance},
		{"jump over empty", "r ........ ........ ........ ........ ........ ..r..... ........ ........", "c3", "e5", RejectNothingToCapture},
		{"jump over own", "r ........ ........ ........ ........ ...r.... ..r..... ........ ........", "c3", "e5", RejectNothingToCapture},
		{"man backward", "r ........ ........ ........ ...r.... ........ ........ ........ ......b.", "d5", "c4", RejectWrongDirection},
		{"black man backward", "b ........ ........ ........ ...b.... ........ ........ ........ r.......", "d5", "e6", RejectWrongDirection},
		{"man jumps backward", "r ........ ........ ........ ...r.... ..b..... ........ ........ ........", "d5", "b3", RejectWrongDirection},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParse(t, tc.input)
			before := pos.String()

			next, r, err := pos.DoMove(tc.from, tc.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if next != nil {
				t.Fatalf("move accepted, got %q", next.String())
			}
			if r != tc.want {
				t.Errorf("rejection = %v, want %v", r, tc.want)
			}
			if pos.Check(NewMove(mustSquare(t, tc.from), mustSquare(t, tc.to))) != tc.want {
				t.Error("Check disagrees with DoMove")
			}
			if pos.String() != before {
				t.Error("position changed after rejected move")
			}
		})
	}
}

func TestKingMovesBothWays(t *testing.T) {
	pos := mustParse(t, "r ........ ........ ........ ...R.... ........ ........ ........ b.......")

	for _, to := range []Square{C6, E6, C4, E4} {
		if r := pos.Check(NewMove(D5, to)); r != Accepted {
			t.Errorf("d5 %v rejected: %v", to, r)
		}
	}
}

func TestRejectionOrder(t *testing.T) {
	// Black piece moving straight onto an occupied square on red's turn:
	// the occupied target is reported before ownership or geometry.
	pos := mustParse(t, "r ........ ........ ........ ...r.... ...b.... ........ ........ ........")
	if r := pos.Check(NewMove(D4, D5)); r != RejectOccupiedTarget {
		t.Errorf("rejection = %v, want %v", r, RejectOccupiedTarget)
	}
	if r := pos.Check(NewMove(D4, D3)); r != RejectNotYourPiece {
		t.Errorf("rejection = %v, want %v", r, RejectNotYourPiece)
	}
	if r := pos.Check(NoMove); r != RejectOffBoard {
		t.Errorf("rejection = %v, want %v", r, RejectOffBoard)
	}
}

func TestDoMoveNotationErrors(t *testing.T) {
	pos := NewPosition()
	tests := []struct {
		from, to string
		want     error
	}{
		{"a3mas", "b4", ErrFormat},
		{"a", "b4", ErrFormat},
		{"z3", "b4", ErrRange},
		{"a3", "z4", ErrRange},
		{"aa", "b4", ErrFormat},
		{"a0", "b4", ErrRange},
		{"a9", "b4", ErrRange},
		{"a3", "b0", ErrRange},
		{"a3", "b9", ErrRange},
		{"A3", "b4", ErrRange},
	}

	for _, tc := range tests {
		next, r, err := pos.DoMove(tc.from, tc.to)
		if !errors.Is(err, tc.want) {
			t.Errorf("DoMove(%q, %q) err = %v, want %v", tc.from, tc.to, err, tc.want)
		}
		if next != nil || r != Accepted {
			t.Errorf("DoMove(%q, %q) returned a result alongside an error", tc.from, tc.to)
		}
	}
}

func TestLegalMovesStart(t *testing.T) {
	moves := NewPosition().LegalMoves()
	want := []Move{
		NewMove(A3, B4),
		NewMove(C3, B4), NewMove(C3, D4),
		NewMove(E3, D4), NewMove(E3, F4),
		NewMove(G3, F4), NewMove(G3, H4),
	}

	if len(moves) != len(want) {
		t.Fatalf("got %d moves %v, want %d", len(moves), moves, len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestLegalMovesIncludeCaptures(t *testing.T) {
	pos := mustParse(t, "r ........ ........ ........ ........ ...b.... ..r..... ........ ........")
	moves := pos.LegalMoves()

	found := false
	for _, m := range moves {
		if m == NewMove(C3, E5) {
			found = true
			if !m.IsCapture() {
				t.Error("c3 e5 should be a capture")
			}
		}
	}
	if !found {
		t.Errorf("capture c3 e5 missing from %v", moves)
	}

	blocked := mustParse(t, "b ........ ........ ........ ........ ........ ........ .r...... b.......")
	if blocked.HasLegalMoves() {
		t.Errorf("black man on a1 has moves %v", blocked.LegalMoves())
	}
}

func TestPlayIsSafeForConcurrentReaders(t *testing.T) {
	pos := NewPosition()
	moves := pos.LegalMoves()

	done := make(chan *Position, len(moves))
	for _, m := range moves {
		go func(m Move) {
			next, _ := pos.Play(m)
			done <- next
		}(m)
	}
	for range moves {
		if next := <-done; next == nil || next.SideToMove() != Black {
			t.Error("concurrent move failed")
		}
	}
	if pos.String() != StartPosition {
		t.Error("shared position was modified")
	}
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}
