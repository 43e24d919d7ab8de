package cube

import "testing"

func TestOptimize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"R U R' U'", "R U R' U'"},
		{"R R", "R2"},
		{"R R'", ""},
		{"R R R", "R'"},
		{"R2 R2", ""},
		{"R R2", "R'"},
		{"F F F F", ""},
		{"R U U' R'", ""},
		{"R L R'", "L"},
		{"R L R2", "R' L"},
		{"U D U D'", "U2"},
		{"R L' R' L", ""},
		{"F B2 F' B'", "B"},
	}
	for _, tc := range cases {
		in, err := ParseMoves(tc.in)
		if err != nil {
			t.Fatalf("ParseMoves(%q): %v", tc.in, err)
		}
		got := FormatMoves(Optimize(in))
		if got != tc.want {
			t.Errorf("Optimize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOptimizePreservesEffect(t *testing.T) {
	sc := NewScrambler(11)
	for i := 0; i < 5; i++ {
		seq := sc.Scramble(15)
		// Pad with redundancy the optimizer should strip.
		padded := append(append([]Move{R, RPrime}, seq...), U, D2, UPrime, D2)
		opt := Optimize(padded)
		a := ApplySequence(Solved(), padded)
		b := ApplySequence(Solved(), opt)
		if !a.Equal(b) {
			t.Fatalf("optimized sequence diverges: %s vs %s", FormatMoves(padded), FormatMoves(opt))
		}
		if len(opt) > len(padded) {
			t.Errorf("optimize grew the sequence: %d > %d", len(opt), len(padded))
		}
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	seq, err := ParseMoves("R R L2 L2 U D U' F F2")
	if err != nil {
		t.Fatal(err)
	}
	once := Optimize(seq)
	twice := Optimize(once)
	if FormatMoves(once) != FormatMoves(twice) {
		t.Errorf("second pass changed the result: %q vs %q", FormatMoves(once), FormatMoves(twice))
	}
}

func TestOptimizeDoesNotModifyInput(t *testing.T) {
	seq := []Move{R, R, U}
	Optimize(seq)
	if FormatMoves(seq) != "R R U" {
		t.Error("input slice was modified")
	}
}
