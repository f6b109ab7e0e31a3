package life

import (
	"testing"

	"lifelike/internal/core"
)

func TestParseDigitsStripsNoise(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"B3":       "3",
		"S23":      "23",
		"3322":     "23",
		"9x8a0":    "08",
		"b3/s2-3":  "23",
		"12345678": "12345678",
	}
	for in, want := range cases {
		if got := ParseDigits(in).Digits(); got != want {
			t.Fatalf("ParseDigits(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestRuleSetString(t *testing.T) {
	if got := Conway().String(); got != "B3/S23" {
		t.Fatalf("Conway() = %s", got)
	}
	r, err := ParseRule("B36/S23")
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "B36/S23" {
		t.Fatalf("ParseRule round trip = %s", r)
	}
	r, err = ParseRule("S23/B3")
	if err != nil || r != Conway() {
		t.Fatalf("ParseRule(S23/B3) = %v, %v", r, err)
	}
	for _, in := range []string{"B3S23", "b3s23", "S23B3"} {
		if r, err := ParseRule(in); err != nil || r != Conway() {
			t.Fatalf("ParseRule(%s) = %v, %v", in, r, err)
		}
	}
	if r, err := ParseRule("B36S"); err != nil || r.String() != "B36/S" {
		t.Fatalf("ParseRule(B36S) = %v, %v", r, err)
	}
	for _, in := range []string{"36", "seeds", "B3SS23"} {
		if _, err := ParseRule(in); err == nil {
			t.Fatalf("ParseRule(%s) should fail", in)
		}
	}
	empty := NewRuleSet("", "")
	if empty.String() != "B/S" {
		t.Fatalf("empty rules = %s", empty)
	}
}

func TestNextCellConway(t *testing.T) {
	r := Conway()
	cases := []struct {
		name string
		cur  core.Cell
		n    int
		want core.Cell
	}{
		{"birth on three", core.Cell{}, 3, core.Cell{State: 1, Age: 0}},
		{"dead stays dead on two", core.Cell{}, 2, core.Cell{}},
		{"survive on two", core.Cell{State: 1, Age: 4}, 2, core.Cell{State: 1, Age: 5}},
		{"survive on three", core.Cell{State: 1, Age: 0}, 3, core.Cell{State: 1, Age: 1}},
		{"age caps", core.Cell{State: 1, Age: 255}, 3, core.Cell{State: 1, Age: 255}},
		{"underpopulation", core.Cell{State: 1, Age: 9}, 1, core.Cell{}},
		{"overpopulation", core.Cell{State: 1, Age: 9}, 4, core.Cell{}},
	}
	for _, tc := range cases {
		if got := NextCell(tc.cur, tc.n, r); got != tc.want {
			t.Fatalf("%s: NextCell(%+v, %d) = %+v, expected %+v", tc.name, tc.cur, tc.n, got, tc.want)
		}
	}
}

func TestNextCellSurvivalBeforeBirth(t *testing.T) {
	// With 3 in both sets a live cell must age rather than be reborn at 0.
	r := NewRuleSet("3", "3")
	got := NextCell(core.Cell{State: 1, Age: 10}, 3, r)
	if got != (core.Cell{State: 1, Age: 11}) {
		t.Fatalf("live cell with survival count got %+v", got)
	}
	// A live cell whose count is only in the birth set dies.
	got = NextCell(core.Cell{State: 1, Age: 10}, 3, NewRuleSet("3", "2"))
	if got != (core.Cell{}) {
		t.Fatalf("live cell with birth-only count got %+v", got)
	}
}

func TestEmptyRuleSetNeverTriggers(t *testing.T) {
	r := NewRuleSet("", "")
	for n := 0; n <= 8; n++ {
		if got := NextCell(core.Cell{}, n, r); got.Alive() {
			t.Fatalf("empty birth set produced a live cell at n=%d", n)
		}
		if got := NextCell(core.Cell{State: 1}, n, r); got.Alive() {
			t.Fatalf("empty survival set kept a cell alive at n=%d", n)
		}
	}
}
