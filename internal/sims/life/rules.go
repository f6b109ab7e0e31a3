package life

import (
	"fmt"
	"strings"

	"lifelike/internal/core"
)

// Counts is a set of neighbor counts in [0,8], one bit per count.
type Counts uint16

// ParseDigits builds a set from every '0'-'8' in s. Anything else is dropped,
// so "B3", "3" and "3x3" all yield {3}.
func ParseDigits(s string) Counts {
	var c Counts
	for _, r := range s {
		if r >= '0' && r <= '8' {
			c |= 1 << uint(r-'0')
		}
	}
	return c
}

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	if n < 0 || n > 8 {
		return false
	}
	return c&(1<<uint(n)) != 0
}

// Digits renders the set in ascending order, e.g. "23".
func (c Counts) Digits() string {
	var b strings.Builder
	for n := 0; n <= 8; n++ {
		if c.Has(n) {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// RuleSet holds the birth and survival counts of a lifelike automaton.
type RuleSet struct {
	Birth    Counts
	Survival Counts
}

// Conway returns B3/S23.
func Conway() RuleSet {
	return RuleSet{Birth: ParseDigits("3"), Survival: ParseDigits("23")}
}

// NewRuleSet parses user-entered birth and survival digit strings.
func NewRuleSet(birth, survival string) RuleSet {
	return RuleSet{Birth: ParseDigits(birth), Survival: ParseDigits(survival)}
}

// ParseRule reads "B36/S23" notation. The B and S prefixes are optional and
// case-insensitive when a slash separates the halves; without one, as in
// "B36S23", the S marks where survival starts and nothing but B, S and
// digits may appear.
func ParseRule(s string) (RuleSet, error) {
	birth, survival, ok := strings.Cut(s, "/")
	if !ok {
		upper := strings.ToUpper(strings.TrimSpace(s))
		if strings.Trim(upper, "BS0123456789") != "" || strings.Count(upper, "B") > 1 || strings.Count(upper, "S") > 1 {
			return RuleSet{}, fmt.Errorf("rule %q: expected B<digits>/S<digits>", s)
		}
		s = strings.TrimSpace(s)
		bi, si := strings.IndexByte(upper, 'B'), strings.IndexByte(upper, 'S')
		switch {
		case si < 0:
			return RuleSet{}, fmt.Errorf("rule %q: expected B<digits>/S<digits>", s)
		case bi > si:
			birth, survival = s[bi:], s[:bi]
		default:
			birth, survival = s[:si], s[si:]
		}
	}
	birth = strings.TrimSpace(birth)
	survival = strings.TrimSpace(survival)
	if strings.HasPrefix(strings.ToUpper(survival), "B") && !strings.HasPrefix(strings.ToUpper(birth), "B") {
		birth, survival = survival, birth
	}
	return NewRuleSet(birth, survival), nil
}

func (r RuleSet) String() string {
	return "B" + r.Birth.Digits() + "/S" + r.Survival.Digits()
}

// NextCell applies r to a cell with n live neighbors. Survival is checked
// before birth, and everything else dies.
func NextCell(cur core.Cell, n int, r RuleSet) core.Cell {
	switch {
	case cur.State == 1 && r.Survival.Has(n):
		age := cur.Age
		if age < core.MaxAge {
			age++
		}
		return core.Cell{State: 1, Age: age}
	case cur.State == 0 && r.Birth.Has(n):
		return core.Cell{State: 1}
	default:
		return core.Cell{}
	}
}
