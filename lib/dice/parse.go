package dice

import (
	"regexp"
	"strconv"

	errors "github.com/aasmall/gurpsdice/lib/dice-errors"
)

var (
	diceRegexp      = regexp.MustCompile(`^(?P<count>\d+)d(?P<face>\d+)(?P<bonus>[-+]\d+)?$`)
	bonusDiceRegexp = regexp.MustCompile(`^(?P<count>\d+)d(?P<face>6)(?P<bonus>[-+]\d+)?$`)
)

const noDiceMessage = "there is no correct dice parameter in string"

type notation struct {
	count    int
	face     int
	bonus    int
	hasBonus bool
}

func noDice(s string, inner error) error {
	return errors.NewDiceError(noDiceMessage+": "+strconv.Quote(s), errors.Parse, inner)
}

// search matches s against re and converts its groups. An explicit zero bonus
// ("+0", "-0") is rejected like any other non-matching string.
func search(re *regexp.Regexp, s string) (notation, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return notation{}, noDice(s, nil)
	}
	var n notation
	var err error
	if n.count, err = strconv.Atoi(m[1]); err != nil {
		return notation{}, noDice(s, err)
	}
	if n.face, err = strconv.Atoi(m[2]); err != nil {
		return notation{}, noDice(s, err)
	}
	if m[3] != "" {
		if n.bonus, err = strconv.Atoi(m[3]); err != nil {
			return notation{}, noDice(s, err)
		}
		if n.bonus == 0 {
			return notation{}, noDice(s, nil)
		}
		n.hasBonus = true
	}
	return n, nil
}

// Parse reads "<count>d<face>". Dice carry no bonus, so a signed suffix is a
// parse failure.
func Parse(s string) (Dice, error) {
	n, err := search(diceRegexp, s)
	if err != nil {
		return Dice{}, err
	}
	if n.hasBonus {
		return Dice{}, noDice(s, nil)
	}
	return New(n.count, n.face)
}

// ParseBonusDice reads "<count>d6", "<count>d6+<bonus>" or "<count>d6-<bonus>".
func ParseBonusDice(s string) (BonusDice, error) {
	n, err := search(bonusDiceRegexp, s)
	if err != nil {
		return BonusDice{}, err
	}
	return NewBonusDice(n.count, n.bonus)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Dice {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustParseBonusDice is like ParseBonusDice but panics on error.
func MustParseBonusDice(s string) BonusDice {
	b, err := ParseBonusDice(s)
	if err != nil {
		panic(err)
	}
	return b
}
