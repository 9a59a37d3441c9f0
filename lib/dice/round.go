package dice

import (
	errors "github.com/aasmall/gurpsdice/lib/dice-errors"
)

// One extra d6 is traded for 4 points of bonus, or 3 when roundSeven is on and
// the bonus sits in the lower part of its 7-cycle, so that 7 points come out as
// exactly two dice.
const (
	dieRate        = 4
	roundSevenRate = 3
	minDownBonus   = -2
)

func upThreshold(roundSeven bool) int {
	if roundSeven {
		return roundSevenRate
	}
	return dieRate
}

func upRate(bonus int, roundSeven bool) int {
	if roundSeven && bonus > 0 && 7-bonus%7 >= 4 {
		return roundSevenRate
	}
	return dieRate
}

func (b *BonusDice) addDie(roundSeven bool) {
	b.Bonus -= upRate(b.Bonus, roundSeven)
	b.Count++
}

//tradeUp returns how many dice RoundUpMax adds for bonus and the bonus left
//over. With roundSeven, once bonus%7 is 0, 1 or 2 every pair of steps costs
//exactly 7 and keeps the residue, so whole weeks are skipped in one go.
func tradeUp(bonus int, roundSeven bool) (dice, rest int) {
	rest = bonus
	if !roundSeven {
		if rest >= dieRate {
			dice = rest / dieRate
			rest -= dice * dieRate
		}
		return dice, rest
	}
	for rest >= roundSevenRate {
		if rest%7 <= 2 && rest >= 14 {
			weeks := rest/7 - 1
			dice += 2 * weeks
			rest -= 7 * weeks
			continue
		}
		rest -= upRate(rest, true)
		dice++
	}
	return dice, rest
}

//tradeDown returns how many dice RoundDownMax removes. Below zero every
//step is worth dieRate.
func tradeDown(count, bonus int) int {
	if count <= 1 || bonus > minDownBonus {
		return 0
	}
	n := -(bonus-minDownBonus)/dieRate + 1
	if n > count-1 {
		n = count - 1
	}
	return n
}

func (b *BonusDice) removeDie(roundSeven bool) {
	if roundSeven && b.Bonus > 0 && b.Bonus%7 >= 4 {
		b.Bonus += roundSevenRate
	} else {
		b.Bonus += dieRate
	}
	b.Count--
}

func (b *BonusDice) canRoundUp(roundSeven bool) bool {
	return b.Bonus >= upThreshold(roundSeven)
}

func (b *BonusDice) checkAddDice(n int) error {
	if n > maxInt-b.Count {
		return errors.Newf(errors.Count, "dice count out of range: %s can not take %d more dice", b, n)
	}
	return nil
}

func (b *BonusDice) canRoundDown() bool {
	return b.Bonus <= minDownBonus && b.Count > 1
}

// AddDie adds one die and pays for it out of the bonus, whatever the bonus is.
func (b *BonusDice) AddDie(roundSeven bool) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := b.checkAddDice(1); err != nil {
		return err
	}
	b.addDie(roundSeven)
	return nil
}

// RemoveDie removes one die and adds its worth to the bonus. It fails without
// changing b when there is no die to remove.
func (b *BonusDice) RemoveDie(roundSeven bool) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.Count == 0 {
		return errors.Newf(errors.Count, "dice count can not be less than zero: %s has no die to remove", b)
	}
	b.removeDie(roundSeven)
	return nil
}

// RoundUpStep trades bonus for one die if the bonus is at least 3 (roundSeven)
// or 4. It reports whether a die was added.
func (b *BonusDice) RoundUpStep(roundSeven bool) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	if !b.canRoundUp(roundSeven) {
		return false, nil
	}
	if err := b.checkAddDice(1); err != nil {
		return false, err
	}
	b.addDie(roundSeven)
	return true, nil
}

// RoundUpMax trades bonus for dice until the bonus is below the threshold.
// The result is the same as repeating RoundUpStep, but the cost does not grow
// with the bonus. b is unchanged if the count would overflow.
func (b *BonusDice) RoundUpMax(roundSeven bool) error {
	if err := b.Validate(); err != nil {
		return err
	}
	dice, rest := tradeUp(b.Bonus, roundSeven)
	if err := b.checkAddDice(dice); err != nil {
		return err
	}
	b.Count += dice
	b.Bonus = rest
	return nil
}

// RoundDownStep trades one die for bonus if the bonus is -2 or less and more
// than one die would remain. It reports whether a die was removed.
func (b *BonusDice) RoundDownStep(roundSeven bool) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}
	if !b.canRoundDown() {
		return false, nil
	}
	b.removeDie(roundSeven)
	return true, nil
}

// RoundDownMax trades dice for bonus while RoundDownStep would. Only
// negative bonuses round down, so roundSeven never changes the rate here.
func (b *BonusDice) RoundDownMax(roundSeven bool) error {
	if err := b.Validate(); err != nil {
		return err
	}
	n := tradeDown(b.Count, b.Bonus)
	b.Count -= n
	b.Bonus += n * dieRate
	return nil
}

// RoundStep applies at most one trade in each direction.
func (b *BonusDice) RoundStep(roundSeven bool) error {
	if _, err := b.RoundUpStep(roundSeven); err != nil {
		return err
	}
	_, err := b.RoundDownStep(roundSeven)
	return err
}

// Round normalises b to its canonical equivalent: RoundUpMax, then
// RoundDownMax. Rounding a rounded value changes nothing.
func (b *BonusDice) Round(roundSeven bool) error {
	if err := b.RoundUpMax(roundSeven); err != nil {
		return err
	}
	return b.RoundDownMax(roundSeven)
}

// Rounded returns the canonical equivalent of b, leaving b unchanged.
func (b BonusDice) Rounded(roundSeven bool) (BonusDice, error) {
	if err := b.Round(roundSeven); err != nil {
		return BonusDice{}, err
	}
	return b, nil
}
