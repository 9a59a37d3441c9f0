package dice

import (
	"fmt"

	errors "github.com/aasmall/gurpsdice/lib/dice-errors"
)

// GurpsFace is the only face a BonusDice may have.
const GurpsFace = 6

//BonusDice is "<count>d6±<bonus>". Adding or subtracting an Int changes the bonus:
//
//	1d6+1 + Int(1) = 1d6+2
//	1d6-1 + 2d6+3  = 3d6+2
//	3d6+3 - 1d6-1  = 2d6+4
//
//Build one with NewBonusDice or ParseBonusDice; the zero value has Face 0 and
//does not validate.
type BonusDice struct {
	Dice
	Bonus int
}

func (BonusDice) operand() {}

// NewBonusDice returns a validated count d6 + bonus.
func NewBonusDice(count, bonus int) (BonusDice, error) {
	b := BonusDice{Dice: Dice{Count: count, Face: GurpsFace}, Bonus: bonus}
	if err := b.Validate(); err != nil {
		return BonusDice{}, err
	}
	return b, nil
}

func (b BonusDice) String() string {
	s := b.Dice.String()
	if b.Bonus != 0 {
		s += fmt.Sprintf("%+d", b.Bonus)
	}
	return s
}

func validateGurpsFace(face int) error {
	if face != GurpsFace {
		return errors.Newf(errors.Face, "dice face should be equal to %d: %d", GurpsFace, face)
	}
	return nil
}

// Validate checks count, then face, then bonus. Any integer bonus is valid.
func (b BonusDice) Validate() error {
	if err := validateCount(b.Count); err != nil {
		return err
	}
	return validateGurpsFace(b.Face)
}

// SetFace fails unless face is 6.
func (b *BonusDice) SetFace(face int) error {
	if err := validateGurpsFace(face); err != nil {
		return err
	}
	b.Face = face
	return nil
}

// SetBonus sets Bonus. Any int is a valid bonus, so it never fails; the
// error return only mirrors SetCount and SetFace.
func (b *BonusDice) SetBonus(bonus int) error {
	b.Bonus = bonus
	return nil
}

// Add stacks another BonusDice, or adds an Int to the bonus.
func (b BonusDice) Add(other Operand) (BonusDice, error) {
	if err := b.Validate(); err != nil {
		return BonusDice{}, err
	}
	switch o := other.(type) {
	case BonusDice:
		if err := o.Validate(); err != nil {
			return BonusDice{}, err
		}
		if o.Count > maxInt-b.Count {
			return BonusDice{}, countOverflow("+", b, o)
		}
		return NewBonusDice(b.Count+o.Count, b.Bonus+o.Bonus)
	case Int:
		return NewBonusDice(b.Count, b.Bonus+int(o))
	default:
		return BonusDice{}, typeMismatch("+", b, other)
	}
}

// Sub removes another BonusDice, or subtracts an Int from the bonus. The
// count may not go negative; the bonus may.
func (b BonusDice) Sub(other Operand) (BonusDice, error) {
	if err := b.Validate(); err != nil {
		return BonusDice{}, err
	}
	switch o := other.(type) {
	case BonusDice:
		if err := o.Validate(); err != nil {
			return BonusDice{}, err
		}
		if o.Count > b.Count {
			return BonusDice{}, errors.Newf(errors.Count, "dice count can not be less than zero: %s - %s", b, o)
		}
		return NewBonusDice(b.Count-o.Count, b.Bonus-o.Bonus)
	case Int:
		return NewBonusDice(b.Count, b.Bonus-int(o))
	default:
		return BonusDice{}, typeMismatch("-", b, other)
	}
}

// Roll rolls b with DefaultSource.
func (b BonusDice) Roll() (int, error) {
	return b.RollWith(DefaultSource)
}

// RollWith rolls Count d6 from src and adds Bonus.
func (b BonusDice) RollWith(src Source) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	total, err := rollFaces(src, b.Count, GurpsFace)
	if err != nil {
		return 0, err
	}
	return total + b.Bonus, nil
}

//Max returns the highest possible roll
func (b BonusDice) Max() (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.Count*GurpsFace + b.Bonus, nil
}

//Min returns the lowest possible roll
func (b BonusDice) Min() (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.Count + b.Bonus, nil
}

//Mean returns the expected roll, 3.5 per die plus the bonus
func (b BonusDice) Mean() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return float64(b.Count)*3.5 + float64(b.Bonus), nil
}
