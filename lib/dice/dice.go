// Package dice models "<count>d<face>" dice and the GURPS "<count>d6±<bonus>"
// specialisation, including the bonus/dice equivalence used to normalise them.
package dice

import (
	"fmt"

	errors "github.com/aasmall/gurpsdice/lib/dice-errors"
)

//Dice represents a throw of Count dice with Face sides each.
//The zero value is 0d0.
type Dice struct {
	Count int
	Face  int
}

// Operand is the right-hand side of Add and Sub: Dice, BonusDice or Int.
type Operand interface {
	operand()
}

// Int is a plain integer operand. It only combines with BonusDice.
type Int int

func (Dice) operand() {}
func (Int) operand()  {}

const maxInt = int(^uint(0) >> 1)

func countOverflow(op string, left, right fmt.Stringer) error {
	return errors.Newf(errors.Count, "dice count out of range: %s %s %s", left, op, right)
}

// New returns a validated Dice.
func New(count, face int) (Dice, error) {
	d := Dice{Count: count, Face: face}
	if err := d.Validate(); err != nil {
		return Dice{}, err
	}
	return d, nil
}

func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Face)
}

func validateCount(count int) error {
	if count < 0 {
		return errors.Newf(errors.Count, "dice count can not be less than zero: %d", count)
	}
	return nil
}

func validateFace(face int) error {
	if face < 0 {
		return errors.Newf(errors.Face, "dice face can not be less than zero: %d", face)
	}
	return nil
}

// Validate returns the failure of the first invalid field.
func (d Dice) Validate() error {
	if err := validateCount(d.Count); err != nil {
		return err
	}
	return validateFace(d.Face)
}

// SetCount sets Count. d is unchanged on error.
func (d *Dice) SetCount(count int) error {
	if err := validateCount(count); err != nil {
		return err
	}
	d.Count = count
	return nil
}

// SetFace sets Face. d is unchanged on error.
func (d *Dice) SetFace(face int) error {
	if err := validateFace(face); err != nil {
		return err
	}
	d.Face = face
	return nil
}

func typeMismatch(op string, left, right interface{}) error {
	return errors.Newf(errors.TypeMismatch, "unsupported operand type(s) for %s: '%T' and '%T'", op, left, right)
}

func faceMismatch(left, right Dice) error {
	return errors.Newf(errors.FaceMismatch, "there is different dice face: %s and %s", left, right)
}

// Add stacks two Dice of the same face.
func (d Dice) Add(other Operand) (Dice, error) {
	o, ok := other.(Dice)
	if !ok {
		return Dice{}, typeMismatch("+", d, other)
	}
	if err := validatePair(d, o); err != nil {
		return Dice{}, err
	}
	if d.Face != o.Face {
		return Dice{}, faceMismatch(d, o)
	}
	if o.Count > maxInt-d.Count {
		return Dice{}, countOverflow("+", d, o)
	}
	return New(d.Count+o.Count, d.Face)
}

// Sub removes other's dice from d. The result may not have a negative count.
func (d Dice) Sub(other Operand) (Dice, error) {
	o, ok := other.(Dice)
	if !ok {
		return Dice{}, typeMismatch("-", d, other)
	}
	if err := validatePair(d, o); err != nil {
		return Dice{}, err
	}
	if d.Face != o.Face {
		return Dice{}, faceMismatch(d, o)
	}
	if o.Count > d.Count {
		return Dice{}, errors.Newf(errors.Count, "dice count can not be less than zero: %s - %s", d, o)
	}
	return Dice{Count: d.Count - o.Count, Face: d.Face}, nil
}

func validatePair(left, right Dice) error {
	if err := left.Validate(); err != nil {
		return err
	}
	return right.Validate()
}

// Roll rolls d with DefaultSource.
func (d Dice) Roll() (int, error) {
	return d.RollWith(DefaultSource)
}

// RollWith draws Count values in [1, Face] from src and sums them. It calls
// src once per die; 0d<n> and <n>d0 roll 0 without touching src.
func (d Dice) RollWith(src Source) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return rollFaces(src, d.Count, d.Face)
}

//Max returns the highest possible roll
func (d Dice) Max() (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d.Count * d.Face, nil
}

//Min returns the lowest possible roll. A zero-faced die contributes nothing.
func (d Dice) Min() (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if d.Face == 0 {
		return 0, nil
	}
	return d.Count, nil
}

//Mean returns the expected roll
func (d Dice) Mean() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if d.Face == 0 {
		return 0, nil
	}
	return float64(d.Count) * float64(d.Face+1) / 2, nil
}
