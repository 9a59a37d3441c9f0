package dice

import (
	"errors"
	"testing"

	diceerrors "github.com/aasmall/gurpsdice/lib/dice-errors"
	"github.com/davecgh/go-spew/spew"
)

// sequenceSource returns values from a fixed list, in order, and counts calls.
type sequenceSource struct {
	values []int
	calls  int
}

func (s *sequenceSource) Intn(n int) (int, error) {
	v := s.values[s.calls%len(s.values)] % n
	s.calls++
	return v, nil
}

type failingSource struct{}

func (failingSource) Intn(n int) (int, error) { return 0, errors.New("out of entropy") }

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		want     Dice
		wantCode int32
		wantErr  bool
	}{
		{name: "3d6", s: "3d6", want: Dice{Count: 3, Face: 6}},
		{name: "0d0", s: "0d0", want: Dice{}},
		{name: "leading zeros", s: "003d020", want: Dice{Count: 3, Face: 20}},
		{name: "bonus not carried by Dice", s: "3d6+1", wantErr: true, wantCode: diceerrors.Parse},
		{name: "zero bonus", s: "3d6+0", wantErr: true, wantCode: diceerrors.Parse},
		{name: "negative count", s: "-1d6", wantErr: true, wantCode: diceerrors.Parse},
		{name: "negative face", s: "1d-6", wantErr: true, wantCode: diceerrors.Parse},
		{name: "empty", s: "", wantErr: true, wantCode: diceerrors.Parse},
		{name: "spaces", s: " 1d6", wantErr: true, wantCode: diceerrors.Parse},
		{name: "no count", s: "d6", wantErr: true, wantCode: diceerrors.Parse},
		{name: "overflow", s: "99999999999999999999999d6", wantErr: true, wantCode: diceerrors.Parse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if code := diceerrors.CodeOf(err); code != tt.wantCode {
					t.Errorf("Parse() error code = %v, want %v", code, tt.wantCode)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", spew.Sdump(got), spew.Sdump(tt.want))
			}
		})
	}
}

func TestDice_StringRoundTrip(t *testing.T) {
	for count := 0; count <= 30; count++ {
		for face := 0; face <= 30; face++ {
			d, err := New(count, face)
			if err != nil {
				t.Fatalf("New(%d, %d) error = %v", count, face, err)
			}
			got, err := Parse(d.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", d.String(), err)
			}
			if got != d || got.String() != d.String() {
				t.Errorf("Parse(%q) = %v, want %v", d.String(), got, d)
			}
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		face    int
		wantErr error
	}{
		{name: "valid", count: 2, face: 8},
		{name: "degenerate", count: 0, face: 0},
		{name: "negative count", count: -1, face: 6, wantErr: diceerrors.ErrCount},
		{name: "negative face", count: 1, face: -6, wantErr: diceerrors.ErrFace},
		{name: "count reported first", count: -1, face: -1, wantErr: diceerrors.ErrCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.count, tt.face)
			if tt.wantErr == nil && err != nil {
				t.Errorf("New() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDice_Setters(t *testing.T) {
	d := Dice{Count: 1, Face: 6}
	if err := d.SetCount(-1); !errors.Is(err, diceerrors.ErrCount) {
		t.Errorf("SetCount(-1) error = %v, want ErrCount", err)
	}
	if err := d.SetFace(-1); !errors.Is(err, diceerrors.ErrFace) {
		t.Errorf("SetFace(-1) error = %v, want ErrFace", err)
	}
	if d != (Dice{Count: 1, Face: 6}) {
		t.Errorf("failed setters changed dice to %v", d)
	}
	if err := d.SetCount(4); err != nil {
		t.Fatal(err)
	}
	if err := d.SetFace(10); err != nil {
		t.Fatal(err)
	}
	if d.String() != "4d10" {
		t.Errorf("after setters = %v, want 4d10", d)
	}
}

func TestDice_Add(t *testing.T) {
	for face := 0; face <= 12; face++ {
		for a := 0; a <= 12; a++ {
			for b := 0; b <= 12; b++ {
				got, err := Dice{Count: a, Face: face}.Add(Dice{Count: b, Face: face})
				if err != nil {
					t.Fatalf("%dd%d + %dd%d error = %v", a, face, b, face, err)
				}
				if want := (Dice{Count: a + b, Face: face}); got != want {
					t.Errorf("%dd%d + %dd%d = %v, want %v", a, face, b, face, got, want)
				}
			}
		}
	}
}

func TestDice_AddErrors(t *testing.T) {
	tests := []struct {
		name    string
		d       Dice
		other   Operand
		wantErr error
	}{
		{name: "face mismatch", d: Dice{1, 6}, other: Dice{1, 8}, wantErr: diceerrors.ErrFaceMismatch},
		{name: "face mismatch zero", d: Dice{0, 0}, other: Dice{0, 1}, wantErr: diceerrors.ErrFaceMismatch},
		{name: "int", d: Dice{1, 20}, other: Int(1), wantErr: diceerrors.ErrTypeMismatch},
		{name: "bonus dice", d: Dice{1, 6}, other: BonusDice{Dice: Dice{1, 6}}, wantErr: diceerrors.ErrTypeMismatch},
		{name: "nil", d: Dice{1, 6}, other: nil, wantErr: diceerrors.ErrTypeMismatch},
		{name: "invalid left", d: Dice{-1, 6}, other: Dice{1, 6}, wantErr: diceerrors.ErrCount},
		{name: "invalid right", d: Dice{1, 6}, other: Dice{1, -6}, wantErr: diceerrors.ErrFace},
		{name: "count overflow", d: Dice{maxInt, 6}, other: Dice{1, 6}, wantErr: diceerrors.ErrCount},
		{name: "count overflow both large", d: Dice{maxInt/2 + 1, 6}, other: Dice{maxInt/2 + 1, 6}, wantErr: diceerrors.ErrCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := tt.d.Add(tt.other); !errors.Is(err, tt.wantErr) || got != (Dice{}) {
				t.Errorf("%v.Add(%v) = %v, %v, want 0d0, %v", tt.d, tt.other, got, err, tt.wantErr)
			}
		})
	}
}

func TestDice_Sub(t *testing.T) {
	for face := 0; face <= 12; face++ {
		for a := 0; a <= 12; a++ {
			for b := 0; b <= 12; b++ {
				left, right := Dice{Count: a, Face: face}, Dice{Count: b, Face: face}
				got, err := left.Sub(right)
				if b > a {
					if !errors.Is(err, diceerrors.ErrCount) {
						t.Errorf("%v - %v error = %v, want ErrCount", left, right, err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("%v - %v error = %v", left, right, err)
				}
				if want := (Dice{Count: a - b, Face: face}); got != want {
					t.Errorf("%v - %v = %v, want %v", left, right, got, want)
				}
			}
		}
	}
	if _, err := (Dice{2, 6}).Sub(Dice{1, 8}); !errors.Is(err, diceerrors.ErrFaceMismatch) {
		t.Errorf("2d6 - 1d8 error = %v, want ErrFaceMismatch", err)
	}
	if _, err := (Dice{2, 6}).Sub(Int(1)); !errors.Is(err, diceerrors.ErrTypeMismatch) {
		t.Errorf("2d6 - 1 error = %v, want ErrTypeMismatch", err)
	}
}

func TestDice_AlgebraDoesNotMutate(t *testing.T) {
	a, b := Dice{3, 6}, Dice{1, 6}
	if _, err := a.Add(b); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Sub(b); err != nil {
		t.Fatal(err)
	}
	if a != (Dice{3, 6}) || b != (Dice{1, 6}) {
		t.Errorf("operands changed: %v, %v", a, b)
	}
}

func TestDice_RollBounds(t *testing.T) {
	src := NewSeededSource(42)
	for count := 1; count <= 6; count++ {
		for face := 1; face <= 20; face++ {
			d := Dice{Count: count, Face: face}
			for i := 0; i < 100; i++ {
				got, err := d.RollWith(src)
				if err != nil {
					t.Fatalf("%v.RollWith() error = %v", d, err)
				}
				if got < count || got > count*face {
					t.Fatalf("%v.RollWith() = %d, out of [%d, %d]", d, got, count, count*face)
				}
			}
		}
	}
}

func TestDice_RollCryptoSource(t *testing.T) {
	d := Dice{Count: 3, Face: 6}
	for i := 0; i < 100; i++ {
		got, err := d.Roll()
		if err != nil {
			t.Fatalf("Roll() error = %v", err)
		}
		if got < 3 || got > 18 {
			t.Fatalf("Roll() = %d, out of [3, 18]", got)
		}
	}
}

func TestDice_RollUsesOneDrawPerDie(t *testing.T) {
	src := &sequenceSource{values: []int{0, 5, 2}}
	got, err := Dice{Count: 3, Face: 6}.RollWith(src)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1+6+3 {
		t.Errorf("RollWith() = %d, want 10", got)
	}
	if src.calls != 3 {
		t.Errorf("source called %d times, want 3", src.calls)
	}
}

func TestDice_Degenerate(t *testing.T) {
	for _, d := range []Dice{{0, 0}, {1, 0}, {0, 1}} {
		src := &sequenceSource{values: []int{0}}
		for i := 0; i < 10; i++ {
			got, err := d.RollWith(src)
			if err != nil || got != 0 {
				t.Errorf("%v.RollWith() = %d, %v, want 0", d, got, err)
			}
		}
		if src.calls != 0 {
			t.Errorf("%v drew %d values, want 0", d, src.calls)
		}
		if max, err := d.Max(); err != nil || max != 0 {
			t.Errorf("%v.Max() = %d, %v, want 0", d, max, err)
		}
		if min, err := d.Min(); err != nil || min != 0 {
			t.Errorf("%v.Min() = %d, %v, want 0", d, min, err)
		}
	}
}

func TestDice_Evaluation(t *testing.T) {
	tests := []struct {
		name     string
		d        Dice
		wantMin  int
		wantMax  int
		wantMean float64
		wantErr  error
	}{
		{name: "3d6", d: Dice{3, 6}, wantMin: 3, wantMax: 18, wantMean: 10.5},
		{name: "1d20", d: Dice{1, 20}, wantMin: 1, wantMax: 20, wantMean: 10.5},
		{name: "4d0", d: Dice{4, 0}, wantMin: 0, wantMax: 0, wantMean: 0},
		{name: "negative count", d: Dice{-1, 6}, wantErr: diceerrors.ErrCount},
		{name: "negative face", d: Dice{1, -6}, wantErr: diceerrors.ErrFace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, err := tt.d.Min()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Min() error = %v, want %v", err, tt.wantErr)
				}
				if _, err := tt.d.Max(); !errors.Is(err, tt.wantErr) {
					t.Errorf("Max() error = %v, want %v", err, tt.wantErr)
				}
				if _, err := tt.d.RollWith(NewSeededSource(1)); !errors.Is(err, tt.wantErr) {
					t.Errorf("RollWith() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			max, _ := tt.d.Max()
			mean, _ := tt.d.Mean()
			if min != tt.wantMin || max != tt.wantMax || mean != tt.wantMean {
				t.Errorf("min, max, mean = %d, %d, %v, want %d, %d, %v", min, max, mean, tt.wantMin, tt.wantMax, tt.wantMean)
			}
		})
	}
}

func TestDice_RollSourceError(t *testing.T) {
	if _, err := (Dice{2, 6}).RollWith(failingSource{}); err == nil {
		t.Error("RollWith() error = nil, want source error")
	}
}
