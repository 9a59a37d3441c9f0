// Package probability computes exact outcome distributions for dice.
package probability

import (
	"math"
	"math/big"
	"sort"

	"github.com/aasmall/asciigraph"
	"github.com/aasmall/gurpsdice/lib/dice"
	"gonum.org/v1/gonum/stat"
)

// Distribution maps each possible total to its probability in percent.
type Distribution map[int]float64

//DiceProbability returns a map of results to probabilities (in percent) for count dice of sides faces.
//A throw with no dice, or with zero-sided dice, always totals 0.
//credit to https://stackoverflow.com/questions/50690348/calculate-probability-of-a-fair-dice-roll-in-non-exponential-time
func DiceProbability(count, sides int) Distribution {
	if count == 0 || sides == 0 {
		return Distribution{0: 100}
	}
	mw := newMemoWrap()
	d := mw.outcomes(count, sides)
	var sum float64
	for _, v := range d {
		sum += v
	}
	denominator := sum / 100
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k] = v / denominator
	}
	return out
}

// ForDice returns the distribution of d's rolls.
func ForDice(d dice.Dice) (Distribution, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return DiceProbability(d.Count, d.Face), nil
}

// ForBonusDice returns the distribution of b's rolls, bonus included.
func ForBonusDice(b dice.BonusDice) (Distribution, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return DiceProbability(b.Count, b.Face).Shift(b.Bonus), nil
}

type memoKey struct {
	count, sides int
}

type memoWrap struct {
	cache map[memoKey]map[int]float64
}

func newMemoWrap() *memoWrap {
	return &memoWrap{cache: make(map[memoKey]map[int]float64)}
}

// outcomes counts the ways count dice with faces 1..sides reach each total,
// by choosing how many of them show the highest face and recursing on the rest.
func (mw *memoWrap) outcomes(count, sides int) map[int]float64 {
	key := memoKey{count, sides}
	if val, ok := mw.cache[key]; ok {
		return val
	}
	d := make(map[int]float64)
	if count == 0 {
		d[0] = 1
	} else if sides != 0 {
		for countShowingMax := 0; countShowingMax <= count; countShowingMax++ {
			d1 := mw.outcomes(count-countShowingMax, sides-1)
			sumShowingMax := countShowingMax * sides
			multiplier := binomial(count, countShowingMax)
			for k, v := range d1 {
				d[sumShowingMax+k] += multiplier * v
			}
		}
	}
	mw.cache[key] = d
	return d
}

func binomial(n, k int) float64 {
	f, _ := new(big.Float).SetInt(new(big.Int).Binomial(int64(n), int64(k))).Float64()
	return f
}

// Shift returns a copy of d with every total moved by n.
func (d Distribution) Shift(n int) Distribution {
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k+n] = v
	}
	return out
}

// Totals returns the possible totals in ascending order.
func (d Distribution) Totals() []int {
	totals := make([]int, 0, len(d))
	for k := range d {
		totals = append(totals, k)
	}
	sort.Ints(totals)
	return totals
}

func (d Distribution) series() (x, weights []float64) {
	for _, k := range d.Totals() {
		x = append(x, float64(k))
		weights = append(weights, d[k])
	}
	return x, weights
}

// Mean returns the expected total.
func (d Distribution) Mean() float64 {
	x, w := d.series()
	return stat.Mean(x, w)
}

// StdDev returns the population standard deviation of the total.
func (d Distribution) StdDev() float64 {
	x, w := d.series()
	return math.Sqrt(stat.PopVariance(x, w))
}

// AtLeast returns the chance, in percent, of rolling target or more.
func (d Distribution) AtLeast(target int) float64 {
	var p float64
	for k, v := range d {
		if k >= target {
			p += v
		}
	}
	return p
}

// AtMost returns the chance, in percent, of rolling target or less. GURPS
// success rolls are 3d6 at most a skill level.
func (d Distribution) AtMost(target int) float64 {
	var p float64
	for k, v := range d {
		if k <= target {
			p += v
		}
	}
	return p
}

// Plot renders the distribution as an ASCII line chart, lowest total first.
// The series is padded with the zero chance of one below the minimum and one
// above the maximum, so flat distributions still have a vertical range.
func (d Distribution) Plot(caption string) string {
	_, w := d.series()
	if len(w) == 0 {
		return ""
	}
	series := make([]float64, 0, len(w)+2)
	series = append(series, 0)
	series = append(series, w...)
	series = append(series, 0)
	return asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Caption(caption))
}
