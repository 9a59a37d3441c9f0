// Package equivalence normalises GURPS dice under a configured rounding
// convention and tabulates bonus-for-dice trades.
package equivalence

import (
	"fmt"

	"github.com/aasmall/gurpsdice/lib/dice"
	"github.com/aasmall/gurpsdice/lib/logger"
	"github.com/aasmall/gurpsdice/lib/probability"
	"github.com/davecgh/go-spew/spew"
)

// Normalizer rounds BonusDice to their canonical form.
type Normalizer struct {
	roundSeven bool
	tableCount int
	log        *logger.Logger
}

// NewNormalizer returns a Normalizer for cfg that logs to log.
func NewNormalizer(cfg *Config, log *logger.Logger) *Normalizer {
	return &Normalizer{
		roundSeven: cfg.RoundSeven,
		tableCount: cfg.TableCount,
		log:        log,
	}
}

// Normalize returns the canonical equivalent of b. b is not modified.
func (n *Normalizer) Normalize(b dice.BonusDice) (dice.BonusDice, error) {
	rounded, err := b.Rounded(n.roundSeven)
	if err != nil {
		n.log.Errorf("could not normalize %s: %v", b, err)
		return dice.BonusDice{}, err
	}
	if n.log.Debugging() {
		n.log.Debug(spew.Sprintf("normalized %+v -> %+v (round seven: %v)", b, rounded, n.roundSeven))
	}
	return rounded, nil
}

// Equivalent reports whether a and b have the same canonical form.
func (n *Normalizer) Equivalent(a, b dice.BonusDice) (bool, error) {
	ca, err := n.Normalize(a)
	if err != nil {
		return false, err
	}
	cb, err := n.Normalize(b)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}

// Entry is one row of an equivalence table.
type Entry struct {
	Input         dice.BonusDice
	Canonical     dice.BonusDice
	InputMean     float64
	CanonicalMean float64
}

func (e Entry) String() string {
	return fmt.Sprintf("%s = %s (mean %.1f -> %.1f)", e.Input, e.Canonical, e.InputMean, e.CanonicalMean)
}

// Table normalises the configured dice count with every bonus from minBonus to
// maxBonus inclusive.
func (n *Normalizer) Table(minBonus, maxBonus int) ([]Entry, error) {
	if minBonus > maxBonus {
		return nil, fmt.Errorf("empty bonus range: %d > %d", minBonus, maxBonus)
	}
	entries := make([]Entry, 0, maxBonus-minBonus+1)
	for bonus := minBonus; bonus <= maxBonus; bonus++ {
		input, err := dice.NewBonusDice(n.tableCount, bonus)
		if err != nil {
			return nil, err
		}
		canonical, err := n.Normalize(input)
		if err != nil {
			return nil, err
		}
		inputDist, err := probability.ForBonusDice(input)
		if err != nil {
			return nil, err
		}
		canonicalDist, err := probability.ForBonusDice(canonical)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Input:         input,
			Canonical:     canonical,
			InputMean:     inputDist.Mean(),
			CanonicalMean: canonicalDist.Mean(),
		})
	}
	n.log.Infof("built equivalence table for %dd6%+d..%+d", n.tableCount, minBonus, maxBonus)
	return entries, nil
}
