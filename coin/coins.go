package coin

import (
	"strings"

	"github.com/iov-one/adminnft/errors"
)

// Coins represents a set of coins. Most operations require the normalized
// form: sorted by ticker, one coin per ticker and no zero values.
type Coins []*Coin

// CombineCoins creates a normalized Coins containing all given coins.
func CombineCoins(cs ...Coin) (Coins, error) {
	var (
		coins Coins
		err   error
	)
	for _, c := range cs {
		coins, err = coins.Add(c)
		if err != nil {
			return nil, err
		}
	}
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	return coins, nil
}

// Clone returns a copy that can be safely modified.
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a set increased by c. The receiver may be modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}

	has, i := cs.findCoin(c.ID())
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return nil, err
		}
		if sum.IsZero() {
			return append(cs[:i], cs[i+1:]...), nil
		}
		cs[i] = &sum
		return cs, nil
	}

	res := append(cs, nil)
	copy(res[i+1:], res[i:])
	res[i] = &c
	return res, nil
}

// Subtract returns a set decreased by c. The result may hold negative
// amounts.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine creates a new Coins adding all the coins of cs and o together.
func (cs Coins) Combine(o Coins) (Coins, error) {
	var err error
	res := cs.Clone()
	for _, c := range o {
		res, err = res.Add(*c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much coin in the set.
func (cs Coins) Contains(c Coin) bool {
	has, _ := cs.findCoin(c.ID())
	if has == nil {
		return false
	}
	return has.IsGTE(c)
}

// findCoin returns the coin of given ticker and its index. If there is no
// match the coin is nil and the index is where it should be inserted.
func (cs Coins) findCoin(id string) (*Coin, int) {
	for i, c := range cs {
		switch strings.Compare(c.ID(), id) {
		case 0:
			return c, i
		case 1:
			return nil, i
		}
	}
	return nil, len(cs)
}

// IsEmpty returns true if there are no coins.
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsNonNegative returns true if no coin holds a negative amount.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets hold the same amounts.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are valid, non zero and that the set is
// in the normalized form.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrapf(errors.ErrAmount, "zero %s coin", c.Ticker)
		}
		if i > 0 && cs[i-1].Ticker >= c.Ticker {
			return errors.Wrap(errors.ErrCurrency, "coins not sorted or duplicated")
		}
	}
	return nil
}
