// Package coin implements the fixed point currency amounts used for mint
// payments and wallets.
package coin

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/errors"
)

// IsCC is the RegExp to ensure valid currency codes.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the largest whole value we accept.
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lowest whole value we accept.
	MinInt = -MaxInt

	// FracUnit is the number of fractional units in a whole one.
	FracUnit int64 = 1000000000 // 10^9
	// MaxFrac is the highest possible fractional value.
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest possible fractional value.
	MinFrac = -MaxFrac
)

// Coin is an amount of a single currency, split into whole and fractional
// units. Both parts share the same sign.
type Coin struct {
	Whole      int64  `json:"whole"`
	Fractional int64  `json:"fractional"`
	Ticker     string `json:"ticker"`
}

// NewCoin creates a new coin object.
func NewCoin(whole, fractional int64, ticker string) Coin {
	return Coin{
		Whole:      whole,
		Fractional: fractional,
		Ticker:     ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

func (c *Coin) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *Coin) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, c)
}

// ID returns the coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Add combines two coins. It returns an error if they are of different
// currencies, or if the result would overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	// A zero value without a ticker has no influence on the result.
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrCurrency, "adding %s to %s", o.Ticker, c.Ticker)
	}
	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Negative returns the opposite coin value.
//   c.Add(c.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -c.Whole,
		Fractional: -c.Fractional,
	}
}

// Subtract given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare checks the values of two normalized coins, without inspecting the
// currency.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Whole > o.Whole:
		return 1
	case c.Whole < o.Whole:
		return -1
	case c.Fractional > o.Fractional:
		return 1
	case c.Fractional < o.Fractional:
		return -1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsEmpty returns true on nil or zero amount.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true if the amount is 0.
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true if the value is greater than 0.
func (c Coin) IsPositive() bool {
	return c.Whole > 0 || (c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true if the value is 0 or higher.
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true if c is of the same currency and at least as large as
// o.
func (c Coin) IsGTE(o Coin) bool {
	return c.SameType(o) && c.Compare(o) >= 0
}

// SameType returns true if both coins have the same currency.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	cpy := *c
	return &cpy
}

// Validate ensures that the coin is in the valid range and has a valid
// currency code. It accepts negative values, so business logic may need
// additional checks.
func (c Coin) Validate() error {
	var err error
	if !IsCC(c.Ticker) {
		err = errors.AppendField(err, "Ticker", errors.Wrapf(errors.ErrCurrency, "invalid currency: %q", c.Ticker))
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		err = errors.AppendField(err, "Whole", errors.ErrOverflow)
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		err = errors.AppendField(err, "Fractional", errors.ErrOverflow)
	}
	if c.Whole != 0 && c.Fractional != 0 && (c.Whole > 0) != (c.Fractional > 0) {
		err = errors.AppendField(err, "Fractional", errors.Wrap(errors.ErrState, "mismatched sign"))
	}
	return err
}

// normalize moves the fractional overflow into the whole part and aligns the
// signs of both parts. It fails if the result is out of range.
func (c Coin) normalize() (Coin, error) {
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole > 0 && c.Fractional < 0 {
		c.Whole--
		c.Fractional += FracUnit
	} else if c.Whole < 0 && c.Fractional > 0 {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.ErrOverflow
	}
	return c, nil
}

// UnmarshalJSON accepts both the human readable "<whole>[.<fractional>]
// <ticker>" string and the object form.
func (c *Coin) UnmarshalJSON(raw []byte) error {
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		parsed, err := ParseHumanFormat(human)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	// An alias type avoids recursing into this method.
	type plainCoin Coin
	var p plainCoin
	if err := json.Unmarshal(raw, &p); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	*c = Coin(p)
	return nil
}

// String returns the human readable representation of the coin, the one
// accepted by ParseHumanFormat.
func (c Coin) String() string {
	if n, err := c.normalize(); err == nil {
		c = n
	}

	var b strings.Builder
	if c.Whole == 0 && c.Fractional < 0 {
		b.WriteString("-")
	}
	b.WriteString(strconv.FormatInt(c.Whole, 10))

	if f := c.Fractional; f != 0 {
		if f < 0 {
			f = -f
		}
		s := strconv.FormatInt(f, 10)
		s = "." + strings.Repeat("0", 9-len(s)) + s
		b.WriteString(strings.TrimRight(s, "0"))
	}

	if c.Ticker != "" {
		b.WriteString(" " + c.Ticker)
	}
	return b.String()
}

var humanCoinFormatRx = regexp.MustCompile(`^(\-?)\s*(\d+)(\.\d{1,9})?\s*([A-Z]{3,4})$`)

// ParseHumanFormat parses a human readable coin representation:
//   "<whole>[.<fractional>] <ticker>"
func ParseHumanFormat(h string) (Coin, error) {
	m := humanCoinFormatRx.FindStringSubmatch(h)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format: %q", h)
	}

	whole, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid whole value: %s", err)
	}

	var fract int64
	if m[3] != "" {
		digits := m[3][1:]
		digits += strings.Repeat("0", 9-len(digits))
		fract, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Coin{}, errors.Wrapf(errors.ErrInput, "invalid fractional value: %s", err)
		}
	}

	if m[1] == "-" {
		whole, fract = -whole, -fract
	}
	return Coin{
		Ticker:     m[4],
		Whole:      whole,
		Fractional: fract,
	}, nil
}
