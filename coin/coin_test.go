package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/adminnft/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCoinArithmetic(t *testing.T) {
	Convey("Given a payment of 1.5 IOV", t, func() {
		pay := NewCoin(1, 500000000, "IOV")
		So(pay.Validate(), ShouldBeNil)
		So(pay.IsPositive(), ShouldBeTrue)

		Convey("adding 0.7 IOV carries into the whole part", func() {
			sum, err := pay.Add(NewCoin(0, 700000000, "IOV"))
			So(err, ShouldBeNil)
			So(sum, ShouldResemble, NewCoin(2, 200000000, "IOV"))
		})

		Convey("subtracting 2 IOV gives a negative amount", func() {
			diff, err := pay.Subtract(NewCoin(2, 0, "IOV"))
			So(err, ShouldBeNil)
			So(diff, ShouldResemble, NewCoin(0, -500000000, "IOV"))
			So(diff.IsNonNegative(), ShouldBeFalse)
		})

		Convey("adding its negative gives zero", func() {
			zero, err := pay.Add(pay.Negative())
			So(err, ShouldBeNil)
			So(zero.IsZero(), ShouldBeTrue)
		})

		Convey("another currency cannot be added", func() {
			_, err := pay.Add(NewCoin(1, 0, "ETH"))
			So(errors.ErrCurrency.Is(err), ShouldBeTrue)
		})

		Convey("a zero value without a ticker is neutral", func() {
			sum, err := pay.Add(Coin{})
			So(err, ShouldBeNil)
			So(sum, ShouldResemble, pay)
		})

		Convey("comparison ignores the currency", func() {
			So(pay.Compare(NewCoin(1, 0, "ETH")), ShouldEqual, 1)
			So(pay.Compare(NewCoin(2, 0, "IOV")), ShouldEqual, -1)
			So(pay.Compare(pay), ShouldEqual, 0)
			So(pay.IsGTE(NewCoin(1, 0, "ETH")), ShouldBeFalse)
			So(pay.IsGTE(NewCoin(1, 0, "IOV")), ShouldBeTrue)
		})
	})

	Convey("Overflowing the maximum value fails", t, func() {
		_, err := NewCoin(MaxInt, 0, "IOV").Add(NewCoin(1, 0, "IOV"))
		So(errors.ErrOverflow.Is(err), ShouldBeTrue)
	})
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid":             {coin: NewCoin(5, 0, "IOV")},
		"valid negative":    {coin: NewCoin(-5, -1, "IOV")},
		"lowercase ticker":  {coin: NewCoin(5, 0, "iov"), wantErr: errors.ErrCurrency},
		"missing ticker":    {coin: NewCoin(5, 0, ""), wantErr: errors.ErrCurrency},
		"whole overflow":    {coin: NewCoin(MaxInt+1, 0, "IOV"), wantErr: errors.ErrOverflow},
		"fraction overflow": {coin: NewCoin(0, FracUnit, "IOV"), wantErr: errors.ErrOverflow},
		"mismatched signs":  {coin: NewCoin(1, -1, "IOV"), wantErr: errors.ErrState},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestCoinHumanFormat(t *testing.T) {
	cases := map[string]struct {
		human   string
		want    Coin
		wantErr bool
	}{
		"whole":          {human: "4 IOV", want: NewCoin(4, 0, "IOV")},
		"fraction":       {human: "1.5 IOV", want: NewCoin(1, 500000000, "IOV")},
		"smallest unit":  {human: "0.000000001 ETH", want: NewCoin(0, 1, "ETH")},
		"negative":       {human: "-2.25 IOV", want: NewCoin(-2, -250000000, "IOV")},
		"no space":       {human: "3IOV", want: NewCoin(3, 0, "IOV")},
		"missing ticker": {human: "3", wantErr: true},
		"too precise":    {human: "0.0000000001 IOV", wantErr: true},
		"garbage":        {human: "three IOV", wantErr: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.human)
			if tc.wantErr {
				if !errors.ErrInput.Is(err) {
					t.Fatalf("want input error, got %+v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot parse: %+v", err)
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %#v, got %#v", tc.want, got)
			}

			back, err := ParseHumanFormat(got.String())
			if err != nil {
				t.Fatalf("cannot parse %q: %+v", got.String(), err)
			}
			if !back.Equals(got) {
				t.Fatalf("string form %q does not parse back", got.String())
			}
		})
	}
}

func TestCoinJSON(t *testing.T) {
	var human Coin
	if err := json.Unmarshal([]byte(`"1.25 IOV"`), &human); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if !human.Equals(NewCoin(1, 250000000, "IOV")) {
		t.Fatalf("unexpected coin: %#v", human)
	}

	var obj Coin
	if err := json.Unmarshal([]byte(`{"whole": 3, "ticker": "ETH"}`), &obj); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if !obj.Equals(NewCoin(3, 0, "ETH")) {
		t.Fatalf("unexpected coin: %#v", obj)
	}

	c := NewCoinp(7, 1, "IOV")
	raw, err := c.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	var loaded Coin
	if err := loaded.Unmarshal(raw); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if !loaded.Equals(*c) {
		t.Fatalf("want %#v, got %#v", *c, loaded)
	}
}
