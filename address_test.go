package adminnft_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("address is printed as upper case hex", t, func() {
		addr := adminnft.NewAddress([]byte("some condition"))
		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", []byte(addr)))
		So(adminnft.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("condition keeps its prefix readable", t, func() {
		cond := adminnft.NewCondition("sigs", "ed25519", []byte{0xAB, 0x01})
		So(cond.String(), ShouldEqual, "sigs/ed25519/AB01")
		So(cond.Validate(), ShouldBeNil)
	})
}

func TestAddressUnmarshalJSON(t *testing.T) {
	cond := adminnft.NewCondition("foo", "bar", []byte("conditiondata"))
	addr := cond.Address()
	hexAddr := hex.EncodeToString(addr)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr adminnft.Address
	}{
		"default decoding": {
			json:     `"` + hexAddr + `"`,
			wantAddr: addr,
		},
		"upper case hex": {
			json:     `"` + strings.ToUpper(hexAddr) + `"`,
			wantAddr: addr,
		},
		"hex decoding": {
			json:     `"hex:` + hexAddr + `"`,
			wantAddr: addr,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: addr,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"short address": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a adminnft.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("got error: %+v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAddr, a)
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := adminnft.NewCondition("foo", "bar", []byte{1, 2, 3}).Address()
	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var got adminnft.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestAddressBech32(t *testing.T) {
	addr := adminnft.NewCondition("foo", "bar", []byte("x")).Address()
	enc, err := addr.Bech32()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(enc, "bech32:"+adminnft.AddressHRP+"1"), enc)

	got, err := adminnft.ParseAddress(enc)
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	_, err = adminnft.ParseAddress("bech32:nft1broken")
	assert.True(t, errors.ErrInput.Is(err))
}

func TestAddressClone(t *testing.T) {
	addr := adminnft.NewAddress([]byte("original"))
	cpy := addr.Clone()
	require.True(t, addr.Equals(cpy))
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
	assert.Nil(t, adminnft.Address(nil).Clone())
}

func TestAddressValidate(t *testing.T) {
	assert.True(t, errors.ErrEmpty.Is(adminnft.Address(nil).Validate()))
	assert.True(t, errors.ErrInput.Is(adminnft.Address([]byte{1, 2}).Validate()))
	assert.NoError(t, adminnft.NewAddress([]byte("foo")).Validate())
}

func TestConditionParse(t *testing.T) {
	cond := adminnft.NewCondition("nft", "pool", []byte{0, 0, 1})
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "nft", ext)
	assert.Equal(t, "pool", typ)
	assert.Equal(t, []byte{0, 0, 1}, data)

	_, _, _, err = adminnft.Condition("no slashes").Parse()
	assert.True(t, errors.ErrInput.Is(err))
	assert.True(t, errors.ErrInput.Is(adminnft.Condition("a/b/c").Validate()))
}
