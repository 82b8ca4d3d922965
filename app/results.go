package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// ResultSet is the envelope of every query response. The keys and the
// values of the matching models are sent as two result sets of the same
// length.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

var _ proto.Message = (*ResultSet)(nil)

func (m *ResultSet) Reset()         { *m = ResultSet{} }
func (m *ResultSet) String() string { return proto.CompactTextString(m) }
func (*ResultSet) ProtoMessage()    {}

// resultsTag is the key of the repeated results field: field 1, wire type
// bytes.
const resultsTag = 1<<3 | proto.WireBytes

// Marshal writes the protobuf encoding. The single repeated bytes field is
// encoded directly, so that the proto package never calls back into this
// method.
func (m *ResultSet) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	for _, r := range m.Results {
		if err := buf.EncodeVarint(resultsTag); err != nil {
			return nil, errors.Wrap(err, "results tag")
		}
		if err := buf.EncodeRawBytes(r); err != nil {
			return nil, errors.Wrap(err, "result")
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal reads what Marshal wrote. Any other field is rejected.
func (m *ResultSet) Unmarshal(bz []byte) error {
	var results [][]byte
	for len(bz) > 0 {
		tag, n := proto.DecodeVarint(bz)
		if n == 0 {
			return errors.Wrap(errors.ErrInput, "malformed tag")
		}
		if tag != resultsTag {
			return errors.Wrapf(errors.ErrInput, "unexpected tag %d", tag)
		}
		bz = bz[n:]

		size, n := proto.DecodeVarint(bz)
		if n == 0 || uint64(len(bz)-n) < size {
			return errors.Wrap(errors.ErrInput, "truncated result")
		}
		bz = bz[n:]
		results = append(results, append([]byte{}, bz[:size]...))
		bz = bz[size:]
	}
	m.Results = results
	return nil
}

// ResultsFromKeys returns a ResultSet of all keys given a set of models.
func ResultsFromKeys(models []adminnft.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values given a set of models.
func ResultsFromValues(models []adminnft.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues and makes them a
// consistent whole again.
func JoinResults(keys, values *ResultSet) ([]adminnft.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(kref), len(vref))
	}
	mods := make([]adminnft.Model, len(kref))
	for i := range mods {
		mods[i] = adminnft.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult will parse a result set, and if it is not empty,
// unmarshal the first result into o.
func UnmarshalOneResult(bz []byte, o adminnft.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return errors.Wrap(err, "result set")
	}
	if len(res.Results) == 0 {
		return nil
	}
	return o.Unmarshal(res.Results[0])
}
