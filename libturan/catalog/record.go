package catalog

import (
	"math/big"

	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// ResultRecord is the stored form of a turan.Result.
type ResultRecord struct {
	S      int32   `protobuf:"varint,1,opt,name=s,proto3" json:"s,omitempty"`
	R      int32   `protobuf:"varint,2,opt,name=r,proto3" json:"r,omitempty"`
	Status int32   `protobuf:"varint,3,opt,name=status,proto3" json:"status,omitempty"`
	L      int32   `protobuf:"zigzag32,4,opt,name=l,proto3" json:"l,omitempty"`
	Num    []byte  `protobuf:"bytes,5,opt,name=num,proto3" json:"num,omitempty"`
	Den    []byte  `protobuf:"bytes,6,opt,name=den,proto3" json:"den,omitempty"`
	Refs   []int32 `protobuf:"zigzag32,7,rep,packed,name=refs,proto3" json:"refs,omitempty"`
}

func (m *ResultRecord) Reset()         { *m = ResultRecord{} }
func (m *ResultRecord) String() string { return proto.CompactTextString(m) }
func (*ResultRecord) ProtoMessage()    {}

// ExportRecord fills m from X.
func (m *ResultRecord) ExportRecord(X *turan.Result) {
	*m = ResultRecord{
		S:      int32(X.S),
		R:      int32(X.R),
		Status: int32(X.Status),
		L:      int32(X.L),
	}
	if X.IsKnown() {
		m.Num = X.Num.Bytes()
		m.Den = X.Den.Bytes()
	}
	if len(X.Cite) > 0 {
		m.Refs = make([]int32, len(X.Cite))
		for i, ref := range X.Cite {
			m.Refs[i] = int32(ref)
		}
	}
}

// ImportRecord returns the turan.Result m describes.
func (m *ResultRecord) ImportRecord() (turan.Result, error) {
	X := turan.Result{
		Params: turan.T(int(m.S), int(m.R)),
		Status: turan.Status(m.Status),
		L:      int(m.L),
	}

	switch X.Status {
	case turan.Status_Unknown:
		if X.L != turan.UnknownL {
			return X, errors.Wrapf(turan.ErrUnmarshal, "%v: unknown status with l=%d", X.Params, X.L)
		}
	case turan.Status_Complete, turan.Status_Trivial:
		if len(m.Den) == 0 {
			return X, errors.Wrapf(turan.ErrUnmarshal, "%v: missing denominator", X.Params)
		}
		X.Num = new(big.Int).SetBytes(m.Num)
		X.Den = new(big.Int).SetBytes(m.Den)
	default:
		return X, errors.Wrapf(turan.ErrUnmarshal, "%v: bad status %d", X.Params, m.Status)
	}

	if len(m.Refs) > 0 {
		X.Cite = make(turan.Citation, len(m.Refs))
		for i, ref := range m.Refs {
			X.Cite[i] = turan.RefKey(ref)
		}
	}
	return X, nil
}

// MarshalResult encodes X as a ResultRecord.
func MarshalResult(X *turan.Result) ([]byte, error) {
	var m ResultRecord
	m.ExportRecord(X)
	return proto.Marshal(&m)
}

// UnmarshalResult decodes a ResultRecord written by MarshalResult.
func UnmarshalResult(buf []byte) (turan.Result, error) {
	var m ResultRecord
	if err := proto.Unmarshal(buf, &m); err != nil {
		return turan.Result{}, errors.Wrap(turan.ErrUnmarshal, err.Error())
	}
	return m.ImportRecord()
}
