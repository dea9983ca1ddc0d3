package core

import (
	"errors"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// ErrInvalidSliceLength indicates a stored slice header that cannot
// describe real data: negative, or larger than the remaining buffer.
var ErrInvalidSliceLength = errors.New("invalid slice length")

// Hand-written MUS serializers for the catalog store. The record shape
// is small and changes rarely, so the serializers are maintained here
// instead of being generated.

var (
	// IDMUS serializes IDs.
	IDMUS = idSerializer{}
	// ETFMUS serializes ETF records.
	ETFMUS = etfSerializer{}
)

type idSerializer struct{}

func (idSerializer) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSerializer) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSerializer) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idSerializer) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type etfSerializer struct{}

func (etfSerializer) Marshal(e ETF, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(e.Id), bs)
	for _, s := range []string{
		e.Name, e.ISIN, e.Category, e.Description, e.Region, e.Type,
		e.Replication, e.Availability, e.Issuer, e.Symbol,
	} {
		n += ord.String.Marshal(s, bs[n:])
	}
	for _, ss := range [][]string{e.Sectors, e.Tags, e.Strategies} {
		n += marshalStringSlice(ss, bs[n:])
	}
	for _, f := range []*float64{e.Fees, e.Performance, e.ESGScore, e.Price} {
		n += marshalFloatPtr(f, bs[n:])
	}
	n += marshalIntPtr(e.Risk, bs[n:])
	n += marshalTime(e.InsertedAt, bs[n:])
	n += marshalTime(e.UpdatedAt, bs[n:])
	return n
}

func (etfSerializer) Unmarshal(bs []byte) (e ETF, n int, err error) {
	id, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Id = ID(id)

	var n1 int
	for _, dst := range []*string{
		&e.Name, &e.ISIN, &e.Category, &e.Description, &e.Region, &e.Type,
		&e.Replication, &e.Availability, &e.Issuer, &e.Symbol,
	} {
		*dst, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for _, dst := range []*[]string{&e.Sectors, &e.Tags, &e.Strategies} {
		*dst, n1, err = unmarshalStringSlice(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for _, dst := range []**float64{&e.Fees, &e.Performance, &e.ESGScore, &e.Price} {
		*dst, n1, err = unmarshalFloatPtr(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	e.Risk, n1, err = unmarshalIntPtr(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.InsertedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.UpdatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	return
}

func (etfSerializer) Size(e ETF) (size int) {
	size = varint.Uint64.Size(uint64(e.Id))
	for _, s := range []string{
		e.Name, e.ISIN, e.Category, e.Description, e.Region, e.Type,
		e.Replication, e.Availability, e.Issuer, e.Symbol,
	} {
		size += ord.String.Size(s)
	}
	for _, ss := range [][]string{e.Sectors, e.Tags, e.Strategies} {
		size += sizeStringSlice(ss)
	}
	for _, f := range []*float64{e.Fees, e.Performance, e.ESGScore, e.Price} {
		size += sizeFloatPtr(f)
	}
	size += sizeIntPtr(e.Risk)
	size += sizeTime(e.InsertedAt)
	size += sizeTime(e.UpdatedAt)
	return size
}

func marshalStringSlice(ss []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(ss), bs)
	for _, s := range ss {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (ss []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil || length == 0 {
		return nil, n, err
	}
	// Every element occupies at least one byte, so a header exceeding
	// the remaining buffer is corrupt, not just truncated.
	if length < 0 || length > len(bs)-n {
		return nil, n, ErrInvalidSliceLength
	}
	ss = make([]string, length)
	var n1 int
	for i := range ss {
		ss[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
	}
	return ss, n, nil
}

func sizeStringSlice(ss []string) (size int) {
	size = varint.Int.Size(len(ss))
	for _, s := range ss {
		size += ord.String.Size(s)
	}
	return size
}

func marshalFloatPtr(f *float64, bs []byte) (n int) {
	n = ord.Bool.Marshal(f != nil, bs)
	if f != nil {
		n += raw.Float64.Marshal(*f, bs[n:])
	}
	return n
}

func unmarshalFloatPtr(bs []byte) (f *float64, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return nil, n, err
	}
	v, n1, err := raw.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, n, err
	}
	return &v, n, nil
}

func sizeFloatPtr(f *float64) (size int) {
	size = ord.Bool.Size(f != nil)
	if f != nil {
		size += raw.Float64.Size(*f)
	}
	return size
}

func marshalIntPtr(i *int, bs []byte) (n int) {
	n = ord.Bool.Marshal(i != nil, bs)
	if i != nil {
		n += varint.Int.Marshal(*i, bs[n:])
	}
	return n
}

func unmarshalIntPtr(bs []byte) (i *int, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return nil, n, err
	}
	v, n1, err := varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return nil, n, err
	}
	return &v, n, nil
}

func sizeIntPtr(i *int) (size int) {
	size = ord.Bool.Size(i != nil)
	if i != nil {
		size += varint.Int.Size(*i)
	}
	return size
}

// Timestamps are stored as microseconds since the Unix epoch; the zero
// time is stored as a separate absent marker so it survives a round trip.
func marshalTime(t time.Time, bs []byte) (n int) {
	n = ord.Bool.Marshal(!t.IsZero(), bs)
	if !t.IsZero() {
		n += varint.Int64.Marshal(t.UnixMicro(), bs[n:])
	}
	return n
}

func unmarshalTime(bs []byte) (t time.Time, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return time.Time{}, n, err
	}
	v, n1, err := varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) (size int) {
	size = ord.Bool.Size(!t.IsZero())
	if !t.IsZero() {
		size += varint.Int64.Size(t.UnixMicro())
	}
	return size
}
