package oak

import (
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type (
	// fieldHandler consumes the value of one field and returns the number of
	// bytes it used, or notHandled when the field is kept uninterpreted.
	fieldHandler func(num protowire.Number, typ protowire.Type, bs []byte) (int, error)
	unmarshaler  interface {
		Unmarshal(bs []byte) error
	}
)

const notHandled = -1

// consumeMessage walks the fields of bs. A field handle does not take is
// retained when desc declares it and unknown otherwise.
func consumeMessage(bs []byte, desc protoreflect.MessageDescriptor, extra *extraFields, handle fieldHandler) error {
	for len(bs) > 0 {
		num, typ, tagLen := protowire.ConsumeTag(bs)
		if tagLen < 0 {
			return errors.Wrap(protowire.ParseError(tagLen), "consume tag")
		}
		n, err := handle(num, typ, bs[tagLen:])
		if err != nil {
			return errors.Wrapf(err, "field %d", num)
		}
		if n == notHandled {
			n = protowire.ConsumeFieldValue(num, typ, bs[tagLen:])
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "field %d", num)
			}
			field := bs[:tagLen+n]
			if declared(desc, num, typ) {
				extra.retained = append(extra.retained, rawField{num: num, bs: append([]byte{}, field...)})
			} else {
				extra.unknown = append(extra.unknown, field...)
			}
		}
		bs = bs[tagLen+n:]
	}
	return nil
}

// varintField and the helpers below treat a known field number arriving with
// an unexpected wire type as an unknown field, as protobuf runtimes do.
func varintField(typ protowire.Type, bs []byte, set func(v uint64)) (int, error) {
	if typ != protowire.VarintType {
		return notHandled, nil
	}
	v, n := protowire.ConsumeVarint(bs)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	set(v)
	return n, nil
}

func bytesField(typ protowire.Type, bs []byte, set func(v []byte) error) (int, error) {
	if typ != protowire.BytesType {
		return notHandled, nil
	}
	v, n := protowire.ConsumeBytes(bs)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := set(v); err != nil {
		return 0, err
	}
	return n, nil
}

func stringField(typ protowire.Type, bs []byte, set func(v string)) (int, error) {
	return bytesField(typ, bs, func(v []byte) error {
		if !utf8.Valid(v) {
			return errors.New("string field is not valid UTF-8")
		}
		set(string(v))
		return nil
	})
}

func int32ListField(typ protowire.Type, bs []byte, list *[]int32) (int, error) {
	switch typ {
	case protowire.VarintType:
		return varintField(typ, bs, func(v uint64) {
			*list = append(*list, int32(v))
		})
	case protowire.BytesType:
		return bytesField(typ, bs, func(packed []byte) error {
			for len(packed) > 0 {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return protowire.ParseError(n)
				}
				*list = append(*list, int32(v))
				packed = packed[n:]
			}
			return nil
		})
	}
	return notHandled, nil
}

func messageField[T any, PT interface {
	*T
	unmarshaler
}](typ protowire.Type, bs []byte, list *[]*T) (int, error) {
	return bytesField(typ, bs, func(v []byte) error {
		message := PT(new(T))
		if err := message.Unmarshal(v); err != nil {
			return err
		}
		*list = append(*list, (*T)(message))
		return nil
	})
}

func float32Field(typ protowire.Type, bs []byte, set func(v float32)) (int, error) {
	if typ != protowire.Fixed32Type {
		return notHandled, nil
	}
	v, n := protowire.ConsumeFixed32(bs)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	set(math.Float32frombits(v))
	return n, nil
}

func singleMessageField[T any, PT interface {
	*T
	unmarshaler
}](typ protowire.Type, bs []byte, target **T) (int, error) {
	return bytesField(typ, bs, func(v []byte) error {
		message := PT(new(T))
		if err := message.Unmarshal(v); err != nil {
			return err
		}
		*target = (*T)(message)
		return nil
	})
}

// builder collects encoded fields so that they can be merged with the
// retained ones in field-number order. Zero scalars are skipped, as proto3
// encoders do.
type builder struct {
	fields []rawField
}

func (b *builder) add(num protowire.Number, typ protowire.Type, appendValue func(bs []byte) []byte) {
	bs := protowire.AppendTag(nil, num, typ)
	b.fields = append(b.fields, rawField{num: num, bs: appendValue(bs)})
}

func (b *builder) varint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	b.add(num, protowire.VarintType, func(bs []byte) []byte {
		return protowire.AppendVarint(bs, v)
	})
}

// int32 sign-extends negative values to ten bytes.
func (b *builder) int32(num protowire.Number, v int32) {
	b.varint(num, uint64(int64(v)))
}

func (b *builder) bool(num protowire.Number, v bool) {
	b.varint(num, protowire.EncodeBool(v))
}

func (b *builder) float32(num protowire.Number, v float32) {
	if v == 0 {
		return
	}
	b.add(num, protowire.Fixed32Type, func(bs []byte) []byte {
		return protowire.AppendFixed32(bs, math.Float32bits(v))
	})
}

func (b *builder) bytes(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	b.message(num, v)
}

func (b *builder) string(num protowire.Number, v string) {
	if v == "" {
		return
	}
	b.message(num, []byte(v))
}

// stringList writes every element, empty strings included, since the
// position of each element is meaningful.
func (b *builder) stringList(num protowire.Number, list []string) {
	for _, v := range list {
		b.message(num, []byte(v))
	}
}

func (b *builder) packedInt32(num protowire.Number, list []int32) {
	if len(list) == 0 {
		return
	}
	packed := make([]byte, 0, len(list))
	for _, v := range list {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b.message(num, packed)
}

// message always writes the field, so an empty element of a repeated field
// keeps its place.
func (b *builder) message(num protowire.Number, v []byte) {
	b.add(num, protowire.BytesType, func(bs []byte) []byte {
		return protowire.AppendBytes(bs, v)
	})
}

func (b *builder) finish(extra extraFields) []byte {
	fields := append(b.fields, extra.retained...)
	slices.SortStableFunc(fields, func(x, y rawField) bool {
		return x.num < y.num
	})
	size := len(extra.unknown)
	for _, field := range fields {
		size += len(field.bs)
	}
	bs := make([]byte, 0, size)
	for _, field := range fields {
		bs = append(bs, field.bs...)
	}
	return append(bs, extra.unknown...)
}
