package types

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

type hasher struct {
	digest *xxhash.Digest
	buf    []byte
}

func newHasher(kind Kind) *hasher {
	h := &hasher{
		digest: xxhash.New(),
		buf:    make([]byte, 0, 8),
	}

	h.writeString(string(kind))

	return h
}

func (h *hasher) writeUint64(v uint64) {
	h.buf = binary.LittleEndian.AppendUint64(h.buf[:0], v)
	_, _ = h.digest.Write(h.buf)
}

func (h *hasher) writeString(s string) {
	h.writeUint64(uint64(len(s)))
	_, _ = h.digest.WriteString(s)
}

func (h *hasher) writeBool(v bool) {
	if v {
		h.writeUint64(1)
		return
	}

	h.writeUint64(0)
}

func (h *hasher) writeOptionalBool(o Optional[bool]) {
	v, ok := o.Get()
	h.writeBool(ok)

	if ok {
		h.writeBool(v)
	}
}

func (h *hasher) writeOptionalInt(o Optional[int64]) {
	v, ok := o.Get()
	h.writeBool(ok)

	if ok {
		h.writeUint64(uint64(v))
	}
}

func (h *hasher) writeOptionalString(o Optional[string]) {
	v, ok := o.Get()
	h.writeBool(ok)

	if ok {
		h.writeString(v)
	}
}

func (h *hasher) sum() uint64 {
	return h.digest.Sum64()
}

func hashObject[T descriptor](h *hasher, v T) {
	var zero T

	if v == zero {
		h.writeBool(false)
		return
	}

	h.writeBool(true)
	h.writeUint64(v.Hash())
}
