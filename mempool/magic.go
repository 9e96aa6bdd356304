package mempool

import "encoding/binary"

// freeMagic is the 8-byte sentinel written at the start of a Free slot to
// detect reuse/double-free bugs (base spec §3, GLOSSARY).
const freeMagic uint64 = 0x2525252525252525

// Slot is an opaque reference to a fixed-size region inside a Slab. The
// zero value is invalid and never returned by Alloc.
type Slot struct {
	slab *Slab
	off  int
}

func (s Slot) valid() bool {
	return s.slab != nil
}

func (s Slot) header() []byte {
	return s.slab.data[s.off : s.off+8]
}

// isFree reports whether the slot currently carries the sentinel.
func (s Slot) isFree() bool {
	return binary.LittleEndian.Uint64(s.header()) == freeMagic
}

// stampFree writes the sentinel into the slot's first 8 bytes.
func (s Slot) stampFree() {
	binary.LittleEndian.PutUint64(s.header(), freeMagic)
}

// Bytes returns the slot's full backing storage, including the 8-byte
// magic prefix. Alloc zeroes the sentinel before handing the slot out, so
// those 8 bytes read as zero until the caller writes to them.
func (s Slot) Bytes() []byte {
	return s.slab.data[s.off : s.off+s.slab.stride]
}
