package endian

// Big-endian wire accessors. Callers guarantee len(buf) covers the value.

func ReadUint64(buf []byte) (v uint64) {
	v |= uint64(buf[0]) << 56
	v |= uint64(buf[1]) << 48
	v |= uint64(buf[2]) << 40
	v |= uint64(buf[3]) << 32
	v |= uint64(buf[4]) << 24
	v |= uint64(buf[5]) << 16
	v |= uint64(buf[6]) << 8
	v |= uint64(buf[7])
	return
}

func WriteUint64(buf []byte, v uint64) {
	buf[0] = byte(v >> 56)
	buf[1] = byte(v >> 48)
	buf[2] = byte(v >> 40)
	buf[3] = byte(v >> 32)
	buf[4] = byte(v >> 24)
	buf[5] = byte(v >> 16)
	buf[6] = byte(v >> 8)
	buf[7] = byte(v)
}

func ReadInt64(buf []byte) int64 {
	return int64(ReadUint64(buf))
}

func WriteInt64(buf []byte, v int64) {
	WriteUint64(buf, uint64(v))
}

func ReadUint32(buf []byte) (v uint32) {
	v |= uint32(buf[0]) << 24
	v |= uint32(buf[1]) << 16
	v |= uint32(buf[2]) << 8
	v |= uint32(buf[3])
	return
}

func WriteUint32(buf []byte, v uint32) {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
}

func ReadInt32(buf []byte) int32 {
	return int32(ReadUint32(buf))
}

func WriteInt32(buf []byte, v int32) {
	WriteUint32(buf, uint32(v))
}

func ReadUint16(buf []byte) (v uint16) {
	v |= uint16(buf[0]) << 8
	v |= uint16(buf[1])
	return
}

func WriteUint16(buf []byte, v uint16) {
	buf[0] = byte(v >> 8)
	buf[1] = byte(v)
}

/*
 * little-endian
 */

func ReadLittleUint64(buf []byte) uint64 {
	return Swap64(ReadUint64(buf))
}

func WriteLittleUint64(buf []byte, v uint64) {
	WriteUint64(buf, Swap64(v))
}

func ReadLittleUint32(buf []byte) uint32 {
	return Swap32(ReadUint32(buf))
}

func WriteLittleUint32(buf []byte, v uint32) {
	WriteUint32(buf, Swap32(v))
}

func ReadLittleUint16(buf []byte) uint16 {
	return Swap16(ReadUint16(buf))
}

func WriteLittleUint16(buf []byte, v uint16) {
	WriteUint16(buf, Swap16(v))
}
