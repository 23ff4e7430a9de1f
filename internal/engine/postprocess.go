package engine

// UpdateBytes advances a running CRC register through p one byte at a time,
// using the same T0-driven rule every backend's tail falls back to. It is
// exported for the stream driver's length fold, which needs to run the
// rule over a handful of length bytes, not a whole backend.
func UpdateBytes(crc uint32, p []byte) uint32 {
	return updateBytes(crc, p)
}

// AppendMinimalBigEndian appends the minimal big-endian encoding of length
// to dst: no leading zero byte, and no bytes at all when length is zero.
// This is the length-bytes encoding folded into the CRC before the final
// complement.
func AppendMinimalBigEndian(dst []byte, length uint64) []byte {
	if length == 0 {
		return dst
	}
	var buf [8]byte
	buf[0] = byte(length >> 56)
	buf[1] = byte(length >> 48)
	buf[2] = byte(length >> 40)
	buf[3] = byte(length >> 32)
	buf[4] = byte(length >> 24)
	buf[5] = byte(length >> 16)
	buf[6] = byte(length >> 8)
	buf[7] = byte(length)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	return append(dst, buf[i:]...)
}

// Complement returns the bit-inverted CRC, the final step of the POSIX
// cksum post-processing: final = (~crc) & 0xFFFFFFFF.
func Complement(crc uint32) uint32 {
	return ^crc
}
