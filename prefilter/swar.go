package prefilter

import "encoding/binary"

// indexByteSWAR finds the first occurrence of b in haystack at or after
// start, processing 8 bytes at a time as a uint64 (SIMD Within A Register),
// the same technique as simd/ascii_generic.go's isASCIIGeneric but adapted
// from "does this chunk have any high bit set" to "does this chunk contain
// byte b" via the classic broadcast-xor-haszero trick.
func indexByteSWAR(haystack []byte, start int, b byte) int {
	data := haystack[start:]
	n := len(data)

	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] == b {
				return start + i
			}
		}
		return -1
	}

	const lo = uint64(0x0101010101010101)
	const hi = uint64(0x8080808080808080)
	broadcast := lo * uint64(b)

	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		x := chunk ^ broadcast
		// haszero(x): a byte in x is zero iff that byte equaled b.
		if (x-lo)&^x&hi != 0 {
			for i := idx; i < idx+8; i++ {
				if data[i] == b {
					return start + i
				}
			}
		}
		idx += 8
	}

	for idx < n {
		if data[idx] == b {
			return start + idx
		}
		idx++
	}

	return -1
}
