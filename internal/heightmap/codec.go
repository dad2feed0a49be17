package heightmap

import (
	"encoding/binary"
)

// Decode turns raw file bytes into samples. In 16 bit mode the bytes are
// read as little-endian pairs and a trailing odd byte is dropped.
func Decode(data []byte, depth BitDepth) Samples {
	if depth == Depth16 {
		samples := make(U16Samples, len(data)/2)
		for i := range samples {
			samples[i] = binary.LittleEndian.Uint16(data[2*i:])
		}
		return samples
	}

	samples := make(U8Samples, len(data))
	copy(samples, data)
	return samples
}

// Encode serialises samples back into their raw little-endian form.
// The result is always Len() * BitDepth().Bytes() long.
func Encode(samples Samples) []byte {
	switch s := samples.(type) {
	case U8Samples:
		data := make([]byte, len(s))
		copy(data, s)
		return data
	case U16Samples:
		data := make([]byte, 2*len(s))
		for i, v := range s {
			binary.LittleEndian.PutUint16(data[2*i:], v)
		}
		return data
	}

	return nil
}
