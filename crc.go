package shortcrypt

import "github.com/snksoft/crc"

// crc8CDMA2000Params and crc64WEParams describe the two external CRC
// collaborators the key schedule and core transform depend on (spec §6).
// Neither variant ships with Go's standard library hash/crc64 package
// (which only builds reflected tables), so both are expressed with
// snksoft/crc's generic parameterized engine — the Go counterpart of the
// crc_any crate the reference Rust implementation depends on.
var (
	crc8CDMA2000Params = &crc.Parameters{
		Width:      8,
		Polynomial: 0x9B,
		Init:       0xFF,
		ReflectIn:  false,
		ReflectOut: false,
		FinalXor:   0x00,
	}

	crc64WEParams = &crc.Parameters{
		Width:      64,
		Polynomial: 0x42F0E1EBA9EA3693,
		Init:       0xFFFFFFFFFFFFFFFF,
		ReflectIn:  false,
		ReflectOut: false,
		FinalXor:   0xFFFFFFFFFFFFFFFF,
	}
)

// crc8CDMA2000 computes the one-byte CRC-8/CDMA2000 of data.
func crc8CDMA2000(data []byte) byte {
	return byte(crc.CalculateCRC(crc8CDMA2000Params, data))
}

// crc64WE computes the eight-byte CRC-64/WE (Wolfgang Ehrhardt) of data.
func crc64WE(data []byte) uint64 {
	return crc.CalculateCRC(crc64WEParams, data)
}
