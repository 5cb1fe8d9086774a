package format

import "strconv"

// FormatDec renders v in decimal.
func FormatDec(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// FormatHex renders v as 0x followed by lowercase hex digits without
// leading zeros. Zero renders as 0x0.
func FormatHex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// ParseSize parses an unsigned decimal size. Empty, non-numeric and
// out-of-range text all yield 0, which callers reject as a non-positive size.
// The whole token must be digits: a numeric prefix such as "12abc" is not
// read as 12.
func ParseSize(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}
