package presentation

import (
	"strconv"
)

var sizeUnits = []string{"k", "M", "G"}

// FormatSize renders a byte count. In bytes mode it's the raw count. Otherwise
// counts under 1024 are shown as is and larger ones in the biggest binary unit
// that keeps the value under 1024, to one decimal place.
func FormatSize(size int64, bytes bool) string {
	if bytes || size < 1024 {
		return strconv.FormatInt(size, 10)
	}

	value := float64(size) / 1024
	for i, unit := range sizeUnits {
		formatted := strconv.FormatFloat(value, 'f', 1, 64)
		// 1048575 bytes is 1023.999k, which would round up to "1024.0k"
		if rounded, _ := strconv.ParseFloat(formatted, 64); rounded < 1024 || i == len(sizeUnits)-1 {
			return formatted + unit
		}
		value /= 1024
	}
	return ""
}
