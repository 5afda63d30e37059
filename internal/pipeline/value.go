package pipeline

import "math"

// clamp01 constrains a normalized value to [0, 1]. NaN collapses to 0 so a
// broken reading can never reach a writer.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// scale255 maps a normalized value to the 8-bit actuator range by
// truncation: 0.5 yields 127, matching the buzzer/LED behavior in the field.
func scale255(v float64) uint8 {
	scaled := clamp01(v) * 255
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}

// displayDigits maps a normalized value to four decimal digits, most
// significant first. The display rounds to nearest (unlike the 8-bit
// writers): four digits of resolution make the truncation bias visible.
func displayDigits(v float64) [4]int {
	n := int(math.Round(clamp01(v) * 10000))
	if n > 9999 {
		n = 9999
	}
	if n < 0 {
		n = 0
	}
	return [4]int{n / 1000 % 10, n / 100 % 10, n / 10 % 10, n % 10}
}
