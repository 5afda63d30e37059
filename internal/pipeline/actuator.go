package pipeline

import (
	"github.com/relabs-tech/grove_controller/internal/hw"
)

// writeBuzzer drives the buzzer's PWM duty cycle.
func writeBuzzer(h hw.Interface, pin string, v float64) error {
	return h.WritePWM(pin, scale255(v))
}

// writeLED shows the value as monochrome brightness on the first LED in the
// chain (equal R, G and B channels).
func writeLED(led ColorLED, v float64) error {
	brightness := scale255(v)
	return led.SetColorRGB(0, brightness, brightness, brightness)
}

// writeDisplay shows the value as four decimal digits.
func writeDisplay(d DigitDisplay, v float64) error {
	return d.WriteDigits(displayDigits(v))
}
