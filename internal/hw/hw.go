// Package hw defines the raw hardware access surface the control loop
// consumes: digital reads, analog reads, and PWM writes addressed by pin name.
package hw

// AnalogMax is the full-scale analog reading. ReadAnalog returns 0..AnalogMax
// regardless of the underlying converter's native resolution.
const AnalogMax = 4095

// Interface is the raw pin-level hardware access consumed by the control loop.
type Interface interface {
	// ReadDigital returns the level of a digital input pin.
	ReadDigital(pin string) (bool, error)
	// ReadAnalog returns an analog sample in 0..AnalogMax.
	ReadAnalog(pin string) (uint16, error)
	// WritePWM sets the duty cycle of an output pin, 0 (off) to 255 (full).
	WritePWM(pin string, duty uint8) error
}
