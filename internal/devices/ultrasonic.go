package devices

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Ultrasonic drives a Grove ultrasonic ranger, which multiplexes trigger and
// echo on a single SIG pin.
type Ultrasonic struct {
	pin gpio.PinIO
}

// NewUltrasonic claims the ranger's SIG pin.
func NewUltrasonic(pinName string) (*Ultrasonic, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("ultrasonic pin %q not found", pinName)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("ultrasonic pin %q: set output: %w", pinName, err)
	}
	return &Ultrasonic{pin: pin}, nil
}

// MeasureCentimeters triggers one ping and converts the echo pulse width to
// centimeters (round trip at ~29µs/cm).
func (u *Ultrasonic) MeasureCentimeters() (float64, error) {
	// Trigger pulse: 2µs low, 5µs high, low.
	if err := u.pin.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("ultrasonic trigger: %w", err)
	}
	time.Sleep(2 * time.Microsecond)
	if err := u.pin.Out(gpio.High); err != nil {
		return 0, fmt.Errorf("ultrasonic trigger: %w", err)
	}
	time.Sleep(5 * time.Microsecond)
	if err := u.pin.Out(gpio.Low); err != nil {
		return 0, fmt.Errorf("ultrasonic trigger: %w", err)
	}

	// Switch to input and time the echo pulse.
	if err := u.pin.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return 0, fmt.Errorf("ultrasonic listen: %w", err)
	}
	if _, err := waitLevel(u.pin, gpio.High, 10*time.Millisecond); err != nil {
		return 0, fmt.Errorf("%w: no echo start", ErrInvalidReading)
	}
	echo, err := waitLevel(u.pin, gpio.Low, 60*time.Millisecond)
	if err != nil {
		return 0, fmt.Errorf("%w: no echo end", ErrInvalidReading)
	}

	return float64(echo.Microseconds()) / 29.0 / 2.0, nil
}
