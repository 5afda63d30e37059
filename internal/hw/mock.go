package hw

import (
	"math"
	"time"
)

// Mock is a simulated hardware interface for bench-testing the control loop
// without a Pi. Analog pins sweep smoothly, the digital pin toggles every two
// seconds, and PWM writes are remembered for inspection.
type Mock struct {
	start   time.Time
	LastPWM map[string]uint8
}

// NewMock creates a mock hardware interface that generates smooth changing
// values.
func NewMock() *Mock {
	return &Mock{
		start:   time.Now(),
		LastPWM: make(map[string]uint8),
	}
}

func (m *Mock) ReadDigital(pin string) (bool, error) {
	elapsed := time.Since(m.start).Seconds()
	return int(elapsed/2)%2 == 1, nil
}

func (m *Mock) ReadAnalog(pin string) (uint16, error) {
	elapsed := time.Since(m.start).Seconds()
	v := (math.Sin(elapsed) + 1) / 2
	return uint16(v * AnalogMax), nil
}

func (m *Mock) WritePWM(pin string, duty uint8) error {
	m.LastPWM[pin] = duty
	return nil
}
