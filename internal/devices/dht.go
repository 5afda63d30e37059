// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package devices

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// DHT drives a DHT11 humidity/temperature sensor over its single-wire
// protocol. Readings fail with ErrInvalidReading on timeout or checksum
// mismatch; the DHT11 characteristically drops a reading now and then, so
// callers must treat failures as transient.
type DHT struct {
	pin gpio.PinIO
}

// NewDHT claims the sensor pin and leaves the bus idle high.
func NewDHT(pinName string) (*DHT, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("DHT pin %q not found", pinName)
	}
	if err := pin.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("DHT pin %q: set idle: %w", pinName, err)
	}
	return &DHT{pin: pin}, nil
}

// ReadHumidity returns relative humidity in percent (0..100).
func (d *DHT) ReadHumidity() (float64, error) {
	humidity, _, err := d.read()
	return humidity, err
}

// ReadTemperature returns temperature in degrees Celsius.
func (d *DHT) ReadTemperature() (float64, error) {
	_, temperature, err := d.read()
	return temperature, err
}

// read performs one full sensor transaction: start pulse, 40 data bits
// decoded by pulse width, checksum verification.
func (d *DHT) read() (humidity, temperature float64, err error) {
	// Start signal: hold the bus low for at least 18ms, then release.
	if err := d.pin.Out(gpio.Low); err != nil {
		return 0, 0, fmt.Errorf("DHT start pulse: %w", err)
	}
	time.Sleep(18 * time.Millisecond)
	if err := d.pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return 0, 0, fmt.Errorf("DHT release bus: %w", err)
	}

	// Sensor response: 80µs low then 80µs high before the first bit.
	if _, err := waitLevel(d.pin, gpio.Low, time.Millisecond); err != nil {
		return 0, 0, fmt.Errorf("%w: no sensor response", ErrInvalidReading)
	}
	if _, err := waitLevel(d.pin, gpio.High, time.Millisecond); err != nil {
		return 0, 0, fmt.Errorf("%w: no sensor response", ErrInvalidReading)
	}
	if _, err := waitLevel(d.pin, gpio.Low, time.Millisecond); err != nil {
		return 0, 0, fmt.Errorf("%w: response not completed", ErrInvalidReading)
	}

	// 40 data bits: each is 50µs low followed by ~27µs high for a 0 or
	// ~70µs high for a 1.
	var data [5]byte
	for i := 0; i < 40; i++ {
		if _, err := waitLevel(d.pin, gpio.High, time.Millisecond); err != nil {
			return 0, 0, fmt.Errorf("%w: bit %d timeout", ErrInvalidReading, i)
		}
		high, err := waitLevel(d.pin, gpio.Low, time.Millisecond)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bit %d timeout", ErrInvalidReading, i)
		}
		if high > 50*time.Microsecond {
			data[i/8] |= 1 << (7 - i%8)
		}
	}

	// Leave the bus idle high for the next transaction.
	if err := d.pin.Out(gpio.High); err != nil {
		return 0, 0, fmt.Errorf("DHT set idle: %w", err)
	}

	if data[0]+data[1]+data[2]+data[3] != data[4] {
		return 0, 0, fmt.Errorf("%w: checksum mismatch", ErrInvalidReading)
	}

	humidity = float64(data[0]) + float64(data[1])/10
	temperature = float64(data[2]) + float64(data[3])/10
	return humidity, temperature, nil
}

// waitLevel spins until the pin reads level and returns how long the previous
// level lasted. The protocol's pulse widths are tens of microseconds, below
// what edge-triggered waits resolve reliably, so this polls.
func waitLevel(pin gpio.PinIO, level gpio.Level, timeout time.Duration) (time.Duration, error) {
	start := time.Now()
	for pin.Read() != level {
		if time.Since(start) > timeout {
			return 0, fmt.Errorf("timeout waiting for %s", level)
		}
	}
	return time.Since(start), nil
}
