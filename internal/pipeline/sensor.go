// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package pipeline

import (
	"github.com/relabs-tech/grove_controller/internal/hw"
)

// Per-sensor normalization constants. The light sensor saturates above 1023
// counts (the clamp absorbs the excess); the rotary spans the full 12-bit
// range with a dead zone near zero that swallows potentiometer noise.
const (
	lightRawMax    = 1023
	rotarySpan     = 4096
	rotaryDeadZone = 26
	rangeMaxCM     = 100
)

// readButton maps a digital pin to 0 or 1.
func readButton(h hw.Interface, pin string) (float64, error) {
	high, err := h.ReadDigital(pin)
	if err != nil {
		return 0, err
	}
	if high {
		return 1, nil
	}
	return 0, nil
}

// readLight inverts the light sensor so darkness reads high.
func readLight(h hw.Interface, pin string) (float64, error) {
	raw, err := h.ReadAnalog(pin)
	if err != nil {
		return 0, err
	}
	return clamp01(1 - float64(raw)/lightRawMax), nil
}

// readRotary normalizes the rotary angle sensor over its 12-bit span.
// Raw values below the dead zone read exactly 0.
func readRotary(h hw.Interface, pin string) (float64, error) {
	raw, err := h.ReadAnalog(pin)
	if err != nil {
		return 0, err
	}
	if raw < rotaryDeadZone {
		return 0, nil
	}
	return clamp01(float64(raw) / rotarySpan), nil
}

// readUltrasonic maps 0..100cm to 0..1, clamping beyond.
func readUltrasonic(r Rangefinder) (float64, error) {
	cm, err := r.MeasureCentimeters()
	if err != nil {
		return 0, err
	}
	return clamp01(cm / rangeMaxCM), nil
}

// readHumidity maps percent to 0..1.
func readHumidity(env EnvSensor) (float64, error) {
	percent, err := env.ReadHumidity()
	if err != nil {
		return 0, err
	}
	return clamp01(percent / 100), nil
}

// readTemperature maps minC..minC+rangeC to 0..1, clamping beyond.
func readTemperature(env EnvSensor, minC, rangeC float64) (float64, error) {
	deg, err := env.ReadTemperature()
	if err != nil {
		return 0, err
	}
	return clamp01((deg - minC) / rangeC), nil
}
