// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package devices

import (
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/devices/v3/tm1637"
)

// SevenSegment drives a TM1637 4-digit display at typical brightness.
type SevenSegment struct {
	dev *tm1637.Dev
}

// NewSevenSegment opens the display on its clock and data pins.
func NewSevenSegment(clkName, dataName string) (*SevenSegment, error) {
	clk := gpioreg.ByName(clkName)
	if clk == nil {
		return nil, fmt.Errorf("7-segment clock pin %q not found", clkName)
	}
	data := gpioreg.ByName(dataName)
	if data == nil {
		return nil, fmt.Errorf("7-segment data pin %q not found", dataName)
	}

	dev, err := tm1637.New(clk, data)
	if err != nil {
		return nil, fmt.Errorf("7-segment init: %w", err)
	}
	if err := dev.SetBrightness(tm1637.Brightness10); err != nil {
		return nil, fmt.Errorf("7-segment brightness: %w", err)
	}
	return &SevenSegment{dev: dev}, nil
}

// WriteDigits shows four decimal digits, most significant first.
func (s *SevenSegment) WriteDigits(d [4]int) error {
	if _, err := s.dev.Write(tm1637.Digits(d[0], d[1], d[2], d[3])); err != nil {
		return fmt.Errorf("7-segment write: %w", err)
	}
	return nil
}
