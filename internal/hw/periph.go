// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package hw

import (
	"fmt"
	"log"
	"sync"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

// The Pi has no analog inputs; analog channels "A0".."A3" are read through an
// ADS1115 on the I2C bus, wired as single-ended inputs referenced to 3.3V.
const adcReference = 3300 * physic.MilliVolt

var adcChannels = map[string]ads1x15.Channel{
	"A0": ads1x15.Channel0,
	"A1": ads1x15.Channel1,
	"A2": ads1x15.Channel2,
	"A3": ads1x15.Channel3,
}

// Periph implements Interface on top of periph.io: digital pins via the GPIO
// registry, PWM via the pin's hardware PWM, analog via an ADS1115 ADC.
type Periph struct {
	mu      sync.Mutex
	inputs  map[string]gpio.PinIO
	outputs map[string]gpio.PinIO
	bus     i2c.BusCloser
	adc     *ads1x15.Dev
	adcPins map[string]analog.PinADC
}

// NewPeriph initializes the periph host and returns a hardware interface.
// The ADC is opened lazily on the first analog read.
func NewPeriph() (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	return &Periph{
		inputs:  make(map[string]gpio.PinIO),
		outputs: make(map[string]gpio.PinIO),
		adcPins: make(map[string]analog.PinADC),
	}, nil
}

// ReadDigital reads a digital input pin by name (e.g. "GPIO16").
func (p *Periph) ReadDigital(pin string) (bool, error) {
	p.mu.Lock()
	in, ok := p.inputs[pin]
	if !ok {
		in = gpioreg.ByName(pin)
		if in == nil {
			p.mu.Unlock()
			return false, fmt.Errorf("digital pin %q not found", pin)
		}
		if err := in.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			p.mu.Unlock()
			return false, fmt.Errorf("digital pin %q: set input: %w", pin, err)
		}
		p.inputs[pin] = in
	}
	p.mu.Unlock()

	return in.Read() == gpio.High, nil
}

// ReadAnalog reads an ADS1115 channel ("A0".."A3") and scales the sample to
// 0..AnalogMax.
func (p *Periph) ReadAnalog(pin string) (uint16, error) {
	adcPin, err := p.analogPin(pin)
	if err != nil {
		return 0, err
	}

	sample, err := adcPin.Read()
	if err != nil {
		return 0, fmt.Errorf("analog pin %q: read: %w", pin, err)
	}

	counts := int64(sample.V) * AnalogMax / int64(adcReference)
	if counts < 0 {
		counts = 0
	}
	if counts > AnalogMax {
		counts = AnalogMax
	}
	return uint16(counts), nil
}

// WritePWM sets the duty cycle of an output pin, scaling 0..255 to the pin's
// duty range at a fixed 1 kHz carrier.
func (p *Periph) WritePWM(pin string, duty uint8) error {
	p.mu.Lock()
	out, ok := p.outputs[pin]
	if !ok {
		out = gpioreg.ByName(pin)
		if out == nil {
			p.mu.Unlock()
			return fmt.Errorf("output pin %q not found", pin)
		}
		p.outputs[pin] = out
	}
	p.mu.Unlock()

	d := gpio.Duty(int64(duty) * int64(gpio.DutyMax) / 255)
	if err := out.PWM(d, physic.KiloHertz); err != nil {
		return fmt.Errorf("output pin %q: pwm: %w", pin, err)
	}
	return nil
}

// Close releases the I2C bus if the ADC was opened.
func (p *Periph) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bus != nil {
		return p.bus.Close()
	}
	return nil
}

// analogPin returns the ADC pin for a channel name, opening the I2C bus and
// the ADS1115 on first use.
func (p *Periph) analogPin(pin string) (analog.PinADC, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if adcPin, ok := p.adcPins[pin]; ok {
		return adcPin, nil
	}

	ch, ok := adcChannels[pin]
	if !ok {
		return nil, fmt.Errorf("analog pin %q not found (want A0..A3)", pin)
	}

	if p.adc == nil {
		bus, err := i2creg.Open("")
		if err != nil {
			return nil, fmt.Errorf("I2C bus open: %w", err)
		}
		adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
		if err != nil {
			bus.Close()
			return nil, fmt.Errorf("ADS1115 init: %w", err)
		}
		p.bus = bus
		p.adc = adc
		log.Println("ADS1115 ADC initialized")
	}

	adcPin, err := p.adc.PinForChannel(ch, adcReference, 860*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return nil, fmt.Errorf("analog pin %q: channel setup: %w", pin, err)
	}
	p.adcPins[pin] = adcPin
	return adcPin, nil
}
