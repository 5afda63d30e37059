// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package pipeline is the sensor-to-actuator control loop: per-sensor readers
// normalizing raw hardware values into [0, 1], per-actuator writers scaling
// them back out to device commands, and the dispatcher that threads one value
// from the selected reader to the selected writer each cycle.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/grove_controller/internal/hw"
)

// Options is the fixed loop configuration, selected once at startup.
type Options struct {
	Sensor   SensorKind
	Actuator ActuatorKind
	// Reverse inverts the value (1 - v) after reading, before writing.
	Reverse  bool
	Interval time.Duration

	ButtonPin string
	LightPin  string
	RotaryPin string
	BuzzerPin string

	// TempMin..TempMin+TempRange °C maps to 0..1.
	TempMin   float64
	TempRange float64
}

// Deps are the hardware collaborators. Only those the selected kinds require
// need to be non-nil; New enforces that.
type Deps struct {
	HW      hw.Interface
	Env     EnvSensor
	Ranger  Rangefinder
	Display DigitDisplay
	LED     ColorLED
	// Sink is optional; nil disables telemetry.
	Sink Sink
}

// Controller owns the selected sensor and actuator for the process lifetime
// and carries the loop's only cross-cycle state: the last normalized value,
// substituted when a read fails transiently.
type Controller struct {
	opts Options
	deps Deps
	last float64
}

// New validates that the dependencies the selected kinds require are present.
func New(opts Options, deps Deps) (*Controller, error) {
	switch opts.Sensor {
	case SensorButton:
		if deps.HW == nil || opts.ButtonPin == "" {
			return nil, fmt.Errorf("button sensor requires hardware interface and SENSOR_BUTTON_PIN")
		}
	case SensorLight:
		if deps.HW == nil || opts.LightPin == "" {
			return nil, fmt.Errorf("light sensor requires hardware interface and SENSOR_LIGHT_PIN")
		}
	case SensorRotary:
		if deps.HW == nil || opts.RotaryPin == "" {
			return nil, fmt.Errorf("rotary sensor requires hardware interface and SENSOR_ROTARY_PIN")
		}
	case SensorUltrasonic:
		if deps.Ranger == nil {
			return nil, fmt.Errorf("ultrasonic sensor requires a rangefinder driver")
		}
	case SensorHumidity, SensorTemperature:
		if deps.Env == nil {
			return nil, fmt.Errorf("%s sensor requires an environment sensor driver", opts.Sensor)
		}
		if opts.Sensor == SensorTemperature && opts.TempRange == 0 {
			return nil, fmt.Errorf("temperature sensor requires a non-zero TEMP_RANGE")
		}
	default:
		return nil, fmt.Errorf("unknown sensor kind %d", opts.Sensor)
	}

	switch opts.Actuator {
	case ActuatorDisplay:
		if deps.Display == nil {
			return nil, fmt.Errorf("display actuator requires a display driver")
		}
	case ActuatorBuzzer:
		if deps.HW == nil || opts.BuzzerPin == "" {
			return nil, fmt.Errorf("buzzer actuator requires hardware interface and ACTUATOR_BUZZ_PIN")
		}
	case ActuatorLED:
		if deps.LED == nil {
			return nil, fmt.Errorf("led actuator requires an LED driver")
		}
	default:
		return nil, fmt.Errorf("unknown actuator kind %d", opts.Actuator)
	}

	return &Controller{opts: opts, deps: deps}, nil
}

// Cycle runs one loop iteration: read, remember, optionally invert, publish,
// write. A failed read degrades to the last known value and is not an error;
// only writer failures are returned, and they do not stop the loop.
func (c *Controller) Cycle() error {
	value, err := c.read()
	if err != nil {
		// Transient sensor failure: hold the previous value.
		value = c.last
	}
	c.last = value

	if c.opts.Reverse {
		value = 1 - value
	}

	if c.deps.Sink != nil {
		c.deps.Sink.Publish(value)
	}

	return c.write(value)
}

// Run cycles forever. The interval elapses after each cycle's work completes,
// so a slow hardware call stretches the period rather than eating the delay.
func (c *Controller) Run() {
	log.Printf("control loop started: sensor=%s actuator=%s reverse=%t interval=%s",
		c.opts.Sensor, c.opts.Actuator, c.opts.Reverse, c.opts.Interval)

	for {
		if err := c.Cycle(); err != nil {
			log.Printf("actuator write error: %v", err)
		}
		time.Sleep(c.opts.Interval)
	}
}

func (c *Controller) read() (float64, error) {
	switch c.opts.Sensor {
	case SensorButton:
		return readButton(c.deps.HW, c.opts.ButtonPin)
	case SensorLight:
		return readLight(c.deps.HW, c.opts.LightPin)
	case SensorRotary:
		return readRotary(c.deps.HW, c.opts.RotaryPin)
	case SensorUltrasonic:
		return readUltrasonic(c.deps.Ranger)
	case SensorHumidity:
		return readHumidity(c.deps.Env)
	case SensorTemperature:
		return readTemperature(c.deps.Env, c.opts.TempMin, c.opts.TempRange)
	default:
		return 0, fmt.Errorf("unknown sensor kind %d", c.opts.Sensor)
	}
}

func (c *Controller) write(value float64) error {
	switch c.opts.Actuator {
	case ActuatorDisplay:
		return writeDisplay(c.deps.Display, value)
	case ActuatorBuzzer:
		return writeBuzzer(c.deps.HW, c.opts.BuzzerPin, value)
	case ActuatorLED:
		return writeLED(c.deps.LED, value)
	default:
		return fmt.Errorf("unknown actuator kind %d", c.opts.Actuator)
	}
}
