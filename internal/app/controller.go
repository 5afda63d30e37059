// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/grove_controller/internal/config"
	"github.com/relabs-tech/grove_controller/internal/devices"
	"github.com/relabs-tech/grove_controller/internal/hw"
	"github.com/relabs-tech/grove_controller/internal/pipeline"
	"github.com/relabs-tech/grove_controller/internal/telemetry"
)

// RunController wires the configured sensor and actuator to the real hardware
// and runs the control loop until power-off.
func RunController() error {
	cfg := config.Get()

	sensor, err := pipeline.ParseSensorKind(cfg.Sensor)
	if err != nil {
		return fmt.Errorf("config SENSOR: %w", err)
	}
	actuator, err := pipeline.ParseActuatorKind(cfg.Actuator)
	if err != nil {
		return fmt.Errorf("config ACTUATOR: %w", err)
	}

	hardware, err := hw.NewPeriph()
	if err != nil {
		return err
	}
	defer hardware.Close()

	deps := pipeline.Deps{HW: hardware}

	// One-time device initialization, only for the selected kinds.
	switch sensor {
	case pipeline.SensorUltrasonic:
		ranger, err := devices.NewUltrasonic(cfg.UltrasonicPin)
		if err != nil {
			return fmt.Errorf("ultrasonic init: %w", err)
		}
		deps.Ranger = ranger
	case pipeline.SensorHumidity, pipeline.SensorTemperature:
		env, err := devices.NewDHT(cfg.DHTPin)
		if err != nil {
			return fmt.Errorf("DHT init: %w", err)
		}
		deps.Env = env
	}

	switch actuator {
	case pipeline.ActuatorDisplay:
		display, err := devices.NewSevenSegment(cfg.DisplayClkPin, cfg.DisplayDataPin)
		if err != nil {
			return fmt.Errorf("display init: %w", err)
		}
		deps.Display = display
		log.Println("7-segment display initialized")
	case pipeline.ActuatorLED:
		led, err := devices.NewChainableLED(cfg.LEDClkPin, cfg.LEDDataPin, cfg.LEDCount)
		if err != nil {
			return fmt.Errorf("chainable LED init: %w", err)
		}
		deps.LED = led
		log.Printf("chainable LED initialized (%d in chain)", cfg.LEDCount)
	}

	// Telemetry is optional: no broker configured means no sink, and a broker
	// that is down must not keep the loop from running.
	if cfg.MQTTBroker != "" {
		publisher, err := telemetry.NewPublisher(cfg.MQTTBroker, cfg.MQTTClientIDController, cfg.TopicValue, cfg.PublishEvery)
		if err != nil {
			log.Printf("WARNING: telemetry disabled, MQTT connect failed: %v", err)
		} else {
			defer publisher.Close()
			deps.Sink = publisher
		}
	}

	ctrl, err := pipeline.New(pipeline.Options{
		Sensor:    sensor,
		Actuator:  actuator,
		Reverse:   cfg.Reverse,
		Interval:  time.Duration(cfg.IntervalMS) * time.Millisecond,
		ButtonPin: cfg.ButtonPin,
		LightPin:  cfg.LightPin,
		RotaryPin: cfg.RotaryPin,
		BuzzerPin: cfg.BuzzerPin,
		TempMin:   cfg.TempMin,
		TempRange: cfg.TempRange,
	}, deps)
	if err != nil {
		return err
	}

	ctrl.Run()
	return nil
}
