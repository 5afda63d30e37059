package app

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/relabs-tech/grove_controller/internal/config"
	"github.com/relabs-tech/grove_controller/internal/hw"
	"github.com/relabs-tech/grove_controller/internal/pipeline"
	"github.com/relabs-tech/grove_controller/internal/telemetry"
)

// mockEnv generates smooth humidity and temperature readings for bench runs.
type mockEnv struct {
	start time.Time
}

func (m *mockEnv) ReadHumidity() (float64, error) {
	elapsed := time.Since(m.start).Seconds()
	return 50 + 30*math.Sin(elapsed*0.3), nil
}

func (m *mockEnv) ReadTemperature() (float64, error) {
	elapsed := time.Since(m.start).Seconds()
	return 20 + 8*math.Sin(elapsed*0.2), nil
}

// mockRanger sweeps between 0 and 100cm.
type mockRanger struct {
	start time.Time
}

func (m *mockRanger) MeasureCentimeters() (float64, error) {
	elapsed := time.Since(m.start).Seconds()
	return 50 + 50*math.Sin(elapsed*0.5), nil
}

// logDisplay and logLED stand in for the actuator drivers, printing the
// commands they would issue.
type logDisplay struct{}

func (logDisplay) WriteDigits(d [4]int) error {
	log.Printf("display: %d%d%d%d", d[0], d[1], d[2], d[3])
	return nil
}

type logLED struct{}

func (logLED) SetColorRGB(index int, r, g, b uint8) error {
	log.Printf("led %d: rgb(%d, %d, %d)", index, r, g, b)
	return nil
}

// RunMockController runs the control loop against simulated hardware so the
// configured pipeline can be exercised without a Pi.
func RunMockController() error {
	cfg := config.Get()

	sensor, err := pipeline.ParseSensorKind(cfg.Sensor)
	if err != nil {
		return fmt.Errorf("config SENSOR: %w", err)
	}
	actuator, err := pipeline.ParseActuatorKind(cfg.Actuator)
	if err != nil {
		return fmt.Errorf("config ACTUATOR: %w", err)
	}

	now := time.Now()
	deps := pipeline.Deps{
		HW:      hw.NewMock(),
		Env:     &mockEnv{start: now},
		Ranger:  &mockRanger{start: now},
		Display: logDisplay{},
		LED:     logLED{},
	}

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
		ButtonPin: "mock",
		LightPin:  "mock",
		RotaryPin: "mock",
		BuzzerPin: "mock",
		TempMin:   cfg.TempMin,
		TempRange: cfg.TempRange,
	}, deps)
	if err != nil {
		return err
	}

	log.Println("running against mock hardware")
	ctrl.Run()
	return nil
}
