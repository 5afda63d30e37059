package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// Control loop
	Sensor     string // "button", "light", "rotary", "ultrasonic", "humidity", "temperature"
	Actuator   string // "display", "buzzer", "led"
	Reverse    bool
	IntervalMS int

	// Temperature normalization bounds: TempMin..TempMin+TempRange °C maps to 0..1
	TempMin   float64
	TempRange float64

	// Sensor pins
	ButtonPin     string
	LightPin      string // ADC channel, "A0".."A3"
	RotaryPin     string // ADC channel, "A0".."A3"
	DHTPin        string
	UltrasonicPin string

	// Actuator pins
	BuzzerPin      string
	DisplayClkPin  string
	DisplayDataPin string
	LEDClkPin      string
	LEDDataPin     string
	LEDCount       int

	// MQTT (telemetry is disabled when MQTTBroker is empty)
	MQTTBroker             string
	MQTTClientIDController string
	MQTTClientIDConsole    string
	MQTTClientIDWeb        string
	TopicValue             string
	PublishEvery           int // publish once per this many cycles

	// Web server
	WebServerPort int
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: unexported so other packages cannot access it directly.
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access.
//
// External code must use InitGlobal() to set and Get() to read.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{
		TempMin:      10,
		TempRange:    20,
		TopicValue:   "grove/value",
		PublishEvery: 100,
		LEDCount:     1,
	}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Control loop
	case "SENSOR":
		c.Sensor = strings.ToLower(value)
	case "ACTUATOR":
		c.Actuator = strings.ToLower(value)
	case "REVERSE":
		rev, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid REVERSE %q: %w", value, err)
		}
		c.Reverse = rev
	case "INTERVAL_MS":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid INTERVAL_MS %q: %w", value, err)
		}
		if interval <= 0 {
			return fmt.Errorf("INTERVAL_MS must be positive, got %d", interval)
		}
		c.IntervalMS = interval

	// Temperature bounds
	case "TEMP_MIN":
		min, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid TEMP_MIN %q: %w", value, err)
		}
		c.TempMin = min
	case "TEMP_RANGE":
		rng, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid TEMP_RANGE %q: %w", value, err)
		}
		if rng == 0 {
			return fmt.Errorf("TEMP_RANGE must be non-zero")
		}
		c.TempRange = rng

	// Sensor pins
	case "SENSOR_BUTTON_PIN":
		c.ButtonPin = value
	case "SENSOR_LIGHT_PIN":
		c.LightPin = value
	case "SENSOR_ROTARY_PIN":
		c.RotaryPin = value
	case "SENSOR_DHT_PIN":
		c.DHTPin = value
	case "SENSOR_ULTRASONIC_PIN":
		c.UltrasonicPin = value

	// Actuator pins
	case "ACTUATOR_BUZZ_PIN":
		c.BuzzerPin = value
	case "ACTUATOR_7SEG_CLK_PIN":
		c.DisplayClkPin = value
	case "ACTUATOR_7SEG_DIO_PIN":
		c.DisplayDataPin = value
	case "ACTUATOR_LED_CLK_PIN":
		c.LEDClkPin = value
	case "ACTUATOR_LED_DATA_PIN":
		c.LEDDataPin = value
	case "LED_COUNT":
		count, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid LED_COUNT %q: %w", value, err)
		}
		if count < 1 {
			return fmt.Errorf("LED_COUNT must be at least 1, got %d", count)
		}
		c.LEDCount = count

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_CONTROLLER":
		c.MQTTClientIDController = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "TOPIC_VALUE":
		c.TopicValue = value
	case "PUBLISH_EVERY":
		every, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid PUBLISH_EVERY %q: %w", value, err)
		}
		if every < 1 {
			return fmt.Errorf("PUBLISH_EVERY must be at least 1, got %d", every)
		}
		c.PublishEvery = every

	// Web server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.Sensor == "" {
		return fmt.Errorf("SENSOR is required")
	}
	if c.Actuator == "" {
		return fmt.Errorf("ACTUATOR is required")
	}
	if c.IntervalMS == 0 {
		return fmt.Errorf("INTERVAL_MS is required")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
