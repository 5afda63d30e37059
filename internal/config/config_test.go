package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grove_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
# control loop
SENSOR = rotary
ACTUATOR = buzzer
REVERSE = true
INTERVAL_MS = 10

SENSOR_ROTARY_PIN = A2
ACTUATOR_BUZZ_PIN = GPIO12

MQTT_BROKER = tcp://localhost:1883
MQTT_CLIENT_ID_CONTROLLER = grove-controller
TOPIC_VALUE = grove/value
PUBLISH_EVERY = 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rotary", cfg.Sensor)
	assert.Equal(t, "buzzer", cfg.Actuator)
	assert.True(t, cfg.Reverse)
	assert.Equal(t, 10, cfg.IntervalMS)
	assert.Equal(t, "A2", cfg.RotaryPin)
	assert.Equal(t, "GPIO12", cfg.BuzzerPin)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTTBroker)
	assert.Equal(t, 50, cfg.PublishEvery)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
SENSOR = temperature
ACTUATOR = display
INTERVAL_MS = 10
SENSOR_DHT_PIN = GPIO4
ACTUATOR_7SEG_CLK_PIN = GPIO5
ACTUATOR_7SEG_DIO_PIN = GPIO6
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.TempMin)
	assert.Equal(t, 20.0, cfg.TempRange)
	assert.Equal(t, "grove/value", cfg.TopicValue)
	assert.Equal(t, 100, cfg.PublishEvery)
	assert.Equal(t, 1, cfg.LEDCount)
	assert.False(t, cfg.Reverse)
	assert.Empty(t, cfg.MQTTBroker)
}

func TestLoadLowercasesKinds(t *testing.T) {
	path := writeConfig(t, `
SENSOR = Rotary
ACTUATOR = BUZZER
INTERVAL_MS = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rotary", cfg.Sensor)
	assert.Equal(t, "buzzer", cfg.Actuator)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing sensor", "ACTUATOR = buzzer\nINTERVAL_MS = 10\n"},
		{"missing actuator", "SENSOR = rotary\nINTERVAL_MS = 10\n"},
		{"missing interval", "SENSOR = rotary\nACTUATOR = buzzer\n"},
		{"unknown key", "SENSOR = rotary\nACTUATOR = buzzer\nINTERVAL_MS = 10\nBOGUS = 1\n"},
		{"bad reverse", "SENSOR = rotary\nACTUATOR = buzzer\nINTERVAL_MS = 10\nREVERSE = maybe\n"},
		{"bad interval", "SENSOR = rotary\nACTUATOR = buzzer\nINTERVAL_MS = fast\n"},
		{"negative interval", "SENSOR = rotary\nACTUATOR = buzzer\nINTERVAL_MS = -5\n"},
		{"zero temp range", "SENSOR = rotary\nACTUATOR = buzzer\nINTERVAL_MS = 10\nTEMP_RANGE = 0\n"},
		{"malformed line", "SENSOR = rotary\nACTUATOR = buzzer\nINTERVAL_MS = 10\nnoequals\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	assert.Error(t, err)
}
