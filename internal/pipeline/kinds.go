package pipeline

import "fmt"

// SensorKind selects the one active sensor. Fixed for the process lifetime.
type SensorKind int

const (
	SensorButton SensorKind = iota
	SensorLight
	SensorRotary
	SensorUltrasonic
	SensorHumidity
	SensorTemperature
)

// ParseSensorKind maps a config string to a SensorKind.
func ParseSensorKind(s string) (SensorKind, error) {
	switch s {
	case "button":
		return SensorButton, nil
	case "light":
		return SensorLight, nil
	case "rotary":
		return SensorRotary, nil
	case "ultrasonic":
		return SensorUltrasonic, nil
	case "humidity":
		return SensorHumidity, nil
	case "temperature":
		return SensorTemperature, nil
	default:
		return 0, fmt.Errorf("unknown sensor %q", s)
	}
}

func (k SensorKind) String() string {
	switch k {
	case SensorButton:
		return "button"
	case SensorLight:
		return "light"
	case SensorRotary:
		return "rotary"
	case SensorUltrasonic:
		return "ultrasonic"
	case SensorHumidity:
		return "humidity"
	case SensorTemperature:
		return "temperature"
	default:
		return fmt.Sprintf("SensorKind(%d)", int(k))
	}
}

// ActuatorKind selects the one active actuator. Fixed for the process lifetime.
type ActuatorKind int

const (
	ActuatorDisplay ActuatorKind = iota
	ActuatorBuzzer
	ActuatorLED
)

// ParseActuatorKind maps a config string to an ActuatorKind.
func ParseActuatorKind(s string) (ActuatorKind, error) {
	switch s {
	case "display":
		return ActuatorDisplay, nil
	case "buzzer":
		return ActuatorBuzzer, nil
	case "led":
		return ActuatorLED, nil
	default:
		return 0, fmt.Errorf("unknown actuator %q", s)
	}
}

func (k ActuatorKind) String() string {
	switch k {
	case ActuatorDisplay:
		return "display"
	case ActuatorBuzzer:
		return "buzzer"
	case ActuatorLED:
		return "led"
	default:
		return fmt.Sprintf("ActuatorKind(%d)", int(k))
	}
}
