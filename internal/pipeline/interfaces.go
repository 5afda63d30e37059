package pipeline

// EnvSensor is the humidity/temperature driver surface. A failed query
// returns an error (the driver's invalid-reading marker); the control loop
// holds the previous value in that case.
type EnvSensor interface {
	// ReadHumidity returns relative humidity in percent (0..100).
	ReadHumidity() (float64, error)
	// ReadTemperature returns degrees Celsius.
	ReadTemperature() (float64, error)
}

// Rangefinder measures distance in centimeters.
type Rangefinder interface {
	MeasureCentimeters() (float64, error)
}

// DigitDisplay shows four decimal digits, most significant first.
type DigitDisplay interface {
	WriteDigits(d [4]int) error
}

// ColorLED sets one LED in a chain to an RGB color.
type ColorLED interface {
	SetColorRGB(index int, r, g, b uint8) error
}

// Sink receives the final normalized value each cycle, fire-and-forget.
// Rate limiting is the sink's business, not the control loop's.
type Sink interface {
	Publish(value float64)
}
