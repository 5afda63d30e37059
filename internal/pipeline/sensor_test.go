package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSimulated = errors.New("simulated failure")

// fakeHW is a scriptable hardware interface recording PWM writes.
type fakeHW struct {
	digital    bool
	analog     uint16
	readErr    error
	pwmWrites  []uint8
	pwmPins    []string
	pwmWriteEr error
}

func (f *fakeHW) ReadDigital(pin string) (bool, error) {
	return f.digital, f.readErr
}

func (f *fakeHW) ReadAnalog(pin string) (uint16, error) {
	return f.analog, f.readErr
}

func (f *fakeHW) WritePWM(pin string, duty uint8) error {
	f.pwmPins = append(f.pwmPins, pin)
	f.pwmWrites = append(f.pwmWrites, duty)
	return f.pwmWriteEr
}

// fakeEnv replays a script of humidity/temperature readings.
type fakeEnv struct {
	humidity       []float64
	temperature    []float64
	errs           []error
	humidityIdx    int
	temperatureIdx int
}

func (f *fakeEnv) ReadHumidity() (float64, error) {
	i := f.humidityIdx
	f.humidityIdx++
	if i < len(f.errs) && f.errs[i] != nil {
		return 0, f.errs[i]
	}
	return f.humidity[i], nil
}

func (f *fakeEnv) ReadTemperature() (float64, error) {
	i := f.temperatureIdx
	f.temperatureIdx++
	if i < len(f.errs) && f.errs[i] != nil {
		return 0, f.errs[i]
	}
	return f.temperature[i], nil
}

type fakeRanger struct {
	cm  float64
	err error
}

func (f *fakeRanger) MeasureCentimeters() (float64, error) {
	return f.cm, f.err
}

func TestReadButton(t *testing.T) {
	v, err := readButton(&fakeHW{digital: true}, "GPIO16")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = readButton(&fakeHW{digital: false}, "GPIO16")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestReadLight(t *testing.T) {
	tests := []struct {
		raw  uint16
		want float64
	}{
		{0, 1},
		{1023, 0},
		{4095, 0}, // saturated, clamped
	}
	for _, tt := range tests {
		v, err := readLight(&fakeHW{analog: tt.raw}, "A0")
		require.NoError(t, err)
		assert.InDelta(t, tt.want, v, 1e-9, "raw=%d", tt.raw)
	}
}

func TestReadRotaryDeadZone(t *testing.T) {
	v, err := readRotary(&fakeHW{analog: 25}, "A2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "below the dead zone reads exactly 0")

	v, err = readRotary(&fakeHW{analog: 26}, "A2")
	require.NoError(t, err)
	assert.Equal(t, 26.0/4096.0, v)

	v, err = readRotary(&fakeHW{analog: 2048}, "A2")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestReadersStayInUnitInterval(t *testing.T) {
	for raw := 0; raw <= 4095; raw += 13 {
		h := &fakeHW{analog: uint16(raw)}

		v, err := readLight(h, "A0")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)

		v, err = readRotary(h, "A2")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestReadUltrasonic(t *testing.T) {
	tests := []struct {
		cm   float64
		want float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{250, 1},  // beyond range, clamped
		{-3, 0},   // bogus negative echo, clamped
	}
	for _, tt := range tests {
		v, err := readUltrasonic(&fakeRanger{cm: tt.cm})
		require.NoError(t, err)
		assert.Equal(t, tt.want, v, "cm=%v", tt.cm)
	}

	_, err := readUltrasonic(&fakeRanger{err: errSimulated})
	assert.Error(t, err)
}

func TestReadHumidity(t *testing.T) {
	v, err := readHumidity(&fakeEnv{humidity: []float64{42}})
	require.NoError(t, err)
	assert.Equal(t, 0.42, v)

	_, err = readHumidity(&fakeEnv{errs: []error{errSimulated}})
	assert.Error(t, err)
}

func TestReadTemperatureMapping(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{10, 0},
		{30, 1},
		{20, 0.5},
		{5, 0},  // below range, clamped
		{40, 1}, // above range, clamped
	}
	for _, tt := range tests {
		v, err := readTemperature(&fakeEnv{temperature: []float64{tt.deg}}, 10, 20)
		require.NoError(t, err)
		assert.Equal(t, tt.want, v, "deg=%v", tt.deg)
	}

	_, err := readTemperature(&fakeEnv{errs: []error{errSimulated}}, 10, 20)
	assert.Error(t, err)
}
