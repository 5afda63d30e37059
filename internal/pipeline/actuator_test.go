package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisplay records the digit commands it receives.
type fakeDisplay struct {
	writes [][4]int
	err    error
}

func (f *fakeDisplay) WriteDigits(d [4]int) error {
	f.writes = append(f.writes, d)
	return f.err
}

// fakeLED records the color commands it receives.
type fakeLED struct {
	index   int
	r, g, b uint8
	calls   int
	err     error
}

func (f *fakeLED) SetColorRGB(index int, r, g, b uint8) error {
	f.index, f.r, f.g, f.b = index, r, g, b
	f.calls++
	return f.err
}

func TestWriteBuzzer(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
	}
	for _, tt := range tests {
		h := &fakeHW{}
		require.NoError(t, writeBuzzer(h, "GPIO12", tt.in))
		require.Len(t, h.pwmWrites, 1)
		assert.Equal(t, tt.want, h.pwmWrites[0], "value=%v", tt.in)
		assert.Equal(t, "GPIO12", h.pwmPins[0])
	}
}

func TestWriteLEDMonochrome(t *testing.T) {
	led := &fakeLED{}
	require.NoError(t, writeLED(led, 0.5))

	assert.Equal(t, 0, led.index, "brightness goes to the first LED in the chain")
	assert.Equal(t, uint8(127), led.r)
	assert.Equal(t, led.r, led.g)
	assert.Equal(t, led.r, led.b)

	require.NoError(t, writeLED(led, 1))
	assert.Equal(t, uint8(255), led.r)

	require.NoError(t, writeLED(led, 0))
	assert.Equal(t, uint8(0), led.r)
}

func TestWriteDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want [4]int
	}{
		{0, [4]int{0, 0, 0, 0}},
		{1, [4]int{9, 9, 9, 9}},
		{0.12345, [4]int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		d := &fakeDisplay{}
		require.NoError(t, writeDisplay(d, tt.in))
		require.Len(t, d.writes, 1)
		assert.Equal(t, tt.want, d.writes[0], "value=%v", tt.in)
	}
}
