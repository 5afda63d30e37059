package devices

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// ChainableLED drives a chain of P9813-based Grove chainable RGB LEDs over
// their two-wire clock/data protocol.
type ChainableLED struct {
	clk    gpio.PinIO
	data   gpio.PinIO
	colors [][3]uint8
}

// NewChainableLED claims the clock and data pins and blanks the chain.
func NewChainableLED(clkName, dataName string, count int) (*ChainableLED, error) {
	if count < 1 {
		return nil, fmt.Errorf("chainable LED: count must be at least 1, got %d", count)
	}
	clk := gpioreg.ByName(clkName)
	if clk == nil {
		return nil, fmt.Errorf("chainable LED clock pin %q not found", clkName)
	}
	data := gpioreg.ByName(dataName)
	if data == nil {
		return nil, fmt.Errorf("chainable LED data pin %q not found", dataName)
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("chainable LED clock pin %q: set output: %w", clkName, err)
	}
	if err := data.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("chainable LED data pin %q: set output: %w", dataName, err)
	}

	led := &ChainableLED{clk: clk, data: data, colors: make([][3]uint8, count)}
	if err := led.refresh(); err != nil {
		return nil, fmt.Errorf("chainable LED: blank chain: %w", err)
	}
	return led, nil
}

// SetColorRGB sets one LED in the chain and rewrites the whole chain.
func (c *ChainableLED) SetColorRGB(index int, r, g, b uint8) error {
	if index < 0 || index >= len(c.colors) {
		return fmt.Errorf("chainable LED index %d out of range 0..%d", index, len(c.colors)-1)
	}
	c.colors[index] = [3]uint8{r, g, b}
	return c.refresh()
}

// refresh clocks out a start frame, one color frame per LED, and an end frame.
func (c *ChainableLED) refresh() error {
	if err := c.writeZeroFrame(); err != nil {
		return err
	}
	for _, rgb := range c.colors {
		if err := c.writeColor(rgb[0], rgb[1], rgb[2]); err != nil {
			return err
		}
	}
	return c.writeZeroFrame()
}

// writeColor sends one P9813 color frame: a prefix byte carrying the inverted
// top two bits of each channel as a checksum, then blue, green, red.
func (c *ChainableLED) writeColor(r, g, b uint8) error {
	prefix := uint8(0xC0)
	prefix |= (^b >> 6 & 0x03) << 4
	prefix |= (^g >> 6 & 0x03) << 2
	prefix |= ^r >> 6 & 0x03

	for _, octet := range [4]uint8{prefix, b, g, r} {
		if err := c.writeByte(octet); err != nil {
			return err
		}
	}
	return nil
}

func (c *ChainableLED) writeZeroFrame() error {
	for i := 0; i < 4; i++ {
		if err := c.writeByte(0); err != nil {
			return err
		}
	}
	return nil
}

func (c *ChainableLED) writeByte(octet uint8) error {
	for i := 0; i < 8; i++ {
		bit := gpio.Low
		if octet&0x80 != 0 {
			bit = gpio.High
		}
		if err := c.data.Out(bit); err != nil {
			return fmt.Errorf("data write: %w", err)
		}
		// Data is latched on the rising clock edge.
		if err := c.clk.Out(gpio.High); err != nil {
			return fmt.Errorf("clock write: %w", err)
		}
		if err := c.clk.Out(gpio.Low); err != nil {
			return fmt.Errorf("clock write: %w", err)
		}
		octet <<= 1
	}
	return nil
}
