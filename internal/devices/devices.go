// Package devices holds the Grove peripheral drivers: the DHT11 environment
// sensor, the ultrasonic ranger, the P9813 chainable LED and the TM1637
// 4-digit display. Each driver owns its pins for the process lifetime and
// exposes one blocking query or command.
package devices

import "errors"

// ErrInvalidReading marks a transient sensor failure (no response, bad
// checksum). Callers substitute the previous value and retry next cycle.
var ErrInvalidReading = errors.New("invalid reading")
