package telemetry

// Reading is a single published normalized value suitable for JSON and MQTT.
type Reading struct {
	Value float64 `json:"value"` // normalized, 0..1
	Time  string  `json:"time"`  // RFC3339
}
