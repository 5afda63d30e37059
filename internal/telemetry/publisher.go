// Package telemetry forwards the loop's normalized value to MQTT at a
// reduced rate. The control loop calls Publish every cycle; only one call per
// window actually reaches the broker.
package telemetry

import (
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher rate-limits by cycle count, not wall clock: one broker publish
// per `every` calls, and the very first call publishes immediately.
type Publisher struct {
	topic  string
	every  int
	count  int
	send   func(Reading)
	client mqtt.Client
}

// NewPublisher connects to the broker.
func NewPublisher(broker, clientID, topic string, every int) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	log.Printf("telemetry: connected to MQTT broker at %s", broker)

	p := &Publisher{
		topic:  topic,
		every:  every,
		count:  every, // first Publish call goes out immediately
		client: client,
	}
	p.send = p.sendMQTT
	return p, nil
}

// Publish counts one cycle and forwards the value once per window.
// Fire-and-forget: broker errors are logged, never surfaced to the loop.
func (p *Publisher) Publish(value float64) {
	p.count++
	if p.count <= p.every {
		return
	}
	p.count = 0
	p.send(Reading{Value: value, Time: time.Now().Format(time.RFC3339)})
}

func (p *Publisher) sendMQTT(r Reading) {
	payload, err := json.Marshal(r)
	if err != nil {
		log.Printf("telemetry: json marshal error: %v", err)
		return
	}
	if token := p.client.Publish(p.topic, 0, true, payload); token.Wait() && token.Error() != nil {
		log.Printf("telemetry: MQTT publish error: %v", token.Error())
	}
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
