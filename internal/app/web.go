// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/grove_controller/internal/config"
	"github.com/relabs-tech/grove_controller/internal/telemetry"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RunWeb subscribes to the telemetry topic and serves the latest reading over
// HTTP, plus a websocket stream pushing each new reading as it arrives.
// Read-only monitoring; nothing here commands the hardware.
func RunWeb() error {
	cfg := config.Get()

	var (
		mu          sync.RWMutex
		lastReading telemetry.Reading
		haveReading bool
	)

	var (
		clientsMu sync.Mutex
		clients   = make(map[*websocket.Conn]bool)
	)

	broadcast := func(r telemetry.Reading) {
		clientsMu.Lock()
		defer clientsMu.Unlock()
		for conn := range clients {
			if err := conn.WriteJSON(r); err != nil {
				conn.Close()
				delete(clients, conn)
			}
		}
	}

	// 1) Connect to MQTT broker
	broker := cfg.MQTTBroker
	if broker == "" {
		broker = "tcp://localhost:1883"
	}
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: connected to MQTT broker at %s", broker)

	// 2) Subscribe and cache the latest reading
	token := client.Subscribe(cfg.TopicValue, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r telemetry.Reading
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("web: reading unmarshal error: %v", err)
			return
		}
		mu.Lock()
		lastReading = r
		haveReading = true
		mu.Unlock()

		broadcast(r)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: subscribed to %s", cfg.TopicValue)

	// 3) JSON API endpoint: latest reading
	http.HandleFunc("/api/value", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if !haveReading {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lastReading); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// 4) Websocket stream: current reading on connect, then live updates
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("web: websocket upgrade error: %v", err)
			return
		}

		mu.RLock()
		if haveReading {
			if err := conn.WriteJSON(lastReading); err != nil {
				mu.RUnlock()
				conn.Close()
				return
			}
		}
		mu.RUnlock()

		clientsMu.Lock()
		clients[conn] = true
		clientsMu.Unlock()

		// Drain the connection to notice when the client goes away.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						log.Printf("web: websocket error: %v", err)
					}
					clientsMu.Lock()
					delete(clients, conn)
					clientsMu.Unlock()
					conn.Close()
					return
				}
			}
		}()
	})

	// 5) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	port := cfg.WebServerPort
	if port == 0 {
		port = 8080
	}
	addr := fmt.Sprintf(":%d", port)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
