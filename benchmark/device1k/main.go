package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 2000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			postTelemetry(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\rupserted telemetry for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			if flipCoin() {
				postCase(deviceIDs[i])
			}
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rfiled cases for about %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices/2, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func postJSON(path string, payload map[string]any) {
	body, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("request failed: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("unexpected status for %s: %v", path, resp.StatusCode)
	}
}

func postTelemetry(deviceID string) {
	doorState := "closed"
	if flipCoin() {
		doorState = "open"
	}
	postJSON("/sobjects/Update", map[string]any{
		"deviceId":    deviceID,
		"doorState":   doorState,
		"temperature": math.Round(rnd.Float64()*400)/10 - 10,
		"humidity":    math.Round(rnd.Float64()*1000) / 10,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

func postCase(deviceID string) {
	postJSON("/sobjects/Case", map[string]any{
		"subject":     "Temperature out of range",
		"description": "Filed by the load generator",
		"relatedDevice": map[string]any{
			"deviceId": deviceID,
		},
	})
}
