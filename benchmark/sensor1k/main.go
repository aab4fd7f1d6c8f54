package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxSensors int = 1000
var httpHostPort string = "127.0.0.1:1080"

var adminEmail string = "bench-admin@example.com"
var adminPassword string = "bench-password"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var token string

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	token = login()
	fmt.Printf("logged in as %s\n", adminEmail)

	deviceIDs := make([]string, maxSensors)
	for i := 0; i < maxSensors; i++ {
		deviceIDs[i] = uuid.NewString()
	}

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxSensors; i++ {
		i := i
		wg.Add(1)
		go func() {
			createSensor(deviceIDs[i], i)
			fmt.Printf("\rcreated sensor %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v sensors: used time=%v seconds, throughput=%v action/second\n",
		maxSensors, usedTime.Seconds(), float64(maxSensors)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxSensors; i++ {
		i := i
		wg.Add(1)
		go func() {
			postReading(deviceIDs[i])
			fmt.Printf("\rposted reading for sensor %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rposted readings for %v sensors: used time=%v seconds, throughput=%v action/second\n",
		maxSensors, usedTime.Seconds(), float64(maxSensors)/usedTime.Seconds(),
	)
}

func login() string {
	body, _ := json.Marshal(map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	})
	resp, err := http.Post(
		fmt.Sprintf("http://%s/auth/login", httpHostPort),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Fatal("Failed to login:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Login failed with status %v, create the account with cmd/admin first", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal("Failed to decode login response:", err)
	}
	return result.Token
}

func authedPost(url string, body []byte) *http.Response {
	req, _ := http.NewRequest("POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal("Request failed:", err)
	}
	return resp
}

func createSensor(deviceID string, i int) {
	body, _ := json.Marshal(map[string]any{
		"name":          fmt.Sprintf("bench-sensor-%v", i),
		"type":          "temperature",
		"device_id":     deviceID,
		"threshold":     30.0,
		"unit":          "C",
		"battery_level": 100.0,
		"signal_level":  100.0,
	})
	resp := authedPost(fmt.Sprintf("http://%s/sensors", httpHostPort), body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Create sensor failed with status %v", resp.StatusCode)
	}
}

func postReading(deviceID string) {
	body, _ := json.Marshal(map[string]any{
		"value":     rnd.Float64() * 45.0,
		"timestamp": time.Now().Format(time.RFC3339),
	})
	resp := authedPost(fmt.Sprintf("http://%s/devices/%s/readings", httpHostPort, deviceID), body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Post reading failed with status %v", resp.StatusCode)
	}
}
