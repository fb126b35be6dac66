package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxStores int = 1000
var httpHostPort string = "127.0.0.1:1080"

var accountID string = uuid.NewString()

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

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

	var startTime time.Time
	var usedTime time.Duration

	storeIDs := make([]string, maxStores)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxStores; i++ {
		wg.Add(1)
		i := i
		go func() {
			storeIDs[i] = createStore(i)
			fmt.Printf("\rcreated store %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v stores: used time=%v seconds, throughput=%v action/second\n",
		maxStores, usedTime.Seconds(), float64(maxStores)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxStores; i++ {
		wg.Add(1)
		i := i
		go func() {
			upsertConfig(storeIDs[i])
			fmt.Printf("\rupserted config for store %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rupserted config for %v stores: used time=%v seconds, throughput=%v action/second\n",
		maxStores, usedTime.Seconds(), float64(maxStores)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxStores; i++ {
		wg.Add(1)
		i := i
		go func() {
			doAction(storeIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v stores: used time=%v seconds, throughput=%v action/second\n",
		maxStores, usedTime.Seconds(), float64(maxStores*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func doPost(path string, payload any) *http.Response {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-ID", accountID)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func doGet(path string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s%s", httpHostPort, path), nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("X-Account-ID", accountID)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func createStore(index int) string {
	payload := map[string]any{
		"name":      fmt.Sprintf("Benchmark Store %v", index),
		"location":  fmt.Sprintf("Benchmark Street %v", index),
		"tillCount": 2 + rnd.Intn(10),
		"capacity":  50 + rnd.Intn(450),
	}

	resp := doPost("/stores", payload)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		panic(fmt.Sprintf("create store failed: status=%v body=%s", resp.StatusCode, body))
	}

	var store struct {
		StoreID string `json:"StoreID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&store); err != nil {
		panic(err)
	}
	return store.StoreID
}

func upsertConfig(storeID string) {
	payload := map[string]any{
		"queueMediumLength":    3 + rnd.Intn(5),
		"queueHighLength":      8 + rnd.Intn(5),
		"queueCriticalLength":  13 + rnd.Intn(5),
		"occupancyMediumRatio": rndFloat64(0.4, 0.7, 2),
		"occupancyHighRatio":   rndFloat64(0.7, 0.95, 2),
		"waitTimeMediumBound":  rndFloat64(5.0, 15.0, 2),
		"tillQueueThreshold":   5 + rnd.Intn(5),
	}

	resp := doPost(fmt.Sprintf("/stores/%s/config", storeID), payload)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("upsert config failed: status=%v", resp.StatusCode))
	}
}

func doAction(storeID string) {
	actions := []func(){
		genUpsertConfigAction(storeID),
		genGetAlertsAction(storeID),
		genPostFootfallAction(storeID),
	}
	actionNames := []string{
		"UpsertConfig",
		"GetAlerts",
		"PostFootfall",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for store %v", actionNames[index], storeID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genUpsertConfigAction(storeID string) func() {
	return func() {
		upsertConfig(storeID)
	}
}

func genGetAlertsAction(storeID string) func() {
	return func() {
		resp := doGet(fmt.Sprintf("/stores/%s/alerts?open=true", storeID))
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nget alerts failed: status=%v\n", resp.StatusCode)
		}
	}
}

func genPostFootfallAction(storeID string) func() {
	return func() {
		payload := map[string]any{
			"timestamp":  time.Now().Format(time.RFC3339),
			"entryCount": rnd.Intn(30),
			"exitCount":  rnd.Intn(30),
			"posRate":    rndFloat64(0.0, 5.0, 2),
		}
		if flipCoin() {
			payload["queueData"] = map[string]any{
				"tillQueues": []map[string]any{
					{
						"tillNumber":     1 + rnd.Intn(4),
						"queueLength":    rnd.Intn(20),
						"avgServiceTime": rndFloat64(0.5, 5.0, 2),
						"status":         "active",
					},
				},
			}
		}

		resp := doPost(fmt.Sprintf("/stores/%s/footfall", storeID), payload)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusTooManyRequests {
			fmt.Printf("\npost footfall failed: status=%v\n", resp.StatusCode)
		}
	}
}
