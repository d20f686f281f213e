package healthkit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DailyMetrics are the derived physiological metrics the device-health
// bridge exposes for one calendar day. The scoring engine never reads
// these; they are surfaced to clients alongside scores.
type DailyMetrics struct {
	Date                 string  `json:"date"`
	RestingHeartRate     float64 `json:"resting_heart_rate"`
	HeartRateVariability float64 `json:"heart_rate_variability"`
	RespiratoryRate      float64 `json:"respiratory_rate"`
	StepCount            int     `json:"step_count"`
}

type cacheEntry struct {
	metrics   DailyMetrics
	fetchedAt time.Time
}

type Client struct {
	endpoint string
	client   *http.Client

	mu    sync.Mutex
	cache map[string]cacheEntry
	ttl   time.Duration
}

func New(endpoint string, cacheTTL time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: map[string]cacheEntry{},
		ttl:   cacheTTL,
	}
}

// DailyMetrics fetches the metrics for an account and day key, serving
// from the cache while an entry is fresh.
func (c *Client) DailyMetrics(accountNumber, date string) (*DailyMetrics, error) {
	cacheKey := fmt.Sprintf("%s/%s", accountNumber, date)

	c.mu.Lock()
	entry, ok := c.cache[cacheKey]
	c.mu.Unlock()
	if ok && time.Since(entry.fetchedAt) < c.ttl {
		metrics := entry.metrics
		return &metrics, nil
	}

	q := url.URL{
		Path: "v1/metrics",
		RawQuery: url.Values{
			"account": []string{accountNumber},
			"date":    []string{date},
		}.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", c.endpoint, q.String())
	log.WithField("prefix", "healthkit").WithField("req", reqString).Debug("request daily metrics")

	resp, err := c.client.Get(reqString)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device-health bridge returns status: %d", resp.StatusCode)
	}

	var metrics DailyMetrics
	if err := json.NewDecoder(resp.Body).Decode(&metrics); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[cacheKey] = cacheEntry{metrics: metrics, fetchedAt: time.Now()}
	c.mu.Unlock()

	return &metrics, nil
}
