package simulator

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// DataStatus is the data half of the status endpoint payload: per-feed value,
// freshness and last error.
type DataStatus struct {
	BTCEur               *float64 `json:"btc_eur"`
	BTCUpdatedAt         *float64 `json:"btc_updated_at"`
	BTCError             *string  `json:"btc_error"`
	BlockHeight          *int64   `json:"block_height"`
	BlockHeightUpdatedAt *float64 `json:"block_height_updated_at"`
	BlockHeightError     *string  `json:"block_height_error"`

	WeatherTemp           *float64 `json:"weather_temp"`
	WeatherOutdoorTemp    *float64 `json:"weather_outdoor_temp"`
	WeatherIndoorTemp     *float64 `json:"weather_indoor_temp"`
	WeatherIndoorHumidity *float64 `json:"weather_indoor_humidity"`
	WeatherUpdatedAt      *float64 `json:"weather_updated_at"`
	WeatherError          *string  `json:"weather_error"`
	WeatherSource         *string  `json:"weather_source"`

	DHTUpdatedAt      *float64 `json:"dht_updated_at"`
	DHTError          *string  `json:"dht_error"`
	DHTGPIOLevel      *int     `json:"dht_gpio_level"`
	DHTLastAttemptAt  *float64 `json:"dht_last_attempt_at"`
	DHTLastDurationMS *float64 `json:"dht_last_duration_ms"`
	DHTRawTemperature *float64 `json:"dht_raw_temperature"`
	DHTRawHumidity    *float64 `json:"dht_raw_humidity"`
}

// Feeds produces synthetic readings for every datasource the real appliance
// polls, so the console sees a fully populated status payload.
type Feeds struct {
	mu sync.Mutex

	btc         float64
	btcAt       time.Time
	blockHeight int64
	blockAt     time.Time

	outdoorTemp float64
	weatherAt   time.Time

	indoorTemp     float64
	indoorHumidity float64
	dhtAt          time.Time
	dhtAttemptAt   time.Time
	dhtDurationMS  float64
}

func NewFeeds() *Feeds {
	f := &Feeds{
		btc:         61250,
		blockHeight: 860_000,
	}
	f.refresh(time.Now())
	return f
}

// Run refreshes all feeds on a fixed cadence until ctx is done.
func (f *Feeds) Run(ctx context.Context) error {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			f.mu.Lock()
			f.refresh(now)
			f.mu.Unlock()
		}
	}
}

func (f *Feeds) refresh(now time.Time) {
	// small random walk around the last price
	f.btc += f.btc * (rand.Float64() - 0.5) * 0.002
	f.btcAt = now

	// roughly one block every ten minutes
	if rand.Float64() < 1.0/120 {
		f.blockHeight++
	}
	f.blockAt = now

	// daily sine: coldest at 04:00, warmest at 16:00
	hour := float64(now.Hour()) + float64(now.Minute())/60
	f.outdoorTemp = 12 + 8*math.Sin((hour-10)/24*2*math.Pi)
	f.weatherAt = now

	f.indoorTemp = 21.5 + rand.Float64() - 0.5
	f.indoorHumidity = 45 + 5*(rand.Float64()-0.5)
	f.dhtAt = now
	f.dhtAttemptAt = now
	f.dhtDurationMS = 18 + 4*rand.Float64()
}

// ReadDHTOnce forces an immediate sensor read and returns the raw values.
func (f *Feeds) ReadDHTOnce(now time.Time) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.indoorTemp = 21.5 + rand.Float64() - 0.5
	f.indoorHumidity = 45 + 5*(rand.Float64()-0.5)
	f.dhtAt = now
	f.dhtAttemptAt = now
	f.dhtDurationMS = 18 + 4*rand.Float64()

	return map[string]any{
		"ok":          true,
		"temperature": f.indoorTemp,
		"humidity":    f.indoorHumidity,
		"duration_ms": f.dhtDurationMS,
	}
}

func (f *Feeds) DHTDetail() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	return map[string]any{
		"ok":              true,
		"temperature":     f.indoorTemp,
		"humidity":        f.indoorHumidity,
		"updated_at":      unixSeconds(f.dhtAt),
		"last_attempt_at": unixSeconds(f.dhtAttemptAt),
		"duration_ms":     f.dhtDurationMS,
		"gpio_level":      1,
	}
}

func (f *Feeds) GPIOLevel() map[string]any {
	return map[string]any{"ok": true, "level": 1}
}

func (f *Feeds) Status() DataStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	source := "simulated"
	level := 1

	return DataStatus{
		BTCEur:               ptr(f.btc),
		BTCUpdatedAt:         tsPtr(f.btcAt),
		BlockHeight:          ptr(f.blockHeight),
		BlockHeightUpdatedAt: tsPtr(f.blockAt),

		WeatherTemp:           ptr(f.outdoorTemp),
		WeatherOutdoorTemp:    ptr(f.outdoorTemp),
		WeatherIndoorTemp:     ptr(f.indoorTemp),
		WeatherIndoorHumidity: ptr(f.indoorHumidity),
		WeatherUpdatedAt:      tsPtr(f.weatherAt),
		WeatherSource:         &source,

		DHTUpdatedAt:      tsPtr(f.dhtAt),
		DHTGPIOLevel:      &level,
		DHTLastAttemptAt:  tsPtr(f.dhtAttemptAt),
		DHTLastDurationMS: ptr(f.dhtDurationMS),
		DHTRawTemperature: ptr(f.indoorTemp),
		DHTRawHumidity:    ptr(f.indoorHumidity),
	}
}

func ptr[T any](v T) *T { return &v }

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

func tsPtr(t time.Time) *float64 {
	if t.IsZero() {
		return nil
	}
	ts := unixSeconds(t)
	return &ts
}
