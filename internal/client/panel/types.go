package panel

// Module is the server-owned rotation entry. The client never invents ID or
// Key; only Enabled, DurationSeconds, SortOrder and Settings are writable.
type Module struct {
	ID              int64          `json:"id"`
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Enabled         bool           `json:"enabled"`
	DurationSeconds int            `json:"duration_seconds"`
	SortOrder       int            `json:"sort_order"`
	Settings        map[string]any `json:"settings"`
}

type ModuleUpdate struct {
	Enabled         bool           `json:"enabled"`
	DurationSeconds int            `json:"duration_seconds"`
	SortOrder       int            `json:"sort_order"`
	Settings        map[string]any `json:"settings"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Status struct {
	Display DisplayStatus `json:"display"`
	Data    DataStatus    `json:"data"`
}

type DisplayStatus struct {
	Running      bool     `json:"running"`
	TargetFPS    int      `json:"target_fps"`
	ActualFPS    float64  `json:"actual_fps"`
	LastFrameTS  *float64 `json:"last_frame_ts"`
	LastSource   string   `json:"last_source"`
	LastModule   *string  `json:"last_module"`
	DebugActive  bool     `json:"debug_active"`
	DebugPattern *string  `json:"debug_pattern"`
	DebugUntil   *float64 `json:"debug_until"`
	ManualActive bool     `json:"manual_active"`
	ManualUntil  *float64 `json:"manual_until"`
}

// DataStatus mirrors the per-datasource cache: value, last-updated timestamp
// and last error for each feed. Every field is optional; absent readings
// render as placeholders.
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

// RGB is a color triple as the wire carries it: [r, g, b].
type RGB [3]uint8

// Preview is the currently rendered frame. Frame is an 8-row x 32-column
// on/off matrix; Colors is a parallel matrix with nil for unlit cells.
type Preview struct {
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	LitPixels int      `json:"lit_pixels"`
	Frame     [][]int  `json:"frame"`
	Colors    [][]*RGB `json:"colors"`
}

type TextRequest struct {
	Text    string `json:"text"`
	Seconds int    `json:"seconds"`
}

type BrightnessRequest struct {
	Brightness int `json:"brightness"`
}

type DrawRequest struct {
	Pixels  [][]int `json:"pixels"`
	Seconds int     `json:"seconds"`
}

type PatternRequest struct {
	Pattern    string `json:"pattern"`
	Seconds    int    `json:"seconds"`
	IntervalMS int    `json:"interval_ms"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type CoordinateMapping struct {
	OK      bool           `json:"ok"`
	Mapping map[string]any `json:"mapping"`
}
