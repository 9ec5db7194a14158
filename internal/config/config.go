package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultPanelURL = "http://localhost:8000"

type Config struct {
	PanelURL        string        `env:"PANEL_URL" envDefault:"http://localhost:8000"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	StatusInterval  time.Duration `env:"STATUS_POLL_INTERVAL" envDefault:"5s"`
	PreviewInterval time.Duration `env:"PREVIEW_POLL_INTERVAL" envDefault:"1s"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
