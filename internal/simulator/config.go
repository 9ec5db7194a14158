package simulator

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr          string `env:"PANELD_ADDR" envDefault:":8000"`
	AdminUsername string `env:"PANELD_ADMIN_USER" envDefault:"admin"`
	AdminPassword string `env:"PANELD_ADMIN_PASSWORD" envDefault:"admin1234"`
	TargetFPS     int    `env:"PANELD_TARGET_FPS" envDefault:"20"`
	DBPath        string `env:"PANELD_DB" envDefault:"paneld.db"`
}

func ReadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
