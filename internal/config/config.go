package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address         string        `env:"RUN_ADDRESS"      envDefault:"localhost:8080"`
	LogLvl          string        `env:"LOG_LVL"          envDefault:"info"`
	StrictWithdraw  bool          `env:"STRICT_WITHDRAW"  envDefault:"true"`
	RateLimit       float64       `env:"RATE_LIMIT"       envDefault:"50"`
	RateBurst       int           `env:"RATE_BURST"       envDefault:"100"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.BoolVar(&cfg.StrictWithdraw, "s", cfg.StrictWithdraw, "reject non-positive withdrawal amounts")
	flag.Float64Var(&cfg.RateLimit, "rl", cfg.RateLimit, "requests per second allowed per client, 0 disables limiting")
	flag.IntVar(&cfg.RateBurst, "rb", cfg.RateBurst, "request burst allowed per client")
	flag.DurationVar(&cfg.ShutdownTimeout, "t", cfg.ShutdownTimeout, "graceful shutdown timeout")
	flag.Parse()

	if cfg.RateBurst < 1 {
		cfg.RateBurst = 1
	}

	return cfg
}
