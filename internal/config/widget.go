package config

import "time"

type Widget struct {
	CountdownSeed     int           `env:"WIDGET_COUNTDOWN_SEED"      envDefault:"4"`
	TickInterval      time.Duration `env:"WIDGET_TICK_INTERVAL"       envDefault:"1s"`
	ReviewURLTemplate string        `env:"WIDGET_REVIEW_URL_TEMPLATE" envDefault:"https://search.google.com/local/writereview?placeid={placeId}"`
	SessionTTL        time.Duration `env:"WIDGET_SESSION_TTL"         envDefault:"30m"`
	NameCacheTTL      time.Duration `env:"WIDGET_NAME_CACHE_TTL"      envDefault:"10m"`
}
