package config

import "time"

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS"      envDefault:":8080"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"    envDefault:"10s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN"   envDefault:"2048"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	// PublicURL внешний адрес сервиса, из него собираются входные ссылки.
	PublicURL string `env:"HTTP_PUBLIC_URL" envDefault:"http://localhost:8080"`
	// StaffToken bearer токен для служебных эндпоинтов, пустой их закрывает.
	StaffToken string `env:"HTTP_STAFF_TOKEN"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":8082"`
}
