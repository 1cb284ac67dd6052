package config

import "time"

type Alerts struct {
	BotToken        string  `env:"ALERTS_BOT_TOKEN"        json:"-"`
	ChatID          int64   `env:"ALERTS_CHAT_ID"`
	AdminIDs        []int64 `env:"ALERTS_ADMIN_IDS"        envSeparator:","`
	RatingThreshold int     `env:"ALERTS_RATING_THRESHOLD" envDefault:"3"`
	Queue           string  `env:"ALERTS_QUEUE"            envDefault:"alerts"`
	MaxRetry        int     `env:"ALERTS_MAX_RETRY"        envDefault:"5"`
	Concurrency     int     `env:"ALERTS_CONCURRENCY"      envDefault:"2"`
	// SendInterval пауза между сообщениями в чат.
	SendInterval time.Duration `env:"ALERTS_SEND_INTERVAL" envDefault:"3s"`
}

// Enabled без токена бота алерты и бот персонала выключены.
func (a Alerts) Enabled() bool {
	return a.BotToken != ""
}
