package tests

import (
	"math/rand"
	"time"

	"github.com/rs/xid"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// LowRating возвращает оценку 1..4.
	LowRating func() int
	// ID возвращает уникальный идентификатор с префиксом.
	ID func(prefix string) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64:   random.Float64,
		Bool:      func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		LowRating: func() int { return random.Intn(4) + 1 },   //nolint:mnd // skip
		ID:        func(prefix string) string { return prefix + "-" + xid.New().String() },
	}
}
