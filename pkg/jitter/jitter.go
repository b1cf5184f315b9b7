// Package jitter добавляет случайность к интервалам повторов,
// чтобы повторные отправки событий не шли синхронной волной.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter задаёт стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Backoff описывает политику экспоненциальных повторов.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBackoff создает политику со случайным источником, инициализированным текущим временем.
func NewBackoff(base, max time.Duration, factor float64) *Backoff {
	return NewBackoffWithSource(base, max, factor, rand.NewSource(time.Now().UnixNano()))
}

// NewBackoffWithSource нужен для детерминированных тестов.
func NewBackoffWithSource(base, max time.Duration, factor float64, src rand.Source) *Backoff {
	return &Backoff{Base: base, Max: max, Factor: factor, rng: rand.New(src)}
}

// Next возвращает паузу перед попыткой attempt (нумерация с нуля).
// Результат лежит в [b, b*(1+Factor)], где b = min(Base*2^attempt, Max).
func (b *Backoff) Next(attempt int) time.Duration {
	d := exponential(b.Base, b.Max, attempt)

	b.mu.Lock()
	f := b.rng.Float64()
	b.mu.Unlock()

	return d + time.Duration(f*b.Factor*float64(d))
}

func exponential(base, max time.Duration, attempt int) time.Duration {
	d := base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}
