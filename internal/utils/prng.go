// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Sampler выдаёт равномерные случайные числа в диапазоне [0.0, 1.0).
type Sampler interface {
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed actually in use, so a match can be replayed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FixedSampler replays a list of draws, repeating the last one when exhausted.
type FixedSampler struct {
	Values []float64
	next   int
}

func (f *FixedSampler) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next]
	if f.next < len(f.Values)-1 {
		f.next++
	}
	return v
}
