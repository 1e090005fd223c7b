// Package testkit generates synthetic tabular data for the demo binary and
// for tests that want a table bigger than a hand-written fixture.
package testkit

import (
	"math/rand"

	"tabstat/domain/table"
)

// GeneratorConfig configures the synthetic table generator.
type GeneratorConfig struct {
	Rows        int
	MissingRate float64
	Categories  []string
	Seed        int64
}

// DefaultConfig returns sensible defaults for a small demo table.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Rows:        50,
		MissingRate: 0.1,
		Categories:  []string{"low", "medium", "high"},
		Seed:        42,
	}
}

// Generator builds seeded synthetic tables.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator. The same seed always produces the same
// table.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Columns generates a column mapping with one clean numeric column, one
// numeric column with injected nulls, and one categorical column.
func (g *Generator) Columns() map[string]table.Column {
	amount := make(table.Column, g.config.Rows)
	score := make(table.Column, g.config.Rows)
	segment := make(table.Column, g.config.Rows)

	for i := 0; i < g.config.Rows; i++ {
		amount[i] = table.Number(20 + 10*g.rng.NormFloat64())
		if g.rng.Float64() < g.config.MissingRate {
			score[i] = table.Null()
		} else {
			score[i] = table.Number(float64(g.rng.Intn(100)))
		}
		segment[i] = table.Text(g.config.Categories[g.rng.Intn(len(g.config.Categories))])
	}

	return map[string]table.Column{
		"amount":  amount,
		"score":   score,
		"segment": segment,
	}
}
