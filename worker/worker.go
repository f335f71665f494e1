// Package worker runs the background order simulator that keeps the
// attendant console busy during demos: every tick it rolls a die and,
// on a hit, places a small randomized order through the regular
// checkout path.
package worker

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/store"
)

// Broadcaster pushes a freshly created order to connected clients.
type Broadcaster interface {
	Broadcast(eventType string, order models.Order)
}

type Simulator struct {
	store       *store.Store
	broadcaster Broadcaster
	eventType   string
	interval    time.Duration
	chance      float64
	rnd         *rand.Rand
}

type Option func(*Simulator)

// WithRand swaps the random source. Tests use a seeded one.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Simulator) { s.rnd = rnd }
}

func NewSimulator(st *store.Store, b Broadcaster, eventType string, interval time.Duration, chance float64, opts ...Option) *Simulator {
	s := &Simulator{
		store:       st,
		broadcaster: b,
		eventType:   eventType,
		interval:    interval,
		chance:      chance,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks until ctx is canceled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			order, err := s.Tick(ctx)
			if err != nil {
				log.Println("❌ Order simulator:", err)
				continue
			}
			if order != nil {
				log.Println("✅ Simulated order", order.ID)
			}
		}
	}
}

// Tick rolls the chance and, on a hit, creates one randomized order.
// Returns nil without error when the roll misses or no dish is
// available to order.
func (s *Simulator) Tick(ctx context.Context) (*models.Order, error) {
	if s.rnd.Float64() >= s.chance {
		return nil, nil
	}

	dishes, err := s.store.FetchDishes(ctx, "", "")
	if err != nil {
		return nil, err
	}
	available := dishes[:0]
	for _, d := range dishes {
		if d.Available {
			available = append(available, d)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	items := []models.CartItem{{
		Dish:     available[s.rnd.Intn(len(available))],
		Quantity: 1 + s.rnd.Intn(2),
	}}
	if len(available) > 1 && s.rnd.Float64() < 0.5 {
		second := available[s.rnd.Intn(len(available))]
		if second.ID != items[0].Dish.ID {
			items = append(items, models.CartItem{Dish: second, Quantity: 1})
		}
	}

	input := store.OrderInput{
		CustomerName:    fmt.Sprintf("Cliente %d", 1+s.rnd.Intn(1000)),
		CustomerPhone:   fmt.Sprintf("XX9%08d", s.rnd.Intn(100000000)),
		CustomerAddress: fmt.Sprintf("Rua Aleatória, %d", 1+s.rnd.Intn(999)),
		Items:           items,
	}
	if s.rnd.Float64() < 0.3 {
		input.Notes = "Observação aleatória."
	}

	order, err := s.store.CreateOrder(ctx, input)
	if err != nil {
		return nil, err
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(s.eventType, order)
	}
	return &order, nil
}
