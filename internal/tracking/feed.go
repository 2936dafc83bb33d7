// Package tracking streams driver distance and ETA updates to riders.
//
// The only implementation today is Simulator, which invents the numbers on a
// timer. A GPS-backed feed can satisfy Feed without touching the handlers.
package tracking

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"luxride/internal/fare"
)

const (
	DefaultPeriod     = 3 * time.Second
	DefaultSpeedKmh   = 40.0
	DefaultIdleDistKm = 4.6
	MinDistanceKm     = 0.1

	// An active trip starts the driver a quarter of the trip away, within
	// [minStartKm, maxStartKm].
	startFraction = 0.25
	minStartKm    = 2.0
	maxStartKm    = 8.0
)

// Request describes the trip being watched. Without both locations the feed
// runs in idle mode against a default distance.
type Request struct {
	Pickup      string
	Destination string
	// StartKm overrides the initial driver distance; zero means default.
	StartKm float64
}

// NewRequest describes the trip from pickup to destination. When both are set
// the driver starts at StartDistance of the estimated trip length.
func NewRequest(pickup, destination string) Request {
	r := Request{Pickup: pickup, Destination: destination}
	if r.active() {
		r.StartKm = StartDistance(fare.EstimateDistance(pickup, destination))
	}
	return r
}

// StartDistance is the initial driver distance for a trip of tripKm,
// rounded to 0.1 km.
func StartDistance(tripKm float64) float64 {
	return round1(math.Min(math.Max(tripKm*startFraction, minStartKm), maxStartKm))
}

func (r Request) active() bool {
	return r.Pickup != "" && r.Destination != ""
}

type Update struct {
	DistanceKm float64   `json:"distance_km"`
	ETAMinutes int       `json:"eta_min"`
	Active     bool      `json:"active"`
	At         time.Time `json:"at"`
}

// Feed produces updates until ctx is done, then closes the channel.
type Feed interface {
	Updates(ctx context.Context, req Request) <-chan Update
}

// Simulator decrements the distance by a jittered step on every tick.
type Simulator struct {
	Period   time.Duration
	SpeedKmh float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulator returns a simulator; zero arguments select the defaults.
func NewSimulator(period time.Duration, speedKmh float64, seed int64) *Simulator {
	if period <= 0 {
		period = DefaultPeriod
	}
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	return &Simulator{
		Period:   period,
		SpeedKmh: speedKmh,
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

// Step returns the distance after one tick. The decrement is what the driver
// covers in one period at the average speed, scaled by a jitter in [0.5, 1.5).
func (s *Simulator) Step(distanceKm float64) float64 {
	s.mu.Lock()
	jitter := 0.5 + s.rnd.Float64()
	s.mu.Unlock()

	perTick := s.SpeedKmh * s.Period.Hours()
	return math.Max(MinDistanceKm, distanceKm-perTick*jitter)
}

// ETA converts a remaining distance into whole minutes at the average speed.
func (s *Simulator) ETA(distanceKm float64) int {
	return int(math.Round(distanceKm / s.SpeedKmh * 60))
}

func (s *Simulator) Updates(ctx context.Context, req Request) <-chan Update {
	out := make(chan Update, 1)
	dist := req.StartKm
	if dist <= 0 {
		dist = DefaultIdleDistKm
	}
	active := req.active()

	go func() {
		defer close(out)
		ticker := time.NewTicker(s.Period)
		defer ticker.Stop()

		emit := func(now time.Time) bool {
			u := Update{DistanceKm: round1(dist), ETAMinutes: s.ETA(dist), Active: active, At: now}
			select {
			case out <- u:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit(time.Now()) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				dist = s.Step(dist)
				if !emit(now) {
					return
				}
			}
		}
	}()
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
