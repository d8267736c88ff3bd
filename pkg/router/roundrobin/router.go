package roundrobin

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/nuagehq/mediagate/pkg/provider"
	"github.com/nuagehq/mediagate/pkg/router"
)

// Synthesizer distributes speech requests randomly among healthy
// providers. A provider that keeps failing is taken out of rotation
// until its circuit recovers.
type Synthesizer struct {
	synthesizers []provider.Synthesizer
	stats        []*router.ProviderStats

	failureThreshold int
	recoveryTimeout  time.Duration
}

func NewSynthesizer(synthesizers ...provider.Synthesizer) (*Synthesizer, error) {
	if len(synthesizers) == 0 {
		return nil, errors.New("at least one synthesizer is required")
	}

	stats := make([]*router.ProviderStats, len(synthesizers))

	for i := range stats {
		stats[i] = router.NewProviderStats()
	}

	return &Synthesizer{
		synthesizers: synthesizers,
		stats:        stats,

		failureThreshold: router.DefaultFailureThreshold,
		recoveryTimeout:  router.DefaultRecoveryTimeout,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	index := s.selectProvider()

	if index < 0 {
		return nil, errors.New("all providers are unavailable")
	}

	stats := s.stats[index]

	stats.AddInflight(1)
	defer stats.AddInflight(-1)

	synthesis, err := s.synthesizers[index].Synthesize(ctx, input, options)

	if err != nil {
		stats.RecordFailure(s.failureThreshold)
		return nil, err
	}

	stats.RecordSuccess()

	return synthesis, nil
}

func (s *Synthesizer) selectProvider() int {
	candidates := make([]int, 0, len(s.synthesizers))

	for i, stat := range s.stats {
		if stat.IsAvailable(s.recoveryTimeout) {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return s.fallbackProvider()
	}

	return candidates[rand.Intn(len(candidates))]
}

// fallbackProvider returns the least recently failed provider when all
// circuits are open.
func (s *Synthesizer) fallbackProvider() int {
	bestIndex := 0

	var oldestFailure time.Time

	for i, stat := range s.stats {
		lastFailure := stat.LastFailure()

		if i == 0 || lastFailure.Before(oldestFailure) {
			oldestFailure = lastFailure
			bestIndex = i
		}
	}

	s.stats[bestIndex].SetHalfOpen()

	return bestIndex
}
