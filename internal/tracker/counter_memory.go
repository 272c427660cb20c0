package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

type bucketCounter struct {
	start time.Time
	models.Counter
}

type serviceCounters map[models.Window]*bucketCounter

// MemoryCounterStore is a process-local [CounterStore].
type MemoryCounterStore struct {
	mu       sync.Mutex
	services map[string]serviceCounters
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{services: make(map[string]serviceCounters)}
}

func (s *MemoryCounterStore) Increment(_ context.Context, service string, at time.Time, failed bool) (models.WindowCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters, ok := s.services[service]
	if !ok {
		counters = make(serviceCounters, len(models.Windows))
		s.services[service] = counters
	}

	var counts models.WindowCounts
	for _, w := range models.Windows {
		start := bucketStart(w, at)
		b, ok := counters[w]
		if !ok || !b.start.Equal(start) {
			b = &bucketCounter{start: start}
			counters[w] = b
		}

		b.Calls++
		if failed {
			b.Failures++
		}
		counts.Set(w, b.Counter)
	}

	return counts, nil
}

func (s *MemoryCounterStore) Counts(_ context.Context, service string, at time.Time) (models.WindowCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var counts models.WindowCounts
	for w, b := range s.services[service] {
		if b.start.Equal(bucketStart(w, at)) {
			counts.Set(w, b.Counter)
		}
	}

	return counts, nil
}

func (s *MemoryCounterStore) Reset(_ context.Context, service string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.services, service)
	return nil
}
