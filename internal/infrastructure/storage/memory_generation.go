package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/domain/repository"
)

type memoryGenerationRepository struct {
	mu   sync.RWMutex
	runs []entity.GenerationRun
}

// NewMemoryGenerationRepository in-memory generatsiya tarixi yaratish
func NewMemoryGenerationRepository() repository.GenerationRepository {
	return &memoryGenerationRepository{}
}

// SaveRun generatsiyani saqlash
func (m *memoryGenerationRepository) SaveRun(ctx context.Context, run entity.GenerationRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = append(m.runs, run)
	return nil
}

// ListRuns so'nggi generatsiyalarni olish
func (m *memoryGenerationRepository) ListRuns(ctx context.Context, limit int) ([]entity.GenerationRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]entity.GenerationRun, len(m.runs))
	copy(all, m.runs)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	return all, nil
}

// Clear tarixni tozalash
func (m *memoryGenerationRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = nil
	return nil
}
