package repository

import (
	"context"

	"github.com/yourusername/sample-products/internal/domain/entity"
)

// GenerationRepository generatsiya tarixini saqlash uchun interface
type GenerationRepository interface {
	// SaveRun generatsiyani saqlash
	SaveRun(ctx context.Context, run entity.GenerationRun) error

	// ListRuns so'nggi generatsiyalar (yangisi birinchi)
	ListRuns(ctx context.Context, limit int) ([]entity.GenerationRun, error)

	// Clear tarixni tozalash
	Clear(ctx context.Context) error
}
