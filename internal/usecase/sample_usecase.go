package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/domain/repository"
)

// SampleUseCase sample katalog faylini yaratish va tekshirish
type SampleUseCase interface {
	// Generate sample mahsulotlarni faylga yozish va tarixga qo'shish
	Generate(ctx context.Context) (*entity.GenerationRun, error)

	// Describe fayllarni qayta o'qib qisqacha ma'lumot berish
	Describe(ctx context.Context, paths ...string) []entity.WorkbookSummary

	// History so'nggi generatsiyalar
	History(ctx context.Context, limit int) ([]entity.GenerationRun, error)
}

type sampleUseCase struct {
	writer   repository.WorkbookWriter
	reader   repository.WorkbookReader
	runRepo  repository.GenerationRepository
	dir      string
	filename string
}

// NewSampleUseCase yangi SampleUseCase yaratish
func NewSampleUseCase(
	writer repository.WorkbookWriter,
	reader repository.WorkbookReader,
	runRepo repository.GenerationRepository,
	dir, filename string,
) SampleUseCase {
	return &sampleUseCase{
		writer:   writer,
		reader:   reader,
		runRepo:  runRepo,
		dir:      dir,
		filename: filename,
	}
}

// Generate sample mahsulotlarni faylga yozish
func (u *sampleUseCase) Generate(ctx context.Context) (*entity.GenerationRun, error) {
	catalog := entity.ProductCatalog{
		Products:  SampleProducts(),
		CreatedAt: time.Now(),
		Source:    u.filename,
	}

	path, err := u.writer.WriteProducts(ctx, u.dir, u.filename, catalog.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", u.filename, err)
	}

	run := entity.GenerationRun{
		ID:        uuid.New().String(),
		Path:      path,
		Rows:      len(catalog.Products),
		CreatedAt: catalog.CreatedAt,
	}

	if err := u.runRepo.SaveRun(ctx, run); err != nil {
		// Fayl allaqachon yozilgan, tarix xatosi uni bekor qilmaydi
		log.Printf("⚠️ Failed to record generation %s: %v", run.ID, err)
	}

	log.Printf("✅ Generation %s: %d rows -> %s", run.ID, run.Rows, run.Path)
	return &run, nil
}

// Describe har bir fayl uchun summary, xato bo'lsa Err maydonida
func (u *sampleUseCase) Describe(ctx context.Context, paths ...string) []entity.WorkbookSummary {
	summaries := make([]entity.WorkbookSummary, 0, len(paths))
	for _, path := range paths {
		summary, err := u.reader.Describe(ctx, path)
		if err != nil {
			summaries = append(summaries, entity.WorkbookSummary{Path: path, Err: err})
			continue
		}
		summaries = append(summaries, *summary)
	}
	return summaries
}

// History so'nggi generatsiyalar
func (u *sampleUseCase) History(ctx context.Context, limit int) ([]entity.GenerationRun, error) {
	return u.runRepo.ListRuns(ctx, limit)
}
