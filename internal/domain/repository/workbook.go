package repository

import (
	"context"

	"github.com/yourusername/sample-products/internal/domain/entity"
)

// WorkbookWriter mahsulotlarni Excel faylga yozish uchun interface
type WorkbookWriter interface {
	// WriteProducts dir ga o'tib, filename ga yozadi va to'liq yo'lni qaytaradi
	WriteProducts(ctx context.Context, dir, filename string, products []entity.Product) (string, error)
}

// WorkbookReader yozilgan Excel faylni qayta o'qish uchun interface
type WorkbookReader interface {
	// ParseProducts Excel fayldan mahsulotlarni o'qish
	ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error)

	// NumberFormats ustundagi har bir data katakning format kodini olish
	NumberFormats(ctx context.Context, filePath, column string) ([]string, error)

	// Describe fayl haqida qisqacha ma'lumot
	Describe(ctx context.Context, filePath string) (*entity.WorkbookSummary, error)
}
