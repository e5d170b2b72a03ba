package excel

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/domain/repository"
)

// Header qatori, ustunlar tartibi entity.Product.Row bilan bir xil
var Header = []string{"name", "description", "price", "sku", "category", "stock"}

const (
	PriceFormat = "0.00" // narx ikki xonali
	StockFormat = "0"    // ombor soni butun
)

type excelWriter struct{}

// NewWriter yangi Excel writer yaratish
func NewWriter() repository.WorkbookWriter {
	return &excelWriter{}
}

// WriteProducts header va mahsulotlarni yozib, dir ichida filename ga saqlash.
// Jarayonning ishchi papkasi dir ga o'zgaradi, mavjud fayl so'ralmasdan qayta yoziladi.
func (w *excelWriter) WriteProducts(ctx context.Context, dir, filename string, products []entity.Product) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", fmt.Errorf("nothing to write: %w", entity.ErrNoProducts)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]interface{}, len(Header))
	for i, name := range Header {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, product := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := product.Row()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	lastRow := len(products) + 1
	if err := applyNumberFormat(f, sheet, columnIndex("price"), lastRow, PriceFormat); err != nil {
		return "", err
	}
	if err := applyNumberFormat(f, sheet, columnIndex("stock"), lastRow, StockFormat); err != nil {
		return "", err
	}

	if err := os.Chdir(dir); err != nil {
		return "", fmt.Errorf("failed to change directory to %s: %w", dir, err)
	}

	if err := f.SaveAs(filename); err != nil {
		return "", fmt.Errorf("failed to save excel file: %w", err)
	}

	path := filename
	if wd, err := os.Getwd(); err == nil {
		path = filepath.Join(wd, filename)
	}

	log.Printf("💾 Saved %d products to %s", len(products), path)
	return path, nil
}

// applyNumberFormat ustunning barcha data kataklariga (2..lastRow) format qo'yish
func applyNumberFormat(f *excelize.File, sheet string, col, lastRow int, code string) error {
	if lastRow < 2 {
		return nil
	}

	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
	if err != nil {
		return fmt.Errorf("failed to create %q style: %w", code, err)
	}

	top, err := excelize.CoordinatesToCellName(col, 2)
	if err != nil {
		return err
	}
	bottom, err := excelize.CoordinatesToCellName(col, lastRow)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, top, bottom, styleID); err != nil {
		return fmt.Errorf("failed to apply %q to %s:%s: %w", code, top, bottom, err)
	}
	return nil
}

// columnIndex header nomidan 1-based ustun raqami
func columnIndex(name string) int {
	for i, h := range Header {
		if h == name {
			return i + 1
		}
	}
	return 0
}
