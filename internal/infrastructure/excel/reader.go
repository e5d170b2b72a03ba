package excel

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/domain/repository"
)

const previewRows = 5

// builtInFormats excelize style ID sini format kodiga o'girish uchun
var builtInFormats = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	49: "@",
}

type excelReader struct{}

// NewReader yangi Excel reader yaratish
func NewReader() repository.WorkbookReader {
	return &excelReader{}
}

// ParseProducts Excel fayldan mahsulotlarni o'qish
func (r *excelReader) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return r.parseExcelFile(f)
}

// parseExcelFile birinchi sheet ni header bo'yicha parse qilish
func (r *excelReader) parseExcelFile(f *excelize.File) ([]entity.Product, error) {
	sheet, err := firstSheet(f)
	if err != nil {
		return nil, err
	}

	// Formatlangan emas, saqlangan qiymatlar kerak
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	columnMap := r.mapColumns(rows[0])
	for _, required := range []string{"name", "price", "stock"} {
		if _, ok := columnMap[required]; !ok {
			return nil, fmt.Errorf("excel header has no %q column", required)
		}
	}

	var products []entity.Product
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		product := entity.Product{
			Name:        cellAt(row, columnMap, "name"),
			Description: cellAt(row, columnMap, "description"),
			SKU:         cellAt(row, columnMap, "sku"),
			Category:    cellAt(row, columnMap, "category"),
		}

		priceStr := cellAt(row, columnMap, "price")
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", i+1, priceStr, err)
		}
		product.Price = price

		stock, err := parseStock(cellAt(row, columnMap, "stock"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		product.Stock = stock

		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("no valid products found in excel file: %w", entity.ErrNoProducts)
	}

	log.Printf("📦 Total products parsed: %d", len(products))
	return products, nil
}

// parseStock faqat butun sonni qabul qiladi, "45.0" ham xato
func parseStock(raw string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", entity.ErrInvalidStock, raw)
	}
	return stock, nil
}

// NumberFormats ustundagi har bir data katakning format kodini olish
func (r *excelReader) NumberFormats(ctx context.Context, filePath, column string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheet, err := firstSheet(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	col, ok := r.mapColumns(rows[0])[strings.ToLower(column)]
	if !ok {
		return nil, fmt.Errorf("column %q not found in header", column)
	}

	formats := make([]string, 0, len(rows)-1)
	for i := 2; i <= len(rows); i++ {
		cell, err := excelize.CoordinatesToCellName(col+1, i)
		if err != nil {
			return nil, err
		}
		styleID, err := f.GetCellStyle(sheet, cell)
		if err != nil {
			return nil, fmt.Errorf("failed to get style of %s: %w", cell, err)
		}
		style, err := f.GetStyle(styleID)
		if err != nil {
			return nil, fmt.Errorf("failed to read style %d: %w", styleID, err)
		}
		formats = append(formats, formatCode(style))
	}

	return formats, nil
}

// formatCode custom format bo'lsa o'zini, aks holda built-in kodini qaytaradi
func formatCode(style *excelize.Style) string {
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		// excelize built-in 0 ni kichik harf bilan beradi
		if strings.EqualFold(*style.CustomNumFmt, "general") {
			return "General"
		}
		return *style.CustomNumFmt
	}
	if code, ok := builtInFormats[style.NumFmt]; ok {
		return code
	}
	return fmt.Sprintf("numFmt:%d", style.NumFmt)
}

// Describe fayl haqida qisqacha ma'lumot
func (r *excelReader) Describe(ctx context.Context, filePath string) (*entity.WorkbookSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	summary := &entity.WorkbookSummary{
		Path:   filePath,
		Sheets: f.GetSheetList(),
	}

	sheet, err := firstSheet(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return summary, nil
	}

	summary.Columns = rows[0]
	summary.RowCount = len(rows) - 1
	for i := 1; i < len(rows) && len(summary.FirstRows) < previewRows; i++ {
		summary.FirstRows = append(summary.FirstRows, rows[i])
	}

	log.Printf("📊 %s: %d sheets, %d rows", filePath, len(summary.Sheets), summary.RowCount)
	return summary, nil
}

// mapColumns header qatoridan column mapping yaratish
func (r *excelReader) mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))

		var key string
		switch {
		case contains(colName, "description", "tavsif", "details"):
			key = "description"
		case contains(colName, "name", "nomi", "product"):
			key = "name"
		case contains(colName, "price", "narx", "cost"):
			key = "price"
		case contains(colName, "sku", "artikul", "code"):
			key = "sku"
		case contains(colName, "category", "kategoriya", "type"):
			key = "category"
		case contains(colName, "stock", "soni", "qty", "quantity"):
			key = "stock"
		default:
			key = colName
		}

		if key == "" {
			continue
		}
		// Birinchi mos ustun qoladi
		if _, exists := columnMap[key]; !exists {
			columnMap[key] = i
		}
	}

	return columnMap
}

func firstSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("excel file has no sheets")
	}
	return sheets[0], nil
}

func cellAt(row []string, columnMap map[string]int, key string) string {
	idx, ok := columnMap[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// contains tekshirish uchun helper
func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}
