package excel_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/infrastructure/excel"
	"github.com/yourusername/sample-products/internal/usecase"
)

func writeSample(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path, err := excel.NewWriter().WriteProducts(context.Background(), dir, "sample_products.xlsx", usecase.SampleProducts())
	require.NoError(t, err)
	return dir, path
}

func TestWriteProducts_Layout(t *testing.T) {
	_, path := writeSample(t)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 6)
	for i, row := range rows {
		assert.Len(t, row, 6, "row %d", i+1)
	}

	assert.Equal(t, excel.Header, rows[0])
	assert.Equal(t, []string{"LED Desk Lamp", "Bright LED lamp", "89.99", "LAMP-001", "Office", "45"}, rows[1])
}

func TestWriteProducts_ChangesWorkingDirectory(t *testing.T) {
	dir, path := writeSample(t)

	wd, err := os.Getwd()
	require.NoError(t, err)

	wantInfo, err := os.Stat(dir)
	require.NoError(t, err)
	gotInfo, err := os.Stat(wd)
	require.NoError(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo))

	assert.Equal(t, "sample_products.xlsx", filepath.Base(path))
	assert.FileExists(t, filepath.Join(dir, "sample_products.xlsx"))
}

func TestWriteProducts_NumberFormats(t *testing.T) {
	_, path := writeSample(t)
	reader := excel.NewReader()

	priceFormats, err := reader.NumberFormats(context.Background(), path, "price")
	require.NoError(t, err)
	assert.Equal(t, []string{"0.00", "0.00", "0.00", "0.00", "0.00"}, priceFormats)

	stockFormats, err := reader.NumberFormats(context.Background(), path, "stock")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0", "0", "0", "0"}, stockFormats)

	nameFormats, err := reader.NumberFormats(context.Background(), path, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"General", "General", "General", "General", "General"}, nameFormats)
}

func TestWriteProducts_RoundTrip(t *testing.T) {
	_, path := writeSample(t)

	products, err := excel.NewReader().ParseProducts(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, usecase.SampleProducts(), products)
}

func TestWriteProducts_OverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	target := filepath.Join(dir, "sample_products.xlsx")
	require.NoError(t, os.WriteFile(target, []byte("stale"), 0o644))

	writer := excel.NewWriter()
	reader := excel.NewReader()

	_, err := writer.WriteProducts(context.Background(), dir, "sample_products.xlsx", usecase.SampleProducts())
	require.NoError(t, err)
	first, err := reader.ParseProducts(context.Background(), target)
	require.NoError(t, err)

	_, err = writer.WriteProducts(context.Background(), dir, "sample_products.xlsx", usecase.SampleProducts())
	require.NoError(t, err)
	second, err := reader.ParseProducts(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteProducts_MissingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := excel.NewWriter().WriteProducts(context.Background(), dir, "sample_products.xlsx", usecase.SampleProducts())
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "sample_products.xlsx"))
}

func TestWriteProducts_NoProducts(t *testing.T) {
	_, err := excel.NewWriter().WriteProducts(context.Background(), t.TempDir(), "empty.xlsx", nil)
	assert.True(t, errors.Is(err, entity.ErrNoProducts))
}

func TestWriteProducts_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := excel.NewWriter().WriteProducts(ctx, t.TempDir(), "sample_products.xlsx", usecase.SampleProducts())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseProducts_RejectsFractionalStock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractional.xlsx")

	f := excelize.NewFile()
	header := []interface{}{"name", "description", "price", "sku", "category", "stock"}
	row := []interface{}{"Wireless Mouse", "Ergonomic mouse", 29.99, "MOUSE-001", "Electronics", 120.5}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := excel.NewReader().ParseProducts(context.Background(), path)
	assert.ErrorIs(t, err, entity.ErrInvalidStock)
}

func TestParseProducts_MapsHeaderByKeyword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reordered.xlsx")

	f := excelize.NewFile()
	header := []interface{}{"SKU", "Product Name", "Qty", "Unit Price"}
	row := []interface{}{"HUB-001", "USB-C Hub", 85, 49.99}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	products, err := excel.NewReader().ParseProducts(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, entity.Product{Name: "USB-C Hub", Price: 49.99, SKU: "HUB-001", Stock: 85}, products[0])
}

func TestParseProducts_MissingStockColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nostock.xlsx")

	f := excelize.NewFile()
	header := []interface{}{"name", "price"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := excel.NewReader().ParseProducts(context.Background(), path)
	assert.ErrorContains(t, err, `"stock"`)
}

func TestDescribe(t *testing.T) {
	_, path := writeSample(t)

	summary, err := excel.NewReader().Describe(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1"}, summary.Sheets)
	assert.Equal(t, excel.Header, summary.Columns)
	assert.Equal(t, 5, summary.RowCount)
	require.Len(t, summary.FirstRows, 5)
	assert.Equal(t, "LED Desk Lamp", summary.FirstRows[0][0])
	assert.Equal(t, "89.99", summary.FirstRows[0][2])
	assert.Equal(t, "45", summary.FirstRows[0][5])
}

func TestDescribe_MissingFile(t *testing.T) {
	_, err := excel.NewReader().Describe(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
