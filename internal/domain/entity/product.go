package entity

import "time"

// Product sample katalogdagi bitta mahsulot qatori
type Product struct {
	Name        string
	Description string
	Price       float64
	SKU         string
	Category    string
	Stock       int
}

// Row mahsulotni header tartibida jadval qatoriga aylantirish
func (p Product) Row() []interface{} {
	return []interface{}{p.Name, p.Description, p.Price, p.SKU, p.Category, p.Stock}
}

// ProductCatalog mahsulotlar katalogi
type ProductCatalog struct {
	Products  []Product
	CreatedAt time.Time
	Source    string // Excel fayl nomi
}
