package usecase

import "github.com/yourusername/sample-products/internal/domain/entity"

// SampleProducts test uchun qat'iy mahsulotlar ro'yxati.
// Har chaqiruvda yangi slice qaytadi.
func SampleProducts() []entity.Product {
	return []entity.Product{
		{Name: "LED Desk Lamp", Description: "Bright LED lamp", Price: 89.99, SKU: "LAMP-001", Category: "Office", Stock: 45},
		{Name: "Wireless Mouse", Description: "Ergonomic mouse", Price: 29.99, SKU: "MOUSE-001", Category: "Electronics", Stock: 120},
		{Name: "Mechanical Keyboard", Description: "RGB keyboard", Price: 149.99, SKU: "KEY-001", Category: "Electronics", Stock: 60},
		{Name: "USB-C Hub", Description: "USB hub HDMI", Price: 49.99, SKU: "HUB-001", Category: "Accessories", Stock: 85},
		{Name: "Monitor Stand", Description: "Adjustable stand", Price: 39.99, SKU: "STAND-001", Category: "Office", Stock: 40},
	}
}
