package entity

import "errors"

var (
	// ErrNoProducts yozish yoki o'qish uchun mahsulot yo'q
	ErrNoProducts = errors.New("no products")

	// ErrInvalidStock stock qiymati butun son emas
	ErrInvalidStock = errors.New("stock is not an integer")
)
