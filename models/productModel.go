package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	ProductImg  string  `json:"productImg" binding:"required"`
	Description string  `json:"description" binding:"required"`
}
