package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID          uint            `json:"userId"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	TrackingNumber  string          `json:"trackingNumber"`
	ShippingCompany string          `json:"shippingCompany"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem freezes the product name and unit price at purchase time so the
// order history survives later catalog edits and deletions.
type OrderItem struct {
	gorm.Model
	OrderID     uint            `json:"orderId"`
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}
