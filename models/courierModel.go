package models

import "gorm.io/gorm"

// Courier is the carrier pool the shipment simulator picks from.
type Courier struct {
	gorm.Model
	Name string `json:"name"`
}
