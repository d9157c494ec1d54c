package models

import "gorm.io/gorm"

// PaymentMethod stores only the masked card number. The raw number is
// discarded after masking and never reaches the database.
type PaymentMethod struct {
	gorm.Model
	UserID       uint   `json:"userId"`
	CardType     string `json:"cardType"`
	CardHolder   string `json:"cardHolder"`
	MaskedNumber string `json:"maskedNumber"`
}
