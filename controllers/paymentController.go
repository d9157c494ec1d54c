package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/initializers"
	"github.com/melodias-store/melodias-api/models"
	"github.com/melodias-store/melodias-api/utils"
	"gorm.io/gorm"
)

// AddPaymentMethod saves a masked card record for the authenticated user.
// Only the last four digits of the card number survive.
func AddPaymentMethod(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var cardData struct {
		CardNumber string `json:"cardNumber" binding:"required,min=4"`
		CardHolder string `json:"cardHolder" binding:"required"`
		CardType   string `json:"cardType"`
	}
	if err := ctx.ShouldBindJSON(&cardData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	paymentMethod := models.PaymentMethod{
		UserID:       userID,
		CardType:     cardData.CardType,
		CardHolder:   cardData.CardHolder,
		MaskedNumber: utils.MaskCard(cardData.CardNumber),
	}
	if result := initializers.DB.Create(&paymentMethod); result.Error != nil {
		log.Println("Payment method creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":       "Payment method added successfully.",
		"paymentMethod": paymentMethod,
	})
}

// GetPaymentMethods lists the authenticated user's saved cards.
func GetPaymentMethods(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var paymentMethods []models.PaymentMethod
	if result := initializers.DB.Where("user_id = ?", userID).Find(&paymentMethods); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch payment methods")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"paymentMethods": paymentMethods})
}

// DeletePaymentMethod removes one of the authenticated user's own cards.
func DeletePaymentMethod(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	paymentMethodId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid payment method ID")
		return
	}

	var paymentMethod models.PaymentMethod
	if result := initializers.DB.First(&paymentMethod, paymentMethodId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Payment method not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if paymentMethod.UserID != userID {
		sendErrorResponse(ctx, http.StatusForbidden, "You do not have permission to delete this payment method.")
		return
	}

	if result := initializers.DB.Delete(&paymentMethod); result.Error != nil {
		log.Println("Payment method deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment method deleted."})
}
