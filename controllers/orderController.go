package controllers

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/initializers"
	"github.com/melodias-store/melodias-api/models"
	"github.com/melodias-store/melodias-api/orders"
	"github.com/melodias-store/melodias-api/utils"
	"gorm.io/gorm"
)

// Checkout converts the session cart into a persisted order. The stock
// check, the stock decrement, and the order/item writes commit as one
// transaction; the decrement is conditional on remaining stock so two
// overlapping checkouts cannot both take the last unit.
func Checkout(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var checkoutData struct {
		PaymentMethodID string `json:"paymentMethodId"`
	}
	if err := ctx.ShouldBindJSON(&checkoutData); err != nil || checkoutData.PaymentMethodID == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Please select a payment method to continue.")
		return
	}

	sessionCart, sessionID, ok := loadCart(ctx)
	if !ok {
		return
	}
	if sessionCart.IsEmpty() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty.")
		return
	}

	var products []models.Product
	if err := initializers.DB.Where("id IN ?", sessionCart.ProductIDs()).Find(&products).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart products")
		return
	}

	draft, err := orders.BuildDraft(sessionCart.Lines(), products)
	if err != nil {
		var insufficient *orders.InsufficientStockError
		if errors.As(err, &insufficient) {
			sendJSONResponse(ctx, http.StatusConflict, gin.H{
				"message":   "Insufficient stock for " + insufficient.ProductName,
				"available": insufficient.Available,
				"requested": insufficient.Requested,
			})
			return
		}
		if errors.Is(err, orders.ErrEmptyDraft) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty.")
			return
		}
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	order := models.Order{
		UserID: userID,
		Status: orders.StatusPendingShipment,
		Total:  draft.Total,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	for _, item := range draft.Items {
		// Conditional decrement: zero rows affected means the stock
		// changed under us since the draft was built.
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
		if result.Error != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update stock")
			return
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			sendJSONResponse(ctx, http.StatusConflict, gin.H{
				"message": "Insufficient stock for " + item.ProductName,
			})
			return
		}

		item.OrderID = order.ID
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order items")
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	// Only clear the cart once the order is committed.
	if err := initializers.CartStore.Clear(ctx.Request.Context(), sessionID); err != nil {
		log.Println("Failed to clear cart after checkout:", err)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully.",
		"orderId": order.ID,
		"total":   draft.Total,
	})
}

// CancelOrder lets the owning user cancel an order that has not shipped.
// Stock for every item is restored; items whose product has since been
// deleted are skipped without failing the cancellation.
func CancelOrder(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("Items").First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	if order.UserID != userID {
		sendErrorResponse(ctx, http.StatusForbidden, "You do not have permission to modify this order.")
		return
	}

	if !orders.CanCancel(order.Status) {
		sendErrorResponse(ctx, http.StatusConflict, "Order cannot be cancelled: it has already been processed or shipped.")
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	restitutionErr := orders.ApplyRestitution(orders.RestitutionPlan(order.Items), func(productID uint, quantity int) (int64, error) {
		result := tx.Model(&models.Product{}).
			Where("id = ?", productID).
			UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
		return result.RowsAffected, result.Error
	})
	if restitutionErr != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to restore stock")
		return
	}

	if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", orders.StatusCancelled).Error; err != nil {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order cancelled. Stock has been restored."})
}

// GetOrders lists every order with pagination. Staff only.
func GetOrders(ctx *gin.Context) {
	var allOrders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("Items").Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&allOrders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.Order{}).Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": allOrders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// GetMyOrders lists the authenticated user's own orders.
func GetMyOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var myOrders []models.Order
	result := initializers.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at " + sortOrder).
		Find(&myOrders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": myOrders})
}

// GetOrderById returns one order. Customers can only read their own;
// employees and admins can read any.
func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("Items").First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	userID, _ := currentUserID(ctx)
	role := currentUserRole(ctx)
	if order.UserID != userID && role != models.RoleAdmin && role != models.RoleEmployee {
		sendErrorResponse(ctx, http.StatusForbidden, "You do not have permission to view this order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus sets any status an employee or admin asks for. The
// first transition to Shipped additionally assigns a random carrier and a
// tracking number; later Shipped updates leave them untouched.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	updates := map[string]any{"status": orderStatusData.Status}

	var shipment orders.Shipment
	shipped := orders.NeedsShipmentMetadata(orderStatusData.Status, order.Status)
	if shipped {
		var couriers []models.Courier
		if err := initializers.DB.Find(&couriers).Error; err != nil {
			log.Println("Failed to fetch couriers:", err)
		}
		names := make([]string, len(couriers))
		for i, c := range couriers {
			names[i] = c.Name
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		shipment = orders.SimulateShipment(names, rng)
		updates["shipping_company"] = shipment.Carrier
		updates["tracking_number"] = shipment.TrackingNumber
	}

	if result := initializers.DB.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	response := gin.H{"message": "Order status updated successfully."}
	if shipped {
		response["trackingNumber"] = shipment.TrackingNumber
		response["shippingCompany"] = shipment.Carrier
		notifyShipment(order, shipment)
	}

	ctx.JSON(http.StatusOK, response)
}

// notifyShipment emails the purchaser their tracking details. Best effort:
// a mail failure never fails the status update.
func notifyShipment(order models.Order, shipment orders.Shipment) {
	var user models.User
	if err := initializers.DB.First(&user, order.UserID).Error; err != nil {
		log.Println("Shipment notification skipped, user not found:", err)
		return
	}

	emailData := utils.EmailData{
		Name:           user.FirstName,
		Message:        "Your order is on its way.",
		OrderID:        order.ID,
		Carrier:        shipment.Carrier,
		TrackingNumber: shipment.TrackingNumber,
	}

	templatePath := filepath.Join("templates", "order_shipped.html")
	if err := utils.SendEmail(user.Email, "Your order has shipped", emailData, templatePath); err != nil {
		log.Println("Error sending shipment email:", err)
	} else {
		log.Println("Shipment email sent successfully to:", user.Email)
	}
}
