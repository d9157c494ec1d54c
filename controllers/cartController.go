package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/cart"
	"github.com/melodias-store/melodias-api/initializers"
	"github.com/melodias-store/melodias-api/middlewares"
	"github.com/melodias-store/melodias-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func cartSessionID(ctx *gin.Context) string {
	return ctx.GetString(middlewares.CartSessionCookie)
}

func loadCart(ctx *gin.Context) (*cart.Cart, string, bool) {
	sessionID := cartSessionID(ctx)
	if sessionID == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Cart session not established")
		return nil, "", false
	}

	sessionCart, err := initializers.CartStore.Get(ctx.Request.Context(), sessionID)
	if err != nil {
		log.Println("Cart store error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return nil, "", false
	}
	return sessionCart, sessionID, true
}

// AddToCart appends units of a product to the session cart. The add is
// refused when the cart would exceed the product's current stock; the cart
// is re-validated against stock again at checkout.
func AddToCart(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var addData struct {
		Quantity int `json:"quantity"`
	}
	// Missing body means a single unit.
	if err := ctx.ShouldBindJSON(&addData); err != nil || addData.Quantity < 1 {
		addData.Quantity = 1
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch product")
		}
		return
	}

	sessionCart, sessionID, ok := loadCart(ctx)
	if !ok {
		return
	}

	if err := sessionCart.Add(product.ID, addData.Quantity, product.Stock); err != nil {
		var oos *cart.OutOfStockError
		if errors.As(err, &oos) {
			sendJSONResponse(ctx, http.StatusConflict, gin.H{
				"message":   "Not enough stock for " + product.Name,
				"available": oos.Available,
				"inCart":    oos.InCart,
			})
			return
		}
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := initializers.CartStore.Save(ctx.Request.Context(), sessionID, sessionCart); err != nil {
		log.Println("Cart store error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  strconv.Itoa(addData.Quantity) + " unit(s) of " + product.Name + " added to cart",
		"quantity": sessionCart.Count(product.ID),
	})
}

// RemoveFromCart deletes every unit of the product from the session cart.
// Removing a product that is not in the cart succeeds quietly.
func RemoveFromCart(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	sessionCart, sessionID, ok := loadCart(ctx)
	if !ok {
		return
	}

	sessionCart.Remove(uint(productId))

	if err := initializers.CartStore.Save(ctx.Request.Context(), sessionID, sessionCart); err != nil {
		log.Println("Cart store error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product removed from cart."})
}

// GetCart returns the grouped cart contents with subtotals priced from the
// catalog's current state. Stock is not re-checked here.
func GetCart(ctx *gin.Context) {
	sessionCart, _, ok := loadCart(ctx)
	if !ok {
		return
	}

	lines := sessionCart.Lines()
	if len(lines) == 0 {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"items": []gin.H{}, "total": decimal.Zero})
		return
	}

	var products []models.Product
	if err := initializers.DB.Where("id IN ?", sessionCart.ProductIDs()).Find(&products).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart products")
		return
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := []gin.H{}
	total := decimal.Zero
	for _, line := range lines {
		product, found := byID[line.ProductID]
		if !found {
			// Product removed from the catalog since it was added.
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		items = append(items, gin.H{
			"product":  product,
			"quantity": line.Quantity,
			"subtotal": subtotal,
		})
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items, "total": total})
}
