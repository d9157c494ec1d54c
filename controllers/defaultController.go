package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Melodías API 🎸. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create customer account
- POST "/auth/login" - Access user account
- GET "/profile" - Get own profile
- PUT "/profile" - Update own profile
- POST "/profile/deactivate" - Deactivate own account

PRODUCT
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- POST "/product" - Create new product (staff)
- PUT "/product/:id" - Update product (staff)
- DELETE "/product/:id" - Delete product (staff)
- POST "/product/:id/image" - Upload product image (staff)

CART
- GET "/cart" - View cart
- POST "/cart/:productId" - Add product to cart
- DELETE "/cart/:productId" - Remove product from cart

ORDER
- POST "/checkout" - Convert cart into an order
- GET "/orders" - Get own orders
- GET "/orders/:orderId" - Get order by ID
- POST "/orders/:orderId/cancel" - Cancel own pending order
- PATCH "/admin/orders/:orderId" - Update order status (staff)
- GET "/admin/orders" - Get all orders (staff)

PAYMENT METHODS
- GET "/payment-methods" - List own saved cards
- POST "/payment-methods" - Save a card (masked)
- DELETE "/payment-methods/:id" - Delete a saved card

ADMIN
- GET "/admin/report" - Download sales report (staff)
- GET "/admin/users" - List users (admin)
- POST "/admin/users" - Create employee (admin)
- PATCH "/admin/users/:id/active" - Toggle user active flag (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
