package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melodias-store/melodias-api/initializers"
	"github.com/melodias-store/melodias-api/models"
	"gorm.io/gorm"
)

// GetUsers lists every account. Admin only.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	if result := initializers.DB.Order("created_at desc").Find(&users); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

// CreateEmployee registers a new staff account with the employee role.
// Admin only.
func CreateEmployee(ctx *gin.Context) {
	var employeeData struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=5"`
		Address   string `json:"address"`
		Phone     string `json:"phone"`
	}
	if err := ctx.ShouldBindJSON(&employeeData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(employeeData.Email)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(employeeData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHash)
		return
	}

	employee := models.User{
		FirstName: employeeData.FirstName,
		LastName:  employeeData.LastName,
		Email:     employeeData.Email,
		Password:  hashedPassword,
		Address:   employeeData.Address,
		Phone:     employeeData.Phone,
		Role:      models.RoleEmployee,
		Active:    true,
	}
	if result := initializers.DB.Create(&employee); result.Error != nil {
		log.Println("Employee creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Employee created successfully.",
		"user":    employee,
	})
}

// ToggleUserActive flips a user's active flag. Admins cannot deactivate
// their own account this way.
func ToggleUserActive(ctx *gin.Context) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if uint(userId) == adminID {
		sendErrorResponse(ctx, http.StatusBadRequest, "You cannot deactivate your own account.")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	newActive := !user.Active
	if result := initializers.DB.Model(&user).Update("active", newActive); result.Error != nil {
		log.Println("User toggle error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	state := "deactivated"
	if newActive {
		state = "activated"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User " + user.Email + " " + state + "."})
}
