package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"storefront/repositories"
)

type OrderController struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{orderRepo: repositories.NewOrderRepository()}
}

// GetOrderHistory godoc
// @Summary Get order history
// @Description List the caller's past order lines, newest order first, with prices frozen at purchase time
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.OrderHistoryLine
// @Router /api/orders/history [get]
func (ctrl *OrderController) GetOrderHistory(c *gin.Context) {
	userID := c.GetInt("user_id")

	lines, err := ctrl.orderRepo.HistoryByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println("Failed to fetch history:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch history"})
		return
	}

	c.JSON(200, lines)
}
