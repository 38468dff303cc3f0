package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/events"
	"storefront/mailer"
	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

type CheckoutController struct {
	orderRepo *repositories.OrderRepository
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{orderRepo: repositories.NewOrderRepository()}
}

// Checkout godoc
// @Summary Place order
// @Description Atomically persist an order and its line items from the cart snapshot. Unit prices are re-read from the catalog; a snapshot total that disagrees beyond rounding is rejected. The client clears its cart afterwards as a separate step.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Missing fields"})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Address = strings.TrimSpace(req.Address)
	req.Email = strings.TrimSpace(req.Email)

	if req.FullName == "" || req.Address == "" || req.Email == "" || req.CardNumber == "" {
		c.JSON(400, gin.H{"success": false, "message": "Missing fields"})
		return
	}

	if len(req.CartItems) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	if !utils.ValidateCardNumber(req.CardNumber) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid card number"})
		return
	}

	order := &models.Order{
		UserID:     userID,
		FullName:   req.FullName,
		Address:    req.Address,
		Email:      req.Email,
		CardNumber: utils.MaskCardNumber(req.CardNumber),
	}

	err := ctrl.orderRepo.PlaceOrder(c.Request.Context(), order, req.CartItems)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmptyCart):
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		case errors.Is(err, repositories.ErrNotFound):
			c.JSON(400, gin.H{"success": false, "message": "Cart contains an unknown product"})
		case errors.Is(err, repositories.ErrPriceMismatch):
			c.JSON(400, gin.H{"success": false, "message": "Cart prices are out of date, please refresh your cart"})
		default:
			log.Println("Order insert error:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to place order"})
		}
		return
	}

	// Email and the order event are best effort; the order is already
	// committed and neither failure is surfaced to the client.
	if mailer.Default != nil {
		go func(email, name string, orderID int, total float64) {
			if err := mailer.Default.SendOrderConfirmation(email, name, orderID, total); err != nil {
				log.Println("Order confirmation email failed:", err)
			}
		}(order.Email, order.FullName, order.ID, order.TotalPrice)
	}

	if events.Default != nil {
		if err := events.Default.PublishOrderPlaced(events.OrderPlaced{
			OrderID:   order.ID,
			UserID:    order.UserID,
			Total:     order.TotalPrice,
			ItemCount: len(req.CartItems),
		}); err != nil {
			log.Println("Order event publish failed:", err)
		}
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed",
		"data": gin.H{
			"order_id":    order.ID,
			"total_price": order.TotalPrice,
		},
	})
}
