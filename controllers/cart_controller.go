package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/repositories"
)

type CartController struct {
	cartRepo    *repositories.CartRepository
	productRepo *repositories.ProductRepository
}

func NewCartController() *CartController {
	return &CartController{
		cartRepo:    repositories.NewCartRepository(),
		productRepo: repositories.NewProductRepository(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description List the caller's cart items joined with current product fields
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.CartItem
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.cartRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println("Error fetching cart:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error fetching cart"})
		return
	}

	c.JSON(200, items)
}

// AddToCart godoc
// @Summary Add to cart
// @Description Merge-on-add: a product already in the cart gets its quantity incremented
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Cart item"
// @Success 200 {object} models.CartItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Required fields missing"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if _, err := ctrl.productRepo.GetByID(c.Request.Context(), req.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		log.Println("Error validating product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error adding to cart"})
		return
	}

	item, err := ctrl.cartRepo.Add(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		log.Println("Error adding to cart:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error adding to cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Added to cart", "data": item})
}

// UpdateCartItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line; a quantity below 1 removes it
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{id} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Quantity is required"})
		return
	}

	if err := ctrl.cartRepo.SetQuantity(c.Request.Context(), userID, itemID, *req.Quantity); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		log.Println("Error updating cart item:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error updating cart item"})
		return
	}

	if *req.Quantity < 1 {
		c.JSON(200, gin.H{"success": true, "message": "Cart item removed"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart item updated"})
}

// RemoveCartItem godoc
// @Summary Remove cart item
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{id} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item ID"})
		return
	}

	if err := ctrl.cartRepo.Remove(c.Request.Context(), userID, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		log.Println("Error removing cart item:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error removing cart item"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart item deleted"})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every item in the caller's cart in one statement
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.cartRepo.Clear(c.Request.Context(), userID); err != nil {
		log.Println("Error clearing cart:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error clearing cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared"})
}
