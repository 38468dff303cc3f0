package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/config"
	"storefront/models"
	"storefront/repositories"
)

type ProductController struct {
	productRepo *repositories.ProductRepository
	feedClient  *http.Client
}

func NewProductController() *ProductController {
	return &ProductController{
		productRepo: repositories.NewProductRepository(),
		feedClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

const productCacheKey = "products_all"

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(context.Background(), productCacheKey)
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get the full product catalog
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, productCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.productRepo.GetAll(ctx)
	if err != nil {
		log.Println("Error fetching products:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error fetching products"})
		return
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(products); err == nil {
			config.RedisClient.Set(ctx, productCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, products)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		log.Println("Error fetching product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error fetching product"})
		return
	}

	c.JSON(200, product)
}

// SearchProducts godoc
// @Summary Search products
// @Description Filter products by text, category, and price range; all provided filters AND together
// @Tags Products
// @Produce json
// @Param query query string false "Substring match on name or description"
// @Param category query string false "Exact category match"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {array} models.Product
// @Router /api/products/search [get]
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	params := repositories.SearchParams{
		Query:    strings.TrimSpace(c.Query("query")),
		Category: strings.TrimSpace(c.Query("category")),
	}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid minPrice"})
			return
		}
		params.MinPrice = &v
	}

	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid maxPrice"})
			return
		}
		params.MaxPrice = &v
	}

	products, err := ctrl.productRepo.Search(c.Request.Context(), params)
	if err != nil {
		log.Println("Search query error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Error fetching products"})
		return
	}

	c.JSON(200, products)
}

// feedProduct is the shape of one entry in the external catalog feed.
type feedProduct struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// ImportProducts godoc
// @Summary Import catalog
// @Description Pull products from the external catalog feed into the store
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Failure 502 {object} models.ErrorResponse
// @Router /api/products/import [post]
func (ctrl *ProductController) ImportProducts(c *gin.Context) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, config.AppConfig.CatalogFeedURL, nil)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to import products"})
		return
	}

	resp, err := ctrl.feedClient.Do(req)
	if err != nil {
		log.Println("Import failed:", err)
		c.JSON(502, gin.H{"success": false, "message": "Failed to import products"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("Import failed: feed returned status", resp.StatusCode)
		c.JSON(502, gin.H{"success": false, "message": "Failed to import products"})
		return
	}

	var feed []feedProduct
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		log.Println("Import failed: bad feed payload:", err)
		c.JSON(502, gin.H{"success": false, "message": "Failed to import products"})
		return
	}

	products := make([]models.Product, 0, len(feed))
	for _, f := range feed {
		products = append(products, models.Product{
			Name:        f.Title,
			Description: f.Description,
			Price:       f.Price,
			ImageURL:    f.Image,
			Category:    f.Category,
		})
	}

	count, err := ctrl.productRepo.ImportBatch(c.Request.Context(), products)
	if err != nil {
		log.Println("Insert error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to import products"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": fmt.Sprintf("Imported %d products", count)})
}
