package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/catalog/internal/adapters/http/handlers"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/service"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
	searchService  *service.SearchService
}

func NewProductController(productService *service.ProductService, searchService *service.SearchService) *ProductController {
	return &ProductController{
		productService: productService,
		searchService:  searchService,
	}
}

type PriceResponse struct {
	Amount             float64  `json:"amount"`
	Currency           string   `json:"currency"`
	OriginalAmount     *float64 `json:"originalAmount,omitempty"`
	HasDiscount        bool     `json:"hasDiscount"`
	DiscountPercentage int      `json:"discountPercentage"`
}

type ProductResponse struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Price             PriceResponse `json:"price"`
	CategoryID        string        `json:"categoryId"`
	Status            string        `json:"status"`
	AvailableQuantity int           `json:"availableQuantity"`
	IsAvailable       bool          `json:"isAvailable"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

type SearchResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	HasMore  bool              `json:"hasMore"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	price := PriceResponse{
		Amount:             product.Price.Amount().InexactFloat64(),
		Currency:           product.Price.Currency(),
		HasDiscount:        product.Price.HasDiscount(),
		DiscountPercentage: product.Price.DiscountPercentage(),
	}
	if original, ok := product.Price.OriginalAmount(); ok {
		value := original.InexactFloat64()
		price.OriginalAmount = &value
	}

	return ProductResponse{
		ID:                product.ID.String(),
		Title:             product.Title,
		Description:       product.Description,
		Price:             price,
		CategoryID:        product.CategoryID,
		Status:            product.Status.String(),
		AvailableQuantity: product.Stock.Value(),
		IsAvailable:       product.IsAvailable(),
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

func newProductResponses(products []*domain.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}
	return response
}

// GetProduct godoc
// @Summary     Get a product
// @Description Returns a product by id
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product id"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// SearchProducts godoc
// @Summary     Search products
// @Description Returns available products, optionally scoped to a category
// @Tags        products
// @Produce     json
// @Param       category query    string false "Category id"
// @Param       limit    query    int    false "Page size (1-100, default 20)"
// @Param       offset   query    int    false "Records to skip"
// @Success     200 {object} SearchResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) SearchProducts(c *gin.Context) {
	var request dto.SearchProductsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidParamsError(err.Error()))
		return
	}

	result, err := pc.searchService.Search(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Products: newProductResponses(result.Products),
		Limit:    result.Limit,
		Offset:   result.Offset,
		HasMore:  result.HasMore,
	})
}

// GetRelated godoc
// @Summary     Related products
// @Description Returns available products from the same category, excluding the product itself
// @Tags        products
// @Produce     json
// @Param       id    path     string true  "Product id"
// @Param       limit query    int    false "Max results (default 4)"
// @Success     200 {array}  ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/related [get]
func (pc *ProductController) GetRelated(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.HandleError(c, serviceerrors.NewInvalidParamsError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	related, err := pc.productService.GetRelated(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponses(related))
}

// SaveProduct godoc
// @Summary     Save a product
// @Description Creates or replaces a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.SaveProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) SaveProduct(c *gin.Context) {
	var request dto.SaveProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidParamsError(err.Error()))
		return
	}

	product, err := pc.productService.SaveProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Removes a product by id
// @Tags        products
// @Param       id path string true "Product id"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
