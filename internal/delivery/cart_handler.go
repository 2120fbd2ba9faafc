package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/catalog"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/usecase"
)

type CartHandler struct {
	cart    usecase.CartStore
	catalog *catalog.Catalog
	log     *logrus.Logger
}

func NewCartHandler(cart usecase.CartStore, cat *catalog.Catalog, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: cat,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:id", h.UpdateItem)
		cart.DELETE("/items/:id", h.RemoveItem)
		cart.DELETE("", h.ClearCart)
	}
}

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartView is the cart plus its derived values, the shape the UI
// renders after every mutation.
type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total int               `json:"total"`
	Count int               `json:"count"`
}

func (h *CartHandler) view() CartView {
	return CartView{
		Items: h.cart.Items(),
		Total: h.cart.CartTotal(),
		Count: h.cart.CartCount(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", h.view())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for add cart item: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		h.log.Warnf("Add to cart referenced unknown product ID %d", req.ProductID)
		ErrorResponse(c, mapErrorToStatus(err), "Product not found")
		return
	}

	h.cart.AddToCart(product, req.Quantity)
	SuccessResponse(c, http.StatusOK, "Product added to cart", h.view())
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := h.productIDParam(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for update cart item %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Unknown ids fall through as a no-op; quantity <= 0 removes.
	h.cart.UpdateQuantity(id, req.Quantity)
	SuccessResponse(c, http.StatusOK, "Cart updated", h.view())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.cart.RemoveFromCart(id)
	SuccessResponse(c, http.StatusOK, "Product removed from cart", h.view())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	SuccessResponse(c, http.StatusOK, "Cart cleared", h.view())
}

func (h *CartHandler) productIDParam(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}
