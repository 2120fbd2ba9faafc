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

type WishlistHandler struct {
	wishlist usecase.WishlistStore
	cart     usecase.CartStore
	catalog  *catalog.Catalog
	log      *logrus.Logger
}

func NewWishlistHandler(
	wishlist usecase.WishlistStore,
	cart usecase.CartStore,
	cat *catalog.Catalog,
	logger *logrus.Logger,
) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		cart:     cart,
		catalog:  cat,
		log:      logger,
	}
}

func (h *WishlistHandler) RegisterRoutes(router gin.IRouter) {
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("/items", h.AddItem)
		wishlist.DELETE("/items/:id", h.RemoveItem)
		wishlist.POST("/items/:id/move-to-cart", h.MoveToCart)
	}
}

type AddWishlistRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type WishlistView struct {
	Items []domain.Product `json:"items"`
	Count int              `json:"count"`
}

func (h *WishlistHandler) view() WishlistView {
	return WishlistView{
		Items: h.wishlist.Items(),
		Count: h.wishlist.WishlistCount(),
	}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Wishlist retrieved successfully", h.view())
}

func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for add wishlist item: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		h.log.Warnf("Add to wishlist referenced unknown product ID %d", req.ProductID)
		ErrorResponse(c, mapErrorToStatus(err), "Product not found")
		return
	}

	h.wishlist.AddToWishlist(product)
	SuccessResponse(c, http.StatusOK, "Product added to wishlist", h.view())
}

func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	id, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.wishlist.RemoveFromWishlist(id)
	SuccessResponse(c, http.StatusOK, "Product removed from wishlist", h.view())
}

// MoveToCart mirrors the storefront's "Move to Cart" action: add the
// wishlisted product to the cart, then drop it from the wishlist.
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	id, ok := h.productIDParam(c)
	if !ok {
		return
	}

	if !h.wishlist.IsInWishlist(id) {
		ErrorResponse(c, http.StatusNotFound, "Product not in wishlist")
		return
	}
	product, err := h.catalog.ProductByID(id)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Product not found")
		return
	}

	h.cart.AddToCart(product, 1)
	h.wishlist.RemoveFromWishlist(id)

	h.log.Infof("Moved product ID %d from wishlist to cart", id)
	SuccessResponse(c, http.StatusOK, "Product moved to cart", h.view())
}

func (h *WishlistHandler) productIDParam(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}
