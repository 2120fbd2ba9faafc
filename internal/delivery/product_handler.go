package delivery

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/catalog"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/usecase"
)

// ProductHandler serves the catalog read side: the general listing,
// the deals listing, and single-product lookups. Both listings run the
// same filter, they just start from different default specs.
type ProductHandler struct {
	catalog *catalog.Catalog
	log     *logrus.Logger
}

func NewProductHandler(cat *catalog.Catalog, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProductByID)
	router.GET("/categories", h.ListCategories)
	router.GET("/deals", h.ListDeals)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	spec := usecase.DefaultListingSpec()
	if err := h.applyQuery(c, &spec); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result := usecase.ApplyFilter(h.catalog.Products(), spec)
	h.log.Infof("Listed %d of %d products", len(result), len(h.catalog.Products()))
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", result)
}

func (h *ProductHandler) ListDeals(c *gin.Context) {
	spec := usecase.DefaultDealsSpec()
	if err := h.applyQuery(c, &spec); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	// The deals view never shows undiscounted products, even when the
	// client asks for "any discount".
	if spec.MinDiscount < 1 {
		spec.MinDiscount = 1
	}

	result := usecase.ApplyFilter(h.catalog.Products(), spec)
	h.log.Infof("Listed %d deals", len(result))
	SuccessResponse(c, http.StatusOK, "Deals retrieved successfully", result)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.catalog.ProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Product not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListCategories(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", h.catalog.Categories())
}

// applyQuery overlays the request's query parameters on the view's
// default spec. Absent parameters keep their defaults.
func (h *ProductHandler) applyQuery(c *gin.Context, spec *usecase.FilterSpec) error {
	spec.Query = c.Query("q")

	if raw := c.Query("categories"); raw != "" {
		spec.Categories = strings.Split(raw, ",")
	}
	if raw := c.Query("price_min"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidQueryParam("price_min")
		}
		spec.PriceMin = v
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidQueryParam("price_max")
		}
		spec.PriceMax = v
	}
	if raw := c.Query("min_discount"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidQueryParam("min_discount")
		}
		spec.MinDiscount = v
	}
	if raw := c.Query("ratings"); raw != "" {
		parts := strings.Split(raw, ",")
		ratings := make([]int, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.Atoi(part)
			if err != nil {
				return errInvalidQueryParam("ratings")
			}
			ratings = append(ratings, v)
		}
		spec.Ratings = ratings
	}
	return nil
}

func errInvalidQueryParam(name string) error {
	return fmt.Errorf("invalid query parameter: %s", name)
}
