package delivery

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/catalog"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/repository"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/usecase"
)

type memCartRepo struct{ stored []domain.CartItem }

func (r *memCartRepo) Load() ([]domain.CartItem, error) { return r.stored, nil }
func (r *memCartRepo) Save(items []domain.CartItem) error {
	r.stored = items
	return nil
}

type memWishlistRepo struct{ stored []domain.Product }

func (r *memWishlistRepo) Load() ([]domain.Product, error) { return r.stored, nil }
func (r *memWishlistRepo) Save(products []domain.Product) error {
	r.stored = products
	return nil
}

type memSessionRepo struct{ stored *domain.User }

func (r *memSessionRepo) Load() (*domain.User, error) { return r.stored, nil }
func (r *memSessionRepo) Save(user *domain.User) error {
	r.stored = user
	return nil
}
func (r *memSessionRepo) Clear() error {
	r.stored = nil
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cat := catalog.New()
	directory := repository.NewMemoryUserDirectory(catalog.SeedUsers(), logger)
	sessions := usecase.NewSessionStore(directory, &memSessionRepo{}, usecase.PlainVerifier{}, 0, logger)
	cart := usecase.NewCartStore(&memCartRepo{}, logger)
	wishlist := usecase.NewWishlistStore(&memWishlistRepo{}, logger)

	router := gin.New()
	NewAuthHandler(sessions, logger).RegisterRoutes(router)
	NewCartHandler(cart, cat, logger).RegisterRoutes(router)
	NewWishlistHandler(wishlist, cart, cat, logger).RegisterRoutes(router)
	NewProductHandler(cat, logger).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestListProductsDefaultReturnsFullCatalog(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	decodeData(t, w, &products)
	assert.Len(t, products, len(catalog.New().Products()))
}

func TestListProductsWithFilters(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/products?q=sony&categories=Electronics&ratings=4", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	decodeData(t, w, &products)
	require.Len(t, products, 1)
	assert.Equal(t, 4, products[0].ID)
}

func TestListProductsRejectsBadQueryParam(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/products?price_min=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDealsExcludesUndiscounted(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/deals", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	decodeData(t, w, &products)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Positive(t, p.Discount)
	}

	// min_discount=0 means "any discount", never "include full price".
	w = doJSON(t, router, http.MethodGet, "/deals?min_discount=0", "")
	decodeData(t, w, &products)
	for _, p := range products {
		assert.Positive(t, p.Discount)
	}
}

func TestCartEndpointsFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id": 4, "quantity": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id": 4, "quantity": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view CartView
	decodeData(t, w, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, 3*23992, view.Total)

	// quantity 0 removes the line
	w = doJSON(t, router, http.MethodPatch, "/cart/items/4", `{"quantity": 0}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &view)
	assert.Empty(t, view.Items)
}

func TestAddUnknownProductToCartIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart/items", `{"product_id": 999, "quantity": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistMoveToCart(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/wishlist/items", `{"product_id": 5}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/wishlist/items/5/move-to-cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var wishlistView WishlistView
	decodeData(t, w, &wishlistView)
	assert.Zero(t, wishlistView.Count)

	w = doJSON(t, router, http.MethodGet, "/cart", "")
	var cartView CartView
	decodeData(t, w, &cartView)
	require.Len(t, cartView.Items, 1)
	assert.Equal(t, 5, cartView.Items[0].Product.ID)

	// moving a product that is not wishlisted fails without touching the cart
	w = doJSON(t, router, http.MethodPost, "/wishlist/items/4/move-to-cart", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var session SessionResponse
	decodeData(t, w, &session)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "John Doe", session.User.Name)

	w = doJSON(t, router, http.MethodGet, "/auth/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &session)
	assert.Equal(t, "john@example.com", session.User.Email)

	w = doJSON(t, router, http.MethodPost, "/auth/register", `{"name":"B","email":"john@example.com","password":"pw2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionResponseNeverLeaksCredential(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/auth/login", `{"email":"john@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password123")
}
