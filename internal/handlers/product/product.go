// Package product exposes the catalog proxy endpoints plus the optional
// Elasticsearch-backed search.
package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplite_back_end/internal/catalog"
	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/services"
)

type Handler struct {
	catalog *catalog.Service
	search  *services.ProductSearch
}

func NewHandler(cat *catalog.Service, search *services.ProductSearch) *Handler {
	return &Handler{catalog: cat, search: search}
}

func (h *Handler) GetAll(c *gin.Context) {
	products, err := h.catalog.AllProducts(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetByID(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httperr.Abort(c, httperr.NotFound("Product not found with id: "+raw))
		return
	}

	product, err := h.catalog.ProductByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetByCategory(c *gin.Context) {
	category := c.Param("category")

	products, err := h.catalog.ProductsByCategory(c.Request.Context(), category)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Search queries the lazily built Elasticsearch index. 503 when search is
// not configured for this deployment.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		httperr.Abort(c, httperr.BadRequest("Query parameter 'q' is required"))
		return
	}
	if h.search == nil {
		httperr.Abort(c, httperr.Upstream())
		return
	}

	results, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
