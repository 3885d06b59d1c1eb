package handlers

import (
	"errors"
	"strconv"
	"strings"

	"tsena/internal/models"
	"tsena/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalog  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
}

// RegisterSellerRoutes registers the routes that require an
// authenticated seller.
func (h *ProductHandler) RegisterSellerRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/:id/comments", h.HandleAddComment)
	productRoutes.Post("/:id/like", h.HandleLikeProduct)

	sellerRoutes := router.Group("/sellers/me")
	sellerRoutes.Get("/products", h.HandleGetMyProducts)
	sellerRoutes.Get("/stats", h.HandleGetMyStats)
}

// HandleListProducts runs the catalog through the filter pipeline
// driven by query parameters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	search := c.Query("search")
	opts, err := parseFilterOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid filter parameters",
			"error":   err.Error(),
		})
	}

	products := h.catalog.ListProducts(search, opts)
	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// parseFilterOptions builds FilterOptions from query parameters,
// starting from the neutral defaults.
func parseFilterOptions(c *fiber.Ctx) (models.FilterOptions, error) {
	opts := models.DefaultFilters()

	if raw := c.Query("categories"); raw != "" {
		for _, slug := range strings.Split(raw, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				opts.Categories = append(opts.Categories, slug)
			}
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, err
		}
		opts.PriceRange.Min = min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, err
		}
		opts.PriceRange.Max = max
	}
	if sortBy := c.Query("sort"); sortBy != "" {
		opts.SortBy = sortBy
	}
	opts.TopSellers = c.QueryBool("top_sellers")

	return opts, nil
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.Params("id"))
	if err != nil {
		return notFoundResponse(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product owned by the acting seller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var draft models.Product
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	draft.ID = ""

	if reasons := validationReasons(h.validate.Struct(draft)); len(reasons) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  reasons,
		})
	}

	created := h.catalog.CreateProduct(actingSeller(c), draft)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct merges partial fields into the seller's product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var update models.ProductUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	id := c.Params("id")
	if err := h.catalog.UpdateProduct(actingSeller(c).ID, id, update); err != nil {
		return catalogErrorResponse(c, err)
	}

	product, err := h.catalog.GetProduct(id)
	if err != nil {
		return notFoundResponse(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes the seller's product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(actingSeller(c).ID, c.Params("id")); err != nil {
		return catalogErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted",
	})
}

// CommentRequest represents the request body for adding a comment.
type CommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// HandleAddComment appends a comment by the acting user.
func (h *ProductHandler) HandleAddComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if reasons := validationReasons(h.validate.Struct(req)); len(reasons) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  reasons,
		})
	}

	comment, err := h.catalog.AddComment(c.Params("id"), actingSeller(c).Name, req.Text)
	if err != nil {
		return notFoundResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleLikeProduct increments the product's like counter.
func (h *ProductHandler) HandleLikeProduct(c *fiber.Ctx) error {
	likes, err := h.catalog.LikeProduct(c.Params("id"))
	if err != nil {
		return notFoundResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"likes": likes,
	})
}

// HandleGetMyProducts returns the acting seller's products.
func (h *ProductHandler) HandleGetMyProducts(c *fiber.Ctx) error {
	products := h.catalog.GetSellerProducts(actingSeller(c).ID)
	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetMyStats returns the acting seller's dashboard aggregates.
func (h *ProductHandler) HandleGetMyStats(c *fiber.Ctx) error {
	return c.JSON(h.catalog.GetSellerStats(actingSeller(c).ID))
}

// actingSeller reads the identity the auth middleware stored in the
// request context.
func actingSeller(c *fiber.Ctx) *models.Session {
	session := &models.Session{}
	if id, ok := c.Locals("user_id").(string); ok {
		session.ID = id
	}
	if name, ok := c.Locals("user_name").(string); ok {
		session.Name = name
	}
	return session
}

func notFoundResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process request",
		"error":   err.Error(),
	})
}

func catalogErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You do not own this product",
		})
	}
	return notFoundResponse(c, err)
}
