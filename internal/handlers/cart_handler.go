package handlers

import (
	"tsena/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HeaderCartID carries the caller's cart id. When absent a fresh cart
// is created and its id echoed back in the response header.
const HeaderCartID = "X-Cart-ID"

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	carts    *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleViewCart returns the cart's lines and totals.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	cartID, view := h.carts.View(c.Get(HeaderCartID))
	c.Set(HeaderCartID, cartID)
	return c.JSON(view)
}

// AddItemRequest represents the request body for adding a product to
// the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddItem adds one unit of a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
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

	cartID, err := h.carts.Add(c.Get(HeaderCartID), req.ProductID)
	if err != nil {
		return notFoundResponse(c, err)
	}

	c.Set(HeaderCartID, cartID)
	_, view := h.carts.View(cartID)
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateQuantityRequest represents the request body for setting a
// line's absolute quantity. Zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the absolute quantity of a cart line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cartID := h.carts.UpdateQuantity(c.Get(HeaderCartID), c.Params("productId"), req.Quantity)
	c.Set(HeaderCartID, cartID)
	_, view := h.carts.View(cartID)
	return c.JSON(view)
}

// HandleRemoveItem removes a cart line unconditionally.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cartID := h.carts.Remove(c.Get(HeaderCartID), c.Params("productId"))
	c.Set(HeaderCartID, cartID)
	_, view := h.carts.View(cartID)
	return c.JSON(view)
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	cartID := h.carts.Clear(c.Get(HeaderCartID))
	c.Set(HeaderCartID, cartID)
	_, view := h.carts.View(cartID)
	return c.JSON(view)
}
