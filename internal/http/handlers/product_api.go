package handlers

import (
	"database/sql"
	"errors"

	"blossom/internal/domain"
	applog "blossom/internal/log"
	"blossom/internal/repos"
	"blossom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// ProductAPIHandler implements the method-dispatched /api/products endpoint
// used by the admin panel (and, without a token, by the storefront).
type ProductAPIHandler struct {
	Repo       *repos.ProductRepo
	SecretHash string
}

type productPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Composition string `json:"composition"`
	IsAvailable *bool  `json:"is_available"`
}

func (pl *productPayload) toProduct() (domain.Product, string) {
	name, ok := validate.Name(pl.Name)
	if !ok {
		return domain.Product{}, "name is required"
	}
	category, ok := validate.Category(pl.Category)
	if !ok {
		return domain.Product{}, "unknown category"
	}
	avail := true
	if pl.IsAvailable != nil {
		avail = *pl.IsAvailable
	}
	price := pl.Price
	if price < 0 {
		price = 0
	}
	return domain.Product{
		ID:          pl.ID,
		Name:        name,
		Price:       price,
		Category:    category,
		ImageURL:    pl.ImageURL,
		Description: pl.Description,
		Composition: pl.Composition,
		IsAvailable: avail,
	}, ""
}

// List handles GET. Without parameters it serves the public storefront
// catalog; ?all=true is the admin listing and requires a valid token.
func (h *ProductAPIHandler) List(c *fiber.Ctx) error {
	if c.Query("all") == "true" {
		if !adminTokenOK(c, h.SecretHash) {
			applog.Security(c, "access.denied.token", map[string]any{"op": "list_all"})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		rows, err := h.Repo.ListAll()
		if err != nil {
			applog.Error(c, "products.list.fail", err, nil)
			return c.Status(500).JSON(fiber.Map{"error": "could not load products"})
		}
		return c.JSON(rows)
	}

	rows, err := h.Repo.ListAvailable()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(rows)
}

// Create handles POST; the token guard runs as middleware.
func (h *ProductAPIHandler) Create(c *fiber.Ctx) error {
	var pl productPayload
	if err := c.BodyParser(&pl); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "unable to parse product"})
	}
	p, msg := pl.toProduct()
	if msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}
	p.ID = 0
	created, err := h.Repo.Create(p)
	if err != nil {
		applog.Error(c, "products.create.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"error": "could not create product"})
	}
	applog.Audit(c, "products.create", map[string]any{"id": created.ID, "name": created.Name})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT; the body must carry a real id.
func (h *ProductAPIHandler) Update(c *fiber.Ctx) error {
	var pl productPayload
	if err := c.BodyParser(&pl); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "unable to parse product"})
	}
	if pl.ID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "product id is required"})
	}
	p, msg := pl.toProduct()
	if msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}
	updated, err := h.Repo.Update(p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		applog.Error(c, "products.update.fail", err, map[string]any{"id": p.ID})
		return c.Status(500).JSON(fiber.Map{"error": "could not update product"})
	}
	applog.Audit(c, "products.update", map[string]any{"id": updated.ID})
	return c.JSON(updated)
}

// Delete handles DELETE ?id=<id>.
func (h *ProductAPIHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "product id is required"})
	}
	if err := h.Repo.Delete(id); err != nil {
		applog.Error(c, "products.delete.fail", err, map[string]any{"id": id})
		return c.Status(500).JSON(fiber.Map{"error": "could not delete product"})
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}
