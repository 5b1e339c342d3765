package handlers

import (
	applog "blossom/internal/log"
	"blossom/internal/services"
	"blossom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog  *services.CatalogService
	Delivery *services.DeliveryService
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && category != "all" {
		if _, ok := validate.Category(category); !ok {
			category = "all"
		}
	}
	products, err := h.Catalog.ListProducts(category)
	if err != nil {
		applog.Error(c, "catalog.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Не удалось загрузить каталог"})
	}
	if category == "" {
		category = "all"
	}
	return render(c, "home", fiber.Map{
		"Categories":    h.Catalog.Categories(),
		"Selected":      category,
		"Products":      products,
		"DeliveryDates": h.Delivery.Dates(14),
	})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Этот букет больше недоступен"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || !p.IsAvailable {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Этот букет больше недоступен"})
	}
	return render(c, "product", fiber.Map{"P": p})
}
