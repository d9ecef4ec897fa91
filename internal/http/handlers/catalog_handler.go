package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"closetcircle/internal/catalog"
	applog "closetcircle/internal/log"
	"closetcircle/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	Wish    *services.WishlistService
}

// List serves GET /catalog?scope=all|owner|unavailable.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	switch c.Query("scope", "all") {
	case "all":
		listings, err := h.Catalog.ListAll()
		if err != nil {
			applog.Error(c, "catalog.list.fail", err, nil)
			return jsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"listings": listings})
	case "owner":
		owner := c.Query("owner")
		if owner == "" {
			return jsonError(c, fiber.StatusBadRequest, "missing owner")
		}
		listings, err := h.Catalog.ListByOwner(owner)
		if err != nil {
			applog.Error(c, "catalog.list.owner.fail", err, map[string]any{"owner": owner})
			return jsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"listings": listings})
	case "unavailable":
		orders, err := h.Catalog.UnavailableOrders()
		if err != nil {
			applog.Error(c, "catalog.unavailable.fail", err, nil)
			return jsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"orders": orders})
	default:
		return jsonError(c, fiber.StatusBadRequest, "unknown scope")
	}
}

// Trending serves GET /catalog/trending: top listings by like count.
func (h *CatalogHandler) Trending(c *fiber.Ctx) error {
	trending, err := h.Wish.Trending()
	if err != nil {
		applog.Error(c, "catalog.trending.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"trending": trending})
}

// Search serves GET /catalog/search: the filter/sort/paginate engine applied
// server-side. Facet params are comma-separated label lists.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	f := catalog.NewFilters()
	f.Types = splitParam(c.Query("types"))
	f.Audiences = splitParam(c.Query("audiences"))
	f.Colors = splitParam(c.Query("colors"))
	f.Sizes = splitParam(c.Query("sizes"))
	f.Conditions = splitParam(c.Query("conditions"))
	f.ForRent = c.QueryBool("for_rent")
	f.ForSale = c.QueryBool("for_sale")

	min, ok := catalog.PriceBound(c.Query("price_min"), catalog.DefaultPriceFloor)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "price_min must be digits")
	}
	max, ok := catalog.PriceBound(c.Query("price_max"), catalog.DefaultPriceCeiling)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "price_max must be digits")
	}
	f.PriceMin, f.PriceMax = min, max

	sortKey := catalog.Sort(c.Query("sort", string(catalog.SortPopular)))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size", strconv.Itoa(catalog.DefaultPageSize)))

	listings, err := h.Catalog.ListAll()
	if err != nil {
		applog.Error(c, "catalog.search.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	products := make([]catalog.Product, len(listings))
	byID := make(map[int64]int, len(listings))
	for i, dl := range listings {
		products[i] = catalog.ProductOf(dl)
		byID[dl.ID] = i
	}

	pg := catalog.Apply(products, f, sortKey, page, pageSize)
	if pg.TotalPages > 0 && page > pg.TotalPages {
		page = pg.TotalPages
		pg = catalog.Apply(products, f, sortKey, page, pageSize)
	}

	out := make([]any, len(pg.Items))
	for i, p := range pg.Items {
		out[i] = listings[byID[p.ID]]
	}
	return c.JSON(fiber.Map{"listings": out, "page": page, "totalPages": pg.TotalPages})
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
