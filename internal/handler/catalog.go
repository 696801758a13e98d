// Package handler exposes the HTTP handlers for the catalog and credential
// APIs.  This file defines the read-only catalog endpoints.  All of them are
// public; responses carry the full product shape since the catalog holds no
// sensitive fields.
package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/minhvu/tech-store-backend/internal/repository"
)

// CatalogHandler bundles dependencies for the product endpoints.
type CatalogHandler struct {
    Products *repository.ProductRepo
}

func NewCatalogHandler(p *repository.ProductRepo) *CatalogHandler {
    return &CatalogHandler{Products: p}
}

// ListProducts returns every product ordered by id ascending.  An empty
// catalog is a 200 with an empty array, never an error.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Products.ListAll(ctx)
    if err != nil {
        log.Printf("catalog: list products failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, items)
}

// GetProduct returns a single product by id.  A non-numeric id is rejected
// before any query is issued.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    p, err := h.Products.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrProductNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
        }
        log.Printf("catalog: get product %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, p)
}

// ListByCategory returns all products whose category matches the path
// parameter exactly.  Unlike single-product lookup, an unknown category is
// not an error: the result is an empty array.
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
    category := c.Param("category")

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Products.ListByCategory(ctx, category)
    if err != nil {
        log.Printf("catalog: list category %q failed: %v", category, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, items)
}
