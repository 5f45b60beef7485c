package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"taste-toffel-api/catalog"
	"taste-toffel-api/logx"
	"taste-toffel-api/middleware"
	"taste-toffel-api/models"

	"github.com/gin-gonic/gin"
)

// priceInput accepts the price as a JSON number or as the text the user
// typed, so a non-numeric price reaches validation instead of failing to
// bind.
type priceInput string

func (p *priceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = priceInput(s)
		return nil
	}
	*p = priceInput(data)
	return nil
}

type CreateMenuItemRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       priceInput `json:"price"`
	Category    string     `json:"category"`
}

// AddMenuItem handles the add-course form (chef only)
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.state(c).AddCourse(c.Request.Context(), catalog.NewMenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       string(req.Price),
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logx.Info("menu item added", "id", item.ID, "name", item.Name, "category", string(item.Category))
	c.JSON(http.StatusCreated, gin.H{"message": "Course added successfully!", "item": viewOf(item)})
}

// DeleteMenuItem removes a menu item. Deleting an unknown id succeeds and
// reports removed=false.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	itemID := c.Param("id")

	removed, err := h.state(c).DeleteItem(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	msg := "Menu item deleted"
	if removed {
		logx.Info("menu item removed", "id", itemID)
	} else {
		msg = "No menu item with that id; nothing to delete"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "removed": removed, "id": itemID})
}

// GetMenu lists the menu, optionally filtered by ?category=
func (h *Handler) GetMenu(c *gin.Context) {
	filter, err := models.ParseFilter(c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.state(c).Courses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": filter,
		"count":    len(items),
		"menu":     viewsOf(items),
		"can_edit": middleware.GetSession(c).IsChef(),
	})
}

// GetMenuItem returns a single menu item
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, found, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": viewOf(item)})
}

// ListCategories returns the filter chips with their item counts
func (h *Handler) ListCategories(c *gin.Context) {
	counts, err := h.catalog.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	chips := make([]gin.H, 0, len(counts))
	chips = append(chips, gin.H{"name": models.CategoryAll, "count": counts[models.CategoryAll]})
	for _, cat := range models.Categories() {
		chips = append(chips, gin.H{"name": cat, "count": counts[cat]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": chips})
}
