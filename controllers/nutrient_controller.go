package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/services"
)

type NutrientController struct {
	Svc *services.NutrientService
}

func NewNutrientController(svc *services.NutrientService) *NutrientController {
	return &NutrientController{Svc: svc}
}

func (h *NutrientController) List(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context(), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *NutrientController) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	rows, err := h.Svc.ListByCategory(c.Request.Context(), tokenFromCtx(c), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
