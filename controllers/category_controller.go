package controllers

import (
	"net/http"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryController struct {
	CategorySvc *services.CategoryService
	log         *zap.Logger
}

func NewCategoryController(svc *services.CategoryService, log *zap.Logger) *CategoryController {
	return &CategoryController{CategorySvc: svc, log: log.With(zap.String("controller", "category"))}
}

// GetCategories (GET /api/categories)
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.CategorySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, categories)
}

// GetCategory (GET /api/categories/:id)
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := ctrl.CategorySvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, category)
}

// GetCategoryRooms (GET /api/categories/:id/rooms)
func (ctrl *CategoryController) GetCategoryRooms(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rooms, err := ctrl.CategorySvc.Rooms(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	out := make([]RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomSummary(r, false))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// CreateCategory (POST /api/admin/categories)
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := ctrl.CategorySvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, category)
}

// UpdateCategory (PUT /api/admin/categories/:id)
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := ctrl.CategorySvc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, category)
}

// DeleteCategory (DELETE /api/admin/categories/:id)
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.CategorySvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

// CreateAddOn (POST /api/admin/categories/:id/addons)
func (ctrl *CategoryController) CreateAddOn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in services.AddOnInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	addon, err := ctrl.CategorySvc.CreateAddOn(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, addon)
}
