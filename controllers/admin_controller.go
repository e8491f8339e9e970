package controllers

import (
	"net/http"

	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController manages staff accounts.
type AdminController struct {
	AdminSvc *services.AdminService
	log      *zap.Logger
}

func NewAdminController(svc *services.AdminService, log *zap.Logger) *AdminController {
	return &AdminController{AdminSvc: svc, log: log.With(zap.String("controller", "admin"))}
}

func (ctrl *AdminController) GetAdmins(c *gin.Context) {
	admins, err := ctrl.AdminSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

func (ctrl *AdminController) CreateAdmin(c *gin.Context) {
	var in services.AdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	admin, err := ctrl.AdminSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

func (ctrl *AdminController) DeleteAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actor := c.GetUint(middleware.StaffIDKey)
	if err := ctrl.AdminSvc.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, ctrl.log, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
