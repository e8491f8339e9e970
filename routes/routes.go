package routes

import (
	"net/http"
	"strings"
	"time"

	"hotel-reservations/config"
	"hotel-reservations/controllers"
	"hotel-reservations/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Controllers groups every handler set the router mounts.
type Controllers struct {
	Availability *controllers.AvailabilityController
	Reservation  *controllers.ReservationController
	Category     *controllers.CategoryController
	Room         *controllers.RoomController
	Auth         *controllers.AuthController
	Admin        *controllers.AdminController
}

func normalizeOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	cfg config.Config,
	ctrls Controllers,
	tokens middleware.TokenValidator,
	rdb *redis.Client,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	origins := normalizeOrigins(cfg.CORS.Origins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "X-Cache"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cache := middleware.ResponseCache(rdb, cfg.Cache, log)

	api := r.Group("/api")
	{
		categories := api.Group("/categories", cache)
		{
			categories.GET("", ctrls.Category.GetCategories)
			categories.GET("/:id", ctrls.Category.GetCategory)
			categories.GET("/:id/rooms", ctrls.Category.GetCategoryRooms)
		}

		api.POST("/availability", ctrls.Availability.CheckAvailability)

		reservations := api.Group("/reservations")
		{
			reservations.POST("", ctrls.Reservation.CreateReservation)
			reservations.GET("/code/:code", ctrls.Reservation.GetReservationByCode)
			reservations.POST("/cancel", ctrls.Reservation.RequestCancellation)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrls.Auth.Login)
		}

		admin := api.Group("/admin", middleware.RequireStaff(tokens), middleware.InvalidateCache(rdb, cfg.Cache, log))
		{
			admin.POST("/availability", ctrls.Availability.CheckAvailabilityStaff)

			adminReservations := admin.Group("/reservations")
			{
				adminReservations.GET("", ctrls.Reservation.GetReservations)
				adminReservations.POST("", ctrls.Reservation.CreateStaffReservation)
				adminReservations.GET("/:id", ctrls.Reservation.GetReservation)
				adminReservations.DELETE("/:id", ctrls.Reservation.DeleteReservation)
			}

			adminCategories := admin.Group("/categories")
			{
				adminCategories.GET("", ctrls.Category.GetCategories)
				adminCategories.POST("", ctrls.Category.CreateCategory)
				adminCategories.PUT("/:id", ctrls.Category.UpdateCategory)
				adminCategories.DELETE("/:id", ctrls.Category.DeleteCategory)
				adminCategories.POST("/:id/addons", ctrls.Category.CreateAddOn)
			}

			rooms := admin.Group("/rooms")
			{
				rooms.GET("", ctrls.Room.GetRooms)
				rooms.POST("", ctrls.Room.CreateRoom)
				rooms.PUT("/:id", ctrls.Room.UpdateRoom)
				rooms.DELETE("/:id", ctrls.Room.DeleteRoom)
			}

			admins := admin.Group("/admins")
			{
				admins.GET("", ctrls.Admin.GetAdmins)
				admins.POST("", ctrls.Admin.CreateAdmin)
				admins.DELETE("/:id", ctrls.Admin.DeleteAdmin)
			}
		}
	}

	return r
}
