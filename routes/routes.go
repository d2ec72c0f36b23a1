package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hotel-api/controllers"
	"hotel-api/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
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

// SetupRouter wires middleware and the resource route tables.
func SetupRouter(
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	sc *controllers.ServiceController,
	ac *controllers.AuthController,
	log zerolog.Logger,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))

	origins := parseCorsOrigins()
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/users/login", ac.Login)

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)

			// static routes must come before /:id
			hotels.GET("/all", hc.GetAllHotels)
			hotels.POST("/cascade", hc.CreateHotelCascade)

			hotels.POST("", hc.CreateHotel)
			hotels.GET("/:id", hc.GetHotelByID)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.PATCH("/:id", hc.PatchHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)

			hotels.GET("/:id/rooms", hc.GetHotelRooms)
			hotels.GET("/:id/services", hc.GetHotelServices)
			hotels.POST("/:id/services/:serviceId", hc.AttachService)
			hotels.DELETE("/:id/services/:serviceId", hc.DetachService)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/all", rc.GetAllRooms)
			rooms.POST("/bulk", rc.CreateRoomsBulk)

			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id", rc.PatchRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)

			rooms.GET("/:id/hotel", rc.GetRoomHotel)
			rooms.GET("/:id/guests", rc.GetRoomGuests)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/all", gc.GetAllGuests)

			guests.POST("", gc.CreateGuest)
			guests.GET("/:id", gc.GetGuestByID)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.PATCH("/:id", gc.PatchGuest)
			guests.DELETE("/:id", gc.DeleteGuest)

			guests.GET("/:id/room", gc.GetGuestRoom)
			guests.POST("/:id/reserve/:roomId", gc.ReserveRoom)
			guests.POST("/:id/checkout", gc.CheckoutGuest)
		}

		services := api.Group("/services")
		{
			services.GET("", sc.GetServices)
			services.POST("", sc.CreateService)
			services.GET("/:id", sc.GetServiceByID)
			services.PUT("/:id", sc.UpdateService)
			services.PATCH("/:id", sc.PatchService)
			services.DELETE("/:id", sc.DeleteService)

			// bearer token with the "all" scope required
			protected := services.Group("", middleware.RequireScope(jwtSecret, "all"))
			{
				protected.GET("/all", sc.GetAllServices)
				protected.GET("/:id/hotels", sc.GetServiceHotels)
			}
		}
	}

	return r
}
