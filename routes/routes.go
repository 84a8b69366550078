package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hoteldesk-backend/config"
	"hoteldesk-backend/controllers"
	"hoteldesk-backend/middleware"
	"hoteldesk-backend/models"
	"hoteldesk-backend/services"
)

// SetupRouter wires controllers, middleware and route groups. Everything
// under /api except login sits behind the access gate.
func SetupRouter(
	cfg *config.Config,
	auth *services.AuthService,
	ac *controllers.AuthController,
	cc *controllers.ClientController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	uc *controllers.UserController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := cfg.Server.CORSOrigins
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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := middleware.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))
	{
		api.POST("/auth/login", ac.Login)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(auth))
		{
			authed.GET("/auth/me", ac.Me)

			clients := authed.Group("/clients")
			{
				clients.GET("", cc.GetClients)
				clients.POST("", cc.CreateClient)
			}

			rooms := authed.Group("/rooms")
			{
				rooms.GET("", caching, rc.GetRooms)
				rooms.GET("/available", rc.GetAvailableRooms)
				rooms.POST("", rc.CreateRoom)
				rooms.POST("/:id/release", rc.ReleaseRoom)
			}

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", bc.GetBookings)
				bookings.POST("", bc.CreateBooking)
				bookings.GET("/:id", bc.GetBookingDetails)
				bookings.POST("/:id/checkout", bc.CheckoutBooking)
				bookings.GET("/:id/invoice", bc.DownloadInvoice)
			}

			authed.GET("/dashboard", caching, dc.GetDashboard)

			users := authed.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", uc.GetUsers)
				users.GET("/:id", uc.GetUser)
				users.POST("", uc.CreateUser)
			}
		}
	}

	return r
}
