package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"staybook/internal/infra/config"
	"staybook/internal/infra/obs"
)

type HotelHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Rate(c *gin.Context)
}

type RoomHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type UserHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type BookingHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

type StatsHTTP interface {
	Export(c *gin.Context)
}

type Handlers struct {
	Hotel   HotelHTTP
	Room    RoomHTTP
	User    UserHTTP
	Booking BookingHTTP
	Stats   StatsHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := NewRouter(obsMW, health, h)
	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

// NewRouter wires middleware and routes; split from NewServer so tests can
// drive the router directly.
func NewRouter(obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Hotel != nil {
		hotels := api.Group("/hotels")
		hotels.GET("", h.Hotel.List)
		hotels.POST("", h.Hotel.Create)
		hotels.GET("/:id", h.Hotel.Get)
		hotels.PUT("/:id", h.Hotel.Update)
		hotels.DELETE("/:id", h.Hotel.Delete)
		hotels.PUT("/:id/rating", h.Hotel.Rate)
	}
	if h.Room != nil {
		rooms := api.Group("/rooms")
		rooms.GET("", h.Room.List)
		rooms.POST("", h.Room.Create)
		rooms.GET("/:id", h.Room.Get)
		rooms.PUT("/:id", h.Room.Update)
		rooms.DELETE("/:id", h.Room.Delete)
	}
	if h.User != nil {
		users := api.Group("/users")
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
	if h.Booking != nil {
		api.GET("/bookings", h.Booking.List)
		api.POST("/bookings", h.Booking.Create)
	}
	if h.Stats != nil {
		api.POST("/stats/export", h.Stats.Export)
	}
	return router
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
