// Package api contains all endpoints available
package api

import (
	"arkan22/cloth-api/db"
	"arkan22/cloth-api/middleware"
	"arkan22/cloth-api/security"
	"arkan22/cloth-api/service"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
}

func NewRouter() (*API, error) {
	a := &API{
		Argon: security.NewArgon(),
	}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(db)
	admin := middleware.NewAdminMiddleware()
	authLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: viper.GetInt("ratelimit.rps"),
		Burst:             viper.GetInt("ratelimit.burst"),
	})

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)
	}

	users := main.Group("/users")
	{
		// GET /api/users		-> Returns the profile of the logged in user
		users.GET("", jwt, a.UserFetch)

		// POST /api/users 		-> Registers a new user
		users.POST("", authLimit, a.UserRegister)

		// POST /api/users/login 	-> Logs in a user and returns a JWT cookie
		users.POST("/login", authLimit, a.UserLogin)

		// GET /api/users/logout	-> Clears the auth cookies
		users.GET("/logout", a.UserLogout)

		// GET /api/users/verify	-> Consumes an email verification link
		users.GET("/verify", a.UserVerify)

		// POST /api/users/resend	-> Re-sends the verification mail
		users.POST("/resend", authLimit, a.UserResendVerification)

		// POST /api/users/password	-> Changes the password of the logged in user
		users.POST("/password", jwt, a.UserPasswordChange)

		// POST /api/users/password/forgot -> Mails a password reset link
		users.POST("/password/forgot", authLimit, a.UserPasswordForgot)

		// POST /api/users/password/reset  -> Consumes a reset link
		users.POST("/password/reset", a.UserPasswordReset)
	}

	clothes := main.Group("/clothes")
	{
		// GET /api/clothes		-> Lists all clothes
		clothes.GET("", cacheFor(30), a.ClothFetchBulk)

		// GET /api/clothes/:id 	-> Returns a single cloth with its storages
		clothes.GET("/:id", a.ClothFetch)

		// GET /api/clothes/:id/quantity -> Total sellable units across storages
		clothes.GET("/:id/quantity", a.ClothQuantity)

		// POST /api/clothes		-> Creates a new cloth
		clothes.POST("", jwt, admin, a.ClothAdd)

		// POST /api/clothes/:id	-> Edits a cloth
		clothes.POST("/:id", jwt, admin, a.ClothEdit)

		// DELETE /api/clothes/:id	-> Deletes a cloth and its storages
		clothes.DELETE("/:id", jwt, admin, a.ClothDelete)
	}

	storages := main.Group("/storages", jwt, admin)
	{
		// GET /api/storages		-> Lists all storage records
		storages.GET("", a.StorageFetchBulk)

		// GET /api/storages/:id	-> Returns a single storage record
		storages.GET("/:id", a.StorageFetch)

		// POST /api/storages		-> Creates a storage record for a cloth
		storages.POST("", a.StorageAdd)

		// POST /api/storages/:id	-> Edits a storage record
		storages.POST("/:id", a.StorageEdit)

		// DELETE /api/storages/:id	-> Deletes a storage record
		storages.DELETE("/:id", a.StorageDelete)
	}

	buys := main.Group("/buys", jwt)
	{
		// POST /api/buys		-> Records a purchase and decrements stock
		buys.POST("", a.BuyAdd)

		// GET /api/buys/me		-> The customer's own purchases, filterable
		buys.GET("/me", a.BuyFetchSelf)

		// GET /api/buys		-> Admin listing with filters and paging
		buys.GET("", admin, a.BuyFetchBulk)

		// GET /api/buys/:id		-> Returns a single buy
		buys.GET("/:id", admin, a.BuyFetch)

		// POST /api/buys/:id		-> Partially edits a buy
		buys.POST("/:id", admin, a.BuyEdit)

		// POST /api/buys/:id/confirm	-> Marks a buy as paid
		buys.POST("/:id/confirm", admin, a.BuyConfirm)

		// DELETE /api/buys/:id		-> Deletes a buy and restores stock
		buys.DELETE("/:id", admin, a.BuyDelete)
	}

	service.TokenCleanup(time.Hour, db)

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
