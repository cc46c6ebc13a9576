package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-weather/configs"
	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/gateway/catalog"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/usecase/clothing"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/location"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/internal/infra/database/gorm"
	"go-weather/internal/infra/database/sqlc"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "time/tzdata"
)

// @title go-weather
// @version 1.0
// @description Weather forecasts with day/night icons and clothing advice
// @BasePath /go-weather
func main() {
	envErr := godotenv.Load()
	log.Reload()
	if envErr != nil {
		log.Debug(msg.GetMessage("app.env-not-loaded", envErr.Error()))
	}
	env := configs.LoadEnv()
	resource.Init(env.PropertiesFile)
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	gormDb, err := gorm.Open()
	if err != nil {
		log.Fatal(msg.GetMessage("app.db-failed", err.Error()))
	}
	sqlDb, err := sqlc.Open(ctx)
	if err != nil {
		log.Fatal(msg.GetMessage("app.db-failed", err.Error()))
	}
	defer func() { _ = sqlDb.Close() }()

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetStringOrDefault("app.server.context-path", env.ContextPath)
	apiGroup := e.Group(contextPath)
	e.GET(contextPath+"/swagger/*", echoSwagger.WrapHandler)

	// Init Gateways
	locationGateway := db.NewGormLocationGateway(gormDb)
	if err = locationGateway.Migrate(); err != nil {
		log.Fatal(msg.GetMessage("app.migration-failed", err.Error()))
	}
	healthGateway := db.NewSQLCHealthDBGateway(sqlDb)

	cacheTTL := resource.GetDuration("app.cache.forecast-ttl")
	var forecastCache api.ForecastCache = cache.NewMemoryForecastCache(cacheTTL)
	var cacheHealthGateway cache.HealthCacheGateway
	if resource.GetBool("app.redis.enabled") {
		redisClient, err := redis.NewClient(redisConfig())
		if err != nil {
			log.Fatal(msg.GetMessage("app.cache-failed", err.Error()))
		}
		defer func() { _ = redisClient.Close() }()

		forecastCache = cache.NewRedisForecastCache(redisClient, cacheTTL)
		cacheHealthGateway = cache.NewRedisHealthGateway(redisClient)
	}

	forecastGateway := api.NewCachedForecastGateway(
		resource.GetString("app.api.forecast.base-url"),
		httpclient.ClientOptions{
			ReadTimeout: -1,
			Logger:      httpclient.NewZapLogger(log.With(), "open-meteo"),
		},
		forecastCache)
	geocodingGateway := api.NewGeocodingGateway(
		resource.GetString("app.api.geocoding.base-url"),
		api.GeocodingSettings{
			UserAgent:     resource.GetString("app.api.geocoding.user-agent"),
			MinInterval:   resource.GetDuration("app.api.geocoding.min-interval"),
			TeapotBackoff: resource.GetDuration("app.api.geocoding.teapot-backoff"),
			Timeout:       resource.GetDuration("app.api.geocoding.timeout"),
		},
		httpclient.ClientOptions{
			Logger: httpclient.NewZapLogger(log.With(), "nominatim"),
		})

	cityCatalog, err := catalog.NewEmbeddedCityCatalog()
	if err != nil {
		log.Fatal(msg.GetMessage("app.catalog-failed", err.Error()))
	}

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthGateway, cacheHealthGateway)
	locationUseCase := location.NewLocationUseCase(locationGateway, geocodingGateway, cityCatalog)
	weatherUseCase := weather.NewWeatherUseCase(
		forecastGateway,
		weather.NewProjector(weather.MessageLabels()),
		clothing.NewAdvisor(clothing.DefaultRules()...),
		time.Now)

	defaultCoordinates, err := entity.NewCoordinates(
		resource.GetFloat64("app.default-location.latitude"),
		resource.GetFloat64("app.default-location.longitude"))
	if err != nil {
		log.Fatal(msg.GetMessage("app.invalid-default-location", err.Error()))
	}

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	forecastController := controller.NewForecastController(apiGroup, weatherUseCase, locationUseCase, controller.DefaultLocation{
		Name:        resource.GetString("app.default-location.name"),
		Coordinates: defaultCoordinates,
	})
	locationController := controller.NewLocationController(apiGroup, locationUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	forecastController.InitForecastRoutes()
	locationController.InitLocationRoutes()

	// Init Schedule
	if resource.GetBool("app.schedule.forecast.enabled") {
		forecastScheduler := schedule.NewForecastScheduler(weatherUseCase, locationUseCase, schedule.ForecastSchedulerConfig{
			CronExpression: resource.GetString("app.schedule.forecast.cron"),
			Concurrency:    resource.GetInt("app.schedule.forecast.concurrency"),
			Timeout:        resource.GetDuration("app.schedule.forecast.timeout"),
		})
		if err = forecastScheduler.InitForecastScheduleTasks(); err != nil {
			log.Fatal(msg.GetMessage("app.schedule-failed", err.Error()))
		}
		defer forecastScheduler.Stop()
	} else {
		log.Info(msg.GetMessage("app.schedule-disabled"))
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// redisConfig overlays the app.redis.* properties on the client defaults
func redisConfig() *redis.Config {
	config := redis.NewRedisConfig()
	config.Host = resource.GetStringOrDefault("app.redis.host", config.Host)
	if port := resource.GetInt("app.redis.port"); port != 0 {
		config.Port = port
	}
	config.Password = resource.GetString("app.redis.password")
	config.Database = resource.GetInt("app.redis.database")
	return config
}
