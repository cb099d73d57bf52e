package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "shorten-api/configs"
	_ "shorten-api/docs"
	"shorten-api/internal/application/controller"
	"shorten-api/internal/application/middleware"
	"shorten-api/internal/domain/gateway/cache"
	"shorten-api/internal/domain/gateway/db"
	"shorten-api/internal/domain/gateway/storage"
	"shorten-api/internal/domain/usecase/health"
	"shorten-api/internal/domain/usecase/shortcode"
	infraaws "shorten-api/internal/infra/aws"
	infraredis "shorten-api/internal/infra/redis"
	"shorten-api/pkg/log"
	"shorten-api/pkg/msg"
	pkgredis "shorten-api/pkg/redis"
	"shorten-api/pkg/resource"
)

// @title URL Shortener API
// @version 0.1.0
// @description A URL shortening service with file upload capabilities
// @contact.name API Support
// @contact.email support@urlshortener.com
// @license.name MIT License
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	awsConfig, err := infraaws.NewConfig(ctx)
	if err != nil {
		log.Fatalf(msg.GetMessage("app.aws-config-failed", err))
	}
	dynamoClient := infraaws.NewDynamoDBClient(awsConfig)
	s3Client := infraaws.NewS3Client(awsConfig)

	// Init gateways
	mappingGateway := db.NewDynamoMappingGateway(dynamoClient,
		resource.GetString("app.db.table"), resource.GetString("app.db.owner-index"))
	healthGateway := db.NewDynamoHealthGateway(dynamoClient, resource.GetString("app.db.table"))
	blobGateway := storage.NewS3BlobGateway(s3Client, resource.GetString("app.blob.bucket"))

	var resolveCache cache.ResolveCache
	if resource.GetBool("app.cache.enabled") {
		redisConfig := pkgredis.DefaultConfig()
		redisConfig.Host = resource.GetString("app.cache.host")
		redisConfig.Port = resource.GetInt("app.cache.port")
		redisConfig.Password = resource.GetString("app.cache.password")
		redisConfig.DefaultTTL = resource.GetDuration("app.cache.ttl")

		redisClient, err := pkgredis.NewClient(redisConfig)
		if err != nil {
			log.Fatalf(msg.GetMessage("app.redis-connect-failed", err))
		}
		resolveCache = infraredis.NewResolveCacheAdapter(redisClient, redisConfig.DefaultTTL)
	}

	// Init UseCase
	shortcodeUseCase := shortcode.NewShortcodeUseCase(mappingGateway, blobGateway,
		resolveCache, resource.GetString("app.blob.public-base-url"))
	healthUseCase := health.NewHealthUseCase(healthGateway, blobGateway, resolveCache)

	// Init server
	e := echo.New()
	e.HideBanner = true
	middleware.SetupCORS(e)
	middleware.SetupRequestLogger(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	shortcodeController := controller.NewShortcodeController(api, shortcodeUseCase,
		resource.GetString("app.server.public-base-url"),
		resource.GetInt64("app.server.max-upload-bytes"))

	// Init Routes
	healthController.InitHealthRoutes()
	shortcodeController.InitShortcodeRoutes()

	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
