package main

import (
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"

	"github.com/merchview/merchview/internal/configs"
	dashboardHandler "github.com/merchview/merchview/internal/dashboard/handler"
	dashboardRouter "github.com/merchview/merchview/internal/dashboard/router"
	"github.com/merchview/merchview/pkg/httpframework"
	"github.com/merchview/merchview/pkg/logger"
	"github.com/merchview/merchview/pkg/metric"
	"github.com/merchview/merchview/pkg/storeapi"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Configs configs.Configs
}

func (cfg *AppConfig) GetStaticConfig() interface{} {
	return &cfg.Configs
}

var (
	appConfig AppConfig
)

func main() {
	configs.InitConfig(&appConfig)

	logger.Init(appConfig.Configs)
	metric.Init(appConfig.Configs)

	corsConfig := cors.DefaultConfig()
	origins := appConfig.Configs.CorsAllowedOrigins
	if origins == "" {
		origins = "*"
	}
	corsConfig.AllowOrigins = strings.Split(origins, ",")
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	httpframework.Init(cors.New(corsConfig))

	storeClient, err := storeapi.NewClient(appConfig.Configs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store API client")
	}
	dashboardHandler.InitDashboardHandler(storeClient, appConfig.Configs)
	dashboardRouter.Init()

	port := appConfig.Configs.AppPort
	if port == 0 {
		port = 8080
		log.Warn().Int("port", port).Msg("App port not set, defaulting to 8080")
	}
	httpframework.Instance().Run(":" + strconv.Itoa(port))
}
