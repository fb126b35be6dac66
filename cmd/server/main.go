package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/db"
	"liyu1981.xyz/footfall-service/pkg/footfall"
	footfallHttp "liyu1981.xyz/footfall-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	footfallDbType := os.Getenv(common.EnvKeyFootfallDBType)
	switch footfallDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FOOTFALL_DB_TYPE: " + footfallDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFootfallHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFootfallDefaultRate), 64); err != nil {
		log.Fatal("Invalid FOOTFALL_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFootfallDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FOOTFALL_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	footfallCore := footfall.Footfall{
		Db: *dbInstance,
	}
	footfallCore.WithServices(footfall.ServiceOpts{
		Store:     footfallCore.GetIStore(),
		Config:    footfallCore.GetIConfig(),
		Sample:    footfallCore.GetISample(),
		Alert:     footfallCore.GetIAlert(),
		Analytics: footfallCore.GetIAnalytics(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &footfallHttp.RestfulServer{
		Server:           gin.Default(),
		Footfall:         &footfallCore,
		RateLimiterStore: footfall.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
