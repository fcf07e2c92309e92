package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"campusmarket/cmd"
	_ "campusmarket/docs"
	httpadapter "campusmarket/internal/adapters/in/http"
	"campusmarket/internal/adapters/out/postgres/listingrepo"
	"campusmarket/internal/adapters/out/postgres/orderrepo"
	"campusmarket/internal/adapters/out/postgres/studentrepo"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Campus Marketplace Orders API
//	@version		1.0
//	@description	Order workflow for the campus marketplace.
//	@BasePath		/api/v1

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := cmd.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgresdriver.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&listingrepo.ListingDTO{},
		&studentrepo.StudentDTO{},
	); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db)

	// A zero TTL disables the stale order sweep entirely.
	if root.StaleOrderMaxAge() > 0 {
		jobManager := root.CreateJobManager(logger)
		if err = jobManager.StartAll(); err != nil {
			logger.Error("Failed to start background jobs", "error", err)
			os.Exit(1)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&root, config.HTTPPort)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		root.CreateCreateSellOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateGetBuyerOrdersQueryHandler(),
		root.CreateGetSellerOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
