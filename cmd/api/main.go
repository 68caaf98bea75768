package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/api"
	"github.com/sanosuguru/go-hotel-reservation/internal/api/handler"
	custommiddleware "github.com/sanosuguru/go-hotel-reservation/internal/api/middleware"
	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/config"
	"github.com/sanosuguru/go-hotel-reservation/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-hotel-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
	"github.com/sanosuguru/go-hotel-reservation/internal/worker"
)

func main() {
	cfg := config.Load()

	logger.Set(logger.NewLogger(os.Getenv("APP_ENV")))
	defer logger.Sync()

	// DB接続
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal("データベース接続に失敗しました", zap.Error(err))
	}
	defer db.Close()

	// マイグレーション実行
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := postgres.RunMigrations(db.DB, migrationsPath); err != nil {
		logger.Fatal("マイグレーションに失敗しました", zap.Error(err))
	}

	// Redis接続
	redisClient, err := redisinfra.NewClient(&redisinfra.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("Redis接続に失敗しました", zap.Error(err))
	}
	defer redisClient.Close()

	lockManager := redisinfra.NewLockManager(redisClient)
	reportCache := redisinfra.NewReportCache(redisClient)

	m := metrics.Init()

	// リポジトリ初期化
	txManager := postgres.NewTxManager(db)
	chainRepo := postgres.NewChainRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	rentingRepo := postgres.NewRentingRepository(db)
	reservationIndex := postgres.NewReservationIndex(db)

	// サービス初期化
	hotelService := application.NewHotelService(txManager, chainRepo, hotelRepo, roomRepo, reportCache, m)
	availabilityService := application.NewAvailabilityService(roomRepo, reservationIndex, m)
	customerService := application.NewCustomerService(txManager, customerRepo, m)
	employeeService := application.NewEmployeeService(txManager, employeeRepo, m)
	reservationService := application.NewReservationService(
		txManager, bookingRepo, rentingRepo, roomRepo, customerRepo, employeeRepo,
		reservationIndex, lockManager, m,
	)

	// ハンドラ初期化
	hotelHandler := handler.NewHotelHandler(hotelService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	customerHandler := handler.NewCustomerHandler(customerService, reservationService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	bookingHandler := handler.NewBookingHandler(reservationService)
	rentingHandler := handler.NewRentingHandler(reservationService)
	healthHandler := handler.NewHealthHandler()

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	custommiddleware.SetupMiddleware(e)
	e.Use(custommiddleware.PrometheusMiddleware(m))

	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), custommiddleware.MetricsBasicAuth())

	v1 := e.Group("/api/v1")

	v1.GET("/chains", hotelHandler.ListChains)
	v1.GET("/hotels", hotelHandler.ListHotels)
	v1.GET("/hotels/:id", hotelHandler.GetHotel)
	v1.PUT("/hotels/:id", hotelHandler.UpdateHotel)
	v1.DELETE("/hotels/:id", hotelHandler.DeleteHotel)

	v1.GET("/rooms/available", availabilityHandler.Search)
	v1.GET("/rooms/:id", hotelHandler.GetRoom)
	v1.PUT("/rooms/:id", hotelHandler.UpdateRoom)
	v1.DELETE("/rooms/:id", hotelHandler.DeleteRoom)
	v1.GET("/rooms/:id/reservations", availabilityHandler.Occupancy)

	v1.POST("/customers", customerHandler.Create)
	v1.GET("/customers/:id", customerHandler.GetByID)
	v1.PUT("/customers/:id", customerHandler.Update)
	v1.DELETE("/customers/:id", customerHandler.Delete)
	v1.GET("/customers/:id/bookings", customerHandler.GetBookings)
	v1.GET("/customers/:id/rentings", customerHandler.GetRentings)

	v1.GET("/employees", employeeHandler.List)
	v1.GET("/employees/:id", employeeHandler.GetByID)
	v1.PUT("/employees/:id", employeeHandler.Update)
	v1.DELETE("/employees/:id", employeeHandler.Delete)

	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings/:id", bookingHandler.GetByID)
	v1.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	v1.POST("/rentings", rentingHandler.Create)
	v1.GET("/rentings/:id", rentingHandler.GetByID)
	v1.POST("/rentings/:id/close", rentingHandler.Close)

	v1.GET("/reports/room-capacity", hotelHandler.RoomCapacityReport)
	v1.GET("/reports/room-area", hotelHandler.RoomAreaReport)

	// ノーショー予約の自動キャンセルワーカー
	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	sweeper := worker.NewNoShowSweeper(reservationService, cfg.Worker.SweepInterval, cfg.Worker.NoShowGrace)
	go sweeper.Start(sweeperCtx)

	// サーバー起動
	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	cancelSweeper()
	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
