package main

import (
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/cache"
	"app/internal/infra/db"
	"app/internal/infra/mail"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/trade"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func initLogger() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
}

func main() {
	initLogger()

	//.env読み込み（無くても起動はできる）
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env not loaded", "err", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Category{},
		&model.Color{},
		&model.Image{},
		&model.Inventory{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Shipping{},
		&model.Coupon{},
		&model.CouponItem{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	shippingRepo := infraRepo.NewShippingGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	couponRepo := infraRepo.NewCouponGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//商品キャッシュ
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	productCache := cache.NewRedisCache(redisClient)

	//決済ゲートウェイと通知
	gateway := trade.NewGateway(cfg.TradeMerchantID)
	notifier := mail.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPassword)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo, productCache)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, cartRepo, cartItemRepo, orderRepo, orderItemRepo, shippingRepo, userRepo)
	paymentUC := usecase.NewPaymentUsecase(orderRepo, shippingRepo, paymentRepo, gateway, notifier)
	couponUC := usecase.NewCouponUsecase(couponRepo)

	//Handler生成
	handlers := server.Handlers{
		Product:     handler.NewProductHandler(productUC),
		Cart:        handler.NewCartHandler(cartUC),
		Order:       handler.NewOrderHandler(orderUC),
		Payment:     handler.NewPaymentHandler(paymentUC),
		AdminCoupon: handler.NewAdminCouponHandler(couponUC),
	}

	//Server起動
	addr := ":8080"
	if cfg.Port != "" {
		if cfg.Port[0] != ':' {
			addr = ":" + cfg.Port
		} else {
			addr = cfg.Port
		}
	}

	slog.Info("server starting", "addr", addr)
	if err := server.Start(addr, cfg, handlers); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
