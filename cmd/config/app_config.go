package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Blood-Donation-Admin/internal/api/handlers"
	"Blood-Donation-Admin/internal/api/routes"
	"Blood-Donation-Admin/internal/middleware"
	"Blood-Donation-Admin/internal/utils"
	"Blood-Donation-Admin/internal/utils/cache"
	"Blood-Donation-Admin/internal/utils/mailing"
	"Blood-Donation-Admin/internal/utils/storage"
	"Blood-Donation-Admin/pkg/appointment"
	"Blood-Donation-Admin/pkg/donationdetail"
	"Blood-Donation-Admin/pkg/jwt"
	"Blood-Donation-Admin/pkg/report"
	"Blood-Donation-Admin/pkg/user"
)

func ConnectRedis() *redis.Client {
	db, _ := strconv.Atoi(utils.GetConfig("REDIS_DB"))
	return cache.NewRedisClient(
		utils.GetConfig("REDIS_ADDR"),
		utils.GetConfig("REDIS_PASSWORD"),
		db,
	)
}

func NewApp(db *gorm.DB, redisClient *redis.Client, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Ho_Chi_Minh",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	appCache := cache.NewRedisCache(redisClient)
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	cacheTTL := time.Duration(utils.GetConfigInt("CACHE_TTL_SECONDS", 60)) * time.Second

	// Repository
	userRepository := user.NewUserRepository(db)
	appointmentRepository := appointment.NewAppointmentRepository(db)
	donationDetailRepository := donationdetail.NewDonationDetailRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	appointmentService := appointment.NewAppointmentService(appointmentRepository, appCache, cacheTTL, log)
	donationDetailService := donationdetail.NewDonationDetailService(
		donationDetailRepository,
		appointmentRepository,
		userRepository,
		mailer,
		utils.GetConfig("APP_URL"),
		log,
	)
	reportService := report.NewReportService(appointmentService, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, reportService, validator)
	donationDetailHandler := handlers.NewDonationDetailHandler(donationDetailService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		AppointmentHandler:    appointmentHandler,
		DonationDetailHandler: donationDetailHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
