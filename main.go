package main

import (
	"log"

	"github.com/hostwell/room-booking-service/config"
	"github.com/hostwell/room-booking-service/internal/consumer"
	"github.com/hostwell/room-booking-service/internal/handler"
	"github.com/hostwell/room-booking-service/internal/lock"
	"github.com/hostwell/room-booking-service/internal/middleware"
	"github.com/hostwell/room-booking-service/internal/repository"
	"github.com/hostwell/room-booking-service/internal/service"
	"github.com/hostwell/room-booking-service/internal/validator"
	"github.com/hostwell/room-booking-service/pkg/database"
	"github.com/hostwell/room-booking-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ consumer: sync property/room inventory from Property Service
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	inventoryConsumer := consumer.NewInventoryConsumer(db)
	inventoryConsumer.Start(msgs)

	// RabbitMQ publisher: booking lifecycle events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to create RabbitMQ publisher: %v", err)
	}
	defer publisher.Close()

	// Repositories
	propertyRepo := repository.NewPropertyRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Service
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, propertyRepo, customerRepo, lock.NewRoomLocker(), publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validator.New()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "room-booking-service"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Room Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
