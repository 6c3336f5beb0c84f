package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/horizontravels/booking/config"
	"github.com/horizontravels/booking/internal/bootstrap"
	"github.com/horizontravels/booking/internal/catalog"
	"github.com/horizontravels/booking/internal/kafka"
	"github.com/horizontravels/booking/internal/payment"
	"github.com/horizontravels/booking/internal/repository"
	"github.com/horizontravels/booking/internal/service/booking"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var producer booking.Producer
	if cfg.Kafka.Enabled() {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	cat := catalog.NewCatalog()
	bookingRepo := repository.NewBookingRepository()
	processor := payment.NewProcessor(time.Duration(cfg.Payment.DelayMillis) * time.Millisecond)
	bookingService := booking.NewBookingService(
		bookingRepo,
		cat,
		processor,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Payment.TimeoutMillis)*time.Millisecond,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, cat, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
