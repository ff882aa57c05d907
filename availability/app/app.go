package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hotelio/hotel-service/availability/config"
	"github.com/hotelio/hotel-service/availability/internal/handler"
	"github.com/hotelio/hotel-service/availability/internal/repository"
	"github.com/hotelio/hotel-service/availability/internal/server"
	"github.com/hotelio/hotel-service/availability/internal/service"
	"github.com/hotelio/hotel-service/availability/migrations"
	"github.com/hotelio/hotel-service/pkg/kafka"
	"github.com/hotelio/hotel-service/pkg/logger"
	"github.com/hotelio/hotel-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "availability")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo availability %v", err)
	}
	svc := service.NewService(repo, cfg.HorizonDays, log)
	h := handler.New(svc, log)

	consumerGroup, err := kafka.NewConsumerGroup(cfg.Kafka, kafka.AvailabilityConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumerGroup %v", err)
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		return kafka.Consume(ctx, consumerGroup, handler.NewConsumer(svc.ApplyRoomEvent, log), kafka.RoomsTopic)
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("shutdown", zap.Error(err))
	}
	if err = consumerGroup.Close(); err != nil {
		log.Error("consumerGroup.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
