package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gookit/slog"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/model"
	"blogapi/internal/pkg/logger"
	mysqlClient "blogapi/internal/platform/mysql"
	rabbitmqClient "blogapi/internal/platform/rabbitmq"
	"blogapi/internal/repository"
	"blogapi/internal/worker"
)

type App struct {
	Config      *config.Config
	MySQL       *gorm.DB
	MQConn      *amqp.Connection
	AuditWorker *worker.AuditLogWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	logger.Init(cfg.App.LogLevel)

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.User{}, &model.Post{}, &model.AuditLog{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	var mqConn *amqp.Connection
	var auditWorker *worker.AuditLogWorker
	if cfg.RabbitMQ.URL != "" {
		mqConn, err = rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
		if err != nil {
			return nil, err
		}

		auditRepo := repository.NewAuditLogRepository(mysqlDB)
		auditWorker = worker.NewAuditLogWorker(mqConn, auditRepo, cfg.RabbitMQ.EventQueue)
		if err := auditWorker.Start(ctx); err != nil {
			return nil, fmt.Errorf("start audit worker failed: %w", err)
		}
	} else {
		slog.Info("no rabbitmq url configured, entity event stream disabled")
	}

	return &App{
		Config:      cfg,
		MySQL:       mysqlDB,
		MQConn:      mqConn,
		AuditWorker: auditWorker,
		StartedAt:   time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.AuditWorker != nil {
		a.AuditWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
