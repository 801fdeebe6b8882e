package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"

	"github.com/MichalMitros/syntara-client/cmd/syntara/config"
	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/MichalMitros/syntara-client/internal/handler"
	"github.com/MichalMitros/syntara-client/internal/platform/kafka"
	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/MichalMitros/syntara-client/internal/platform/rabbitmq"
	"github.com/MichalMitros/syntara-client/internal/platform/storage"
	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/MichalMitros/syntara-client/internal/search"
	"github.com/MichalMitros/syntara-client/internal/session"
	"github.com/MichalMitros/syntara-client/pkg/v1/commander"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// UserAgent is user agent header value sent to backend.
const UserAgent = "syntara-cli/0.1.0"

// app holds components shared by commands.
type app struct {
	cfg    config.Config
	logger *zerolog.Logger
	out    io.Writer

	store   *session.Store
	quota   session.GuestQuota
	client  *api.Client
	search  *search.Service
	reports *report.Service

	// sender and notices are built on first use, only report commands need a broker.
	sender  commander.Sender
	notices noticeSource
	mq      *rabbitmq.RabbitMQ

	closers []func() error
}

// newApp opens session storage, restores session and builds services.
func newApp(ctx context.Context, cfg config.Config, logger *zerolog.Logger, out io.Writer) (*app, error) {
	a := &app{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}

	kv, err := a.openKV()
	if err != nil {
		return nil, err
	}

	if err := a.assemble(ctx, kv, &http.Client{Timeout: cfg.HTTPTimeout}); err != nil {
		_ = a.Close()
		return nil, err
	}

	return a, nil
}

// assemble builds session store and services on top of kv.
func (a *app) assemble(ctx context.Context, kv session.KV, httpClient *http.Client) error {
	a.store = session.NewStore(kv, session.WithLogger(a.logger))
	if err := a.store.Restore(ctx); err != nil {
		return fmt.Errorf("can't restore session: %w", err)
	}

	unsubscribe := a.store.Subscribe(func(user *models.User) {
		if user == nil {
			a.logger.Debug().Msg("no active session")
			return
		}
		a.logger.Debug().
			Str("email", user.Email).
			Bool("subscribed", user.IsSubscribed).
			Msg("session user")
	})
	a.closers = append(a.closers, func() error {
		unsubscribe()
		return nil
	})

	a.client = api.NewClient(httpClient, a.cfg.APIURL, UserAgent, a.store)
	a.quota = session.NewGuestQuota(kv, session.DefaultGuestSearches)
	a.search = search.NewService(a.client, a.store, a.quota, search.WithLogger(a.logger))
	a.reports = report.NewService(a.client, a.store)

	return nil
}

func (a *app) openKV() (session.KV, error) {
	switch a.cfg.Session.Backend {
	case config.BackendFile:
		path := a.cfg.Session.File
		if path == "" {
			path = storage.DefaultFilePath()
		}
		return storage.NewFile(path)

	case config.BackendPostgres:
		db, err := sql.Open("postgres", a.cfg.Session.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("can't open Postgres connection: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		return storage.NewPostgres(db), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: a.cfg.Session.RedisAddr,
			DB:   a.cfg.Session.RedisDB,
		})
		a.closers = append(a.closers, client.Close)
		return storage.NewRedis(client, storage.DefaultRedisPrefix), nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", a.cfg.Session.Backend)
	}
}

// reportCommander returns commander sending report commands through configured transport.
func (a *app) reportCommander() (commander.ReportCommander, error) {
	if a.sender != nil {
		return commander.NewReportCommander(a.sender), nil
	}

	switch a.cfg.Reports.Transport {
	case config.TransportLog:
		a.sender = commander.NewLogSender(a.logger)

	case config.TransportRabbitMQ:
		mq, err := a.rabbitMQ()
		if err != nil {
			return commander.ReportCommander{}, err
		}
		a.sender = commander.NewRabbitMQSender(mq, a.cfg.RabbitMQ.RoutingKey)

	case config.TransportKafka:
		producer, err := kafka.NewSyncProducer(a.cfg.Kafka.Brokers)
		if err != nil {
			return commander.ReportCommander{}, err
		}
		a.closers = append(a.closers, producer.Close)
		a.sender = commander.NewKafkaSender(producer, a.cfg.Kafka.Topic)

	default:
		return commander.ReportCommander{}, fmt.Errorf("unknown report transport %q", a.cfg.Reports.Transport)
	}

	return commander.NewReportCommander(a.sender), nil
}

// noticeSource binds and consumes report notice queues.
type noticeSource interface {
	handler.Consumer
	Bind(queue, routingKey string) error
	BindPrivate(routingKey string) (string, error)
}

// noticeQueue binds queue receiving report notices and returns its consumer and name.
// Private queue gets own copy of notices published from now on, so notices of other
// requests can be dropped there. Otherwise shared durable queue is used.
func (a *app) noticeQueue(private bool) (handler.Consumer, string, error) {
	if a.notices == nil {
		mq, err := a.rabbitMQ()
		if err != nil {
			return nil, "", err
		}
		a.notices = mq
	}

	if private {
		queue, err := a.notices.BindPrivate(a.cfg.RabbitMQ.NoticeRoutingKey)
		if err != nil {
			return nil, "", err
		}
		return a.notices, queue, nil
	}

	if err := a.notices.Bind(a.cfg.RabbitMQ.Queue, a.cfg.RabbitMQ.NoticeRoutingKey); err != nil {
		return nil, "", err
	}

	return a.notices, a.cfg.RabbitMQ.Queue, nil
}

func (a *app) rabbitMQ() (*rabbitmq.RabbitMQ, error) {
	if a.mq != nil {
		return a.mq, nil
	}

	connection, err := amqp.Dial(a.cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("can't open RabbitMQ connection: %w", err)
	}
	a.closers = append(a.closers, connection.Close)

	mq, err := rabbitmq.NewRabbitMQ(connection, a.cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, err
	}

	a.mq = mq
	return mq, nil
}

// Close releases opened connections in reverse order.
func (a *app) Close() error {
	var firstErr error
	for ix := len(a.closers) - 1; ix >= 0; ix-- {
		if err := a.closers[ix](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
