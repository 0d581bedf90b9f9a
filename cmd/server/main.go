package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/teofils1/supply-chain/api"
	"github.com/teofils1/supply-chain/config"
	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/pkg/grpclib"
	"github.com/teofils1/supply-chain/pkg/ledger"
	"github.com/teofils1/supply-chain/pkg/otellib"
	"github.com/teofils1/supply-chain/pkg/workerpool"
	"github.com/teofils1/supply-chain/repository"
	"github.com/teofils1/supply-chain/service/audit"
	"github.com/teofils1/supply-chain/service/notify"
)

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("supply-chain-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)
	healthpb.RegisterHealthServer(grpcServer, health.NewServer())

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	eventRepo := repository.NewEvent()
	ruleRepo := repository.NewNotificationRule()
	logRepo := repository.NewNotificationLog()
	subscriberRepo := repository.NewSubscriber()

	notifConf := conf.Notification

	pool := workerpool.New(logger, notifConf.NumWorkers, notifConf.WorkerQueueSize)

	logSender := notify.NewLogSender(logger)
	senders := notify.SenderRegistry{
		model.ChannelEmail: logSender,
		model.ChannelPush:  logSender,
		model.ChannelSMS:   logSender,
	}

	deliverer := notify.NewDeliverer(
		logger, provider, eventRepo, logRepo, subscriberRepo,
		senders, pool,
		notifConf.MaxAttempts, notifConf.RetryBaseDelay,
	)

	ruleCache := notify.NewRuleCache(provider, ruleRepo, notifConf.RuleCacheExpireSeconds)

	dispatcher := notify.NewDispatcher(
		logger, provider, eventRepo, logRepo,
		ruleCache, deliverer, notifConf,
	)
	go dispatcher.Run()

	monitor := notify.NewMonitor(
		logger, provider, logRepo, subscriberRepo, deliverer,
		notifConf.EscalationTimeout, notifConf.SweepInterval,
	)
	go monitor.Run()

	ledgerClient := ledger.NewMock(conf.Anchoring.Network)

	tracer := tracerProvider.Tracer("service")

	auditService := audit.NewIServiceWrapper(
		audit.NewService(provider, eventRepo, ledgerClient, dispatcher),
		tracer, "audit.",
	)
	notifyService := notify.NewIServiceWrapper(
		notify.NewService(provider, ruleRepo, logRepo, ruleCache),
		tracer, "notify.",
	)

	handler := api.NewHandler(logger, auditService, notifyService, monitor)

	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine)

	startHTTPAndGRPCServers(conf, grpcServer, engine)

	// servers are down, stop the background pipeline
	dispatcher.Stop()
	monitor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := pool.Shutdown(ctx); err != nil {
		logger.Error("worker pool shutdown", zap.Error(err))
	}
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPAndGRPCServers(conf config.Config, grpcServer *grpc.Server, engine *gin.Engine) {
	fmt.Println("GRPC:", conf.Server.GRPC.ListenString())
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", engine)

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: httpMux,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		fmt.Println("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
