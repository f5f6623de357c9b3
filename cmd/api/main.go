package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kiendt120702/shopee-ads-sync/infrastructure/database/postgres"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/integrator/shopee/shopeeclient"
	"github.com/kiendt120702/shopee-ads-sync/infrastructure/repository"
	"github.com/kiendt120702/shopee-ads-sync/internal/api"
	"github.com/kiendt120702/shopee-ads-sync/internal/config"
	"github.com/kiendt120702/shopee-ads-sync/internal/scheduler"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/budgeting"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/reconciling"
	"github.com/kiendt120702/shopee-ads-sync/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	shopRepo := repository.NewShopRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	shopPerformanceRepo := repository.NewShopPerformanceRepository(pgConn)
	scheduleRuleRepo := repository.NewScheduleRuleRepository(pgConn)
	executionLogRepo := repository.NewExecutionLogRepository(pgConn)
	checkpointRepo := repository.NewSyncCheckpointRepository(pgConn)

	// Cliente da Shopee com renovação proativa de tokens por loja
	refresher := shopeeclient.NewRefresher(cfg, credentialRepo)
	shopeeClient := shopeeclient.NewClient(cfg, credentialRepo, refresher)
	shopeeIntegrator := shopee.New(cfg, shopeeClient)

	syncEngine := syncing.NewEngine(cfg, shopeeIntegrator, orderRepo, checkpointRepo)
	upserter := syncing.NewUpserter(performanceRepo, shopPerformanceRepo)
	reconciler := reconciling.NewReconciler(
		upserter,
		reconciling.NewAPISource(shopeeIntegrator),
		reconciling.NewCampaignSumSource(performanceRepo),
	)
	matcher := budgeting.NewMatcher(cfg, shopeeIntegrator, scheduleRuleRepo, executionLogRepo)

	// Inicializa os agendadores
	orderSyncService := scheduler.NewOrderSyncService(shopRepo, syncEngine, cfg)
	performanceSyncService := scheduler.NewPerformanceSyncService(
		shopRepo,
		campaignRepo,
		shopeeIntegrator,
		upserter,
		reconciler,
		cfg,
	)
	budgetScheduleService := scheduler.NewBudgetScheduleService(matcher, cfg)

	// Inicia os agendadores em background
	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de pedidos iniciado com sucesso")
	}

	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	if err := budgetScheduleService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o processador de regras de orçamento")
	} else {
		logrus.Info("Processador de regras de orçamento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		shopRepo,
		checkpointRepo,
		scheduleRuleRepo,
		executionLogRepo,
		orderSyncService,
		performanceSyncService,
		budgetScheduleService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
