package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Shopee          Shopee          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	OrderSync       OrderSync       `mapstructure:",squash"`
	PerformanceSync PerformanceSync `mapstructure:",squash"`
	BudgetSchedule  BudgetSchedule  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Shopee agrupa a configuração da Open Platform da Shopee.
// PartnerID/PartnerKey são a credencial de assinatura global de fallback;
// credenciais por loja gravadas no banco têm precedência sobre elas.
type Shopee struct {
	BaseURL                  string `mapstructure:"shopee_base_url"`
	PartnerID                int64  `mapstructure:"shopee_partner_id"`
	PartnerKey               string `mapstructure:"shopee_partner_key"`
	ProxyBaseURL             string `mapstructure:"shopee_proxy_base_url"`
	RequestTimeoutSeconds    int    `mapstructure:"shopee_request_timeout_seconds"`
	TokenExpiryBufferMinutes int    `mapstructure:"shopee_token_expiry_buffer_minutes"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type OrderSync struct {
	CronSchedule        string `mapstructure:"order_sync_cron"`
	ChunkDays           int    `mapstructure:"order_sync_chunk_days"`
	PageSize            int    `mapstructure:"order_sync_page_size"`
	DetailBatchSize     int    `mapstructure:"order_sync_detail_batch_size"`
	MaxRecordsPerRun    int    `mapstructure:"order_sync_max_records_per_run"`
	RequestDelaySeconds int    `mapstructure:"order_sync_request_delay_seconds"`
	MaxConcurrentShops  int    `mapstructure:"order_sync_max_concurrent_shops"`
	MonthLookback       int    `mapstructure:"order_sync_month_lookback"`
	Enabled             bool   `mapstructure:"order_sync_enabled"`
}

type PerformanceSync struct {
	CronSchedule        string `mapstructure:"performance_sync_cron"`
	LookbackDays        int    `mapstructure:"performance_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"performance_sync_request_delay_seconds"`
	MaxConcurrentShops  int    `mapstructure:"performance_sync_max_concurrent_shops"`
	Enabled             bool   `mapstructure:"performance_sync_enabled"`
}

type BudgetSchedule struct {
	CronSchedule         string `mapstructure:"budget_schedule_cron"`
	BucketMinutes        int    `mapstructure:"budget_schedule_bucket_minutes"`
	DedupLookbackMinutes int    `mapstructure:"schedule_dedup_lookback_minutes"`
	Enabled              bool   `mapstructure:"budget_schedule_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shopee_ads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOPEE_BASE_URL", "https://partner.shopeemobile.com")
	viper.SetDefault("SHOPEE_PARTNER_ID", 0)
	viper.SetDefault("SHOPEE_PARTNER_KEY", "")
	viper.SetDefault("SHOPEE_PROXY_BASE_URL", "") // vazio = chamadas diretas
	viper.SetDefault("SHOPEE_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SHOPEE_TOKEN_EXPIRY_BUFFER_MINUTES", 10)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização de pedidos por mês
	viper.SetDefault("ORDER_SYNC_CRON", "*/20 * * * *")      // A cada 20 minutos
	viper.SetDefault("ORDER_SYNC_CHUNK_DAYS", 7)             // Sub-períodos de 7 dias
	viper.SetDefault("ORDER_SYNC_PAGE_SIZE", 50)             // Itens por página do cursor
	viper.SetDefault("ORDER_SYNC_DETAIL_BATCH_SIZE", 50)     // Máximo de pedidos por chamada de detalhe
	viper.SetDefault("ORDER_SYNC_MAX_RECORDS_PER_RUN", 500)  // Teto de registros por invocação
	viper.SetDefault("ORDER_SYNC_REQUEST_DELAY_SECONDS", 1)  // Pausa entre sub-lotes
	viper.SetDefault("ORDER_SYNC_MAX_CONCURRENT_SHOPS", 3)   // Lojas processadas em paralelo
	viper.SetDefault("ORDER_SYNC_MONTH_LOOKBACK", 1)         // Meses a manter em sincronização
	viper.SetDefault("ORDER_SYNC_ENABLED", false)

	// Defaults para sincronização de desempenho de anúncios
	viper.SetDefault("PERFORMANCE_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("PERFORMANCE_SYNC_LOOKBACK_DAYS", 7)     // Janela de atribuição da Shopee
	viper.SetDefault("PERFORMANCE_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("PERFORMANCE_SYNC_MAX_CONCURRENT_SHOPS", 3)
	viper.SetDefault("PERFORMANCE_SYNC_ENABLED", false)

	// Defaults para o processador de regras de orçamento
	viper.SetDefault("BUDGET_SCHEDULE_CRON", "0,30 * * * *")      // A cada 30 minutos
	viper.SetDefault("BUDGET_SCHEDULE_BUCKET_MINUTES", 30)        // Largura do bucket de disparo
	viper.SetDefault("SCHEDULE_DEDUP_LOOKBACK_MINUTES", 25)       // Janela de dedup de execuções
	viper.SetDefault("BUDGET_SCHEDULE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
