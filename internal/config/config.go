package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
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

// Dashboard configura o cliente de dashboard (terminal)
type Dashboard struct {
	APIURL                    string `mapstructure:"api_url"`
	RequestTimeoutSeconds     int    `mapstructure:"api_request_timeout_seconds"`
	RefreshIntervalSeconds    int    `mapstructure:"dashboard_refresh_interval_seconds"`
	ContratosVencimentoDias   int    `mapstructure:"contratos_vencimento_dias"`
	LicenciamentoJanelaDias   int    `mapstructure:"licenciamento_janela_dias"`
	LicenciamentoRetroDias    int    `mapstructure:"licenciamento_retro_dias"`
	LicenciamentoAVencerDias  int    `mapstructure:"licenciamento_a_vencer_dias"`
	ConvenioExecucaoMinimaPct int    `mapstructure:"convenio_execucao_minima_pct"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/gestor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("API_URL", "http://localhost:8000")
	viper.SetDefault("API_REQUEST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DASHBOARD_REFRESH_INTERVAL_SECONDS", 60)

	// Janelas e limiares dos relatórios
	viper.SetDefault("CONTRATOS_VENCIMENTO_DIAS", 90)
	viper.SetDefault("LICENCIAMENTO_JANELA_DIAS", 120)
	viper.SetDefault("LICENCIAMENTO_RETRO_DIAS", 30)
	viper.SetDefault("LICENCIAMENTO_A_VENCER_DIAS", 60)
	viper.SetDefault("CONVENIO_EXECUCAO_MINIMA_PCT", 30)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Carrega o .env local antes do viper ler o ambiente
	if err := godotenv.Load(); err != nil {
		logrus.Info("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Viper não conseguiu ler .env:", err)
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
