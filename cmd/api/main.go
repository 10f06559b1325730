package main

import (
	"context"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/api"
	"github.com/modulogestor/gestor-api/internal/config"
	"github.com/modulogestor/gestor-api/internal/usecases/atendimento"
	"github.com/modulogestor/gestor-api/internal/usecases/compras"
	"github.com/modulogestor/gestor-api/internal/usecases/engenharia"
	"github.com/modulogestor/gestor-api/internal/usecases/financas"
	"github.com/modulogestor/gestor-api/internal/usecases/frotas"
	"github.com/modulogestor/gestor-api/internal/usecases/pessoal"
	"github.com/modulogestor/gestor-api/internal/usecases/suprimentos"
	"github.com/modulogestor/gestor-api/internal/usecases/tributos"
	"github.com/modulogestor/gestor-api/internal/usecases/visaogeral"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	overviewRepo := repository.NewOverviewRepository(pgConn)
	receitaRepo := repository.NewReceitaRepository(pgConn)
	despesaRepo := repository.NewDespesaRepository(pgConn)
	licitacaoRepo := repository.NewLicitacaoRepository(pgConn)
	contratoRepo := repository.NewContratoRepository(pgConn)
	obraRepo := repository.NewObraRepository(pgConn)
	convenioRepo := repository.NewConvenioRepository(pgConn)
	tributoRepo := repository.NewTributoRepository(pgConn)
	rhRepo := repository.NewRHRepository(pgConn)
	patrimonioRepo := repository.NewPatrimonioRepository(pgConn)
	almoxarifadoRepo := repository.NewAlmoxarifadoRepository(pgConn)
	frotaRepo := repository.NewFrotaRepository(pgConn)
	protocoloRepo := repository.NewProtocoloRepository(pgConn)

	visaoGeralService := visaogeral.NewService(overviewRepo)
	financasService := financas.NewService(receitaRepo, despesaRepo)
	comprasService := compras.NewService(licitacaoRepo, contratoRepo)
	engenhariaService := engenharia.NewService(obraRepo, convenioRepo, float64(cfg.Dashboard.ConvenioExecucaoMinimaPct))
	tributosService := tributos.NewService(tributoRepo)
	pessoalService := pessoal.NewService(rhRepo)
	suprimentosService := suprimentos.NewService(patrimonioRepo, almoxarifadoRepo)
	frotasService := frotas.NewService(frotaRepo, frotas.Janelas{
		RetroDias:   cfg.Dashboard.LicenciamentoRetroDias,
		JanelaDias:  cfg.Dashboard.LicenciamentoJanelaDias,
		AVencerDias: cfg.Dashboard.LicenciamentoAVencerDias,
	})
	atendimentoService := atendimento.NewService(protocoloRepo)

	server, err := api.New(
		cfg,
		visaoGeralService,
		financasService,
		comprasService,
		engenhariaService,
		tributosService,
		pessoalService,
		suprimentosService,
		frotasService,
		atendimentoService,
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
