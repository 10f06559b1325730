package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/modulogestor/gestor-api/internal/api/handler"
	"github.com/modulogestor/gestor-api/internal/api/handler/router"
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
	"github.com/modulogestor/gestor-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	visaoGeralService visaogeral.Summarizer,
	financasService financas.Reporter,
	comprasService compras.Reporter,
	engenhariaService engenharia.Reporter,
	tributosService tributos.Reporter,
	pessoalService pessoal.Reporter,
	suprimentosService suprimentos.Reporter,
	frotasService frotas.Reporter,
	atendimentoService atendimento.Reporter,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.VisaoGeral(visaoGeralService)...),
		router.WithRoutes(handler.Financas(financasService)...),
		router.WithRoutes(handler.Compras(comprasService, config.Dashboard.ContratosVencimentoDias)...),
		router.WithRoutes(handler.Engenharia(engenhariaService)...),
		router.WithRoutes(handler.Tributos(tributosService)...),
		router.WithRoutes(handler.Pessoal(pessoalService)...),
		router.WithRoutes(handler.Suprimentos(suprimentosService)...),
		router.WithRoutes(handler.Frotas(frotasService)...),
		router.WithRoutes(handler.Atendimento(atendimentoService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
