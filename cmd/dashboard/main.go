package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/modulogestor/gestor-api/internal/config"
	"github.com/modulogestor/gestor-api/internal/dashboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL    string
		ano       int
		mes       int
		dias      int
		aba       string
		watch     bool
		intervalo int
	)

	rootCmd := &cobra.Command{
		Use:   "gestor-dashboard",
		Short: "Dashboard de indicadores municipais no terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			if apiURL == "" {
				apiURL = cfg.Dashboard.APIURL
			}
			if ano == 0 {
				ano = time.Now().Year()
			}
			if mes == 0 {
				mes = int(time.Now().Month())
			}
			if dias == 0 {
				dias = cfg.Dashboard.ContratosVencimentoDias
			}
			if intervalo == 0 {
				intervalo = cfg.Dashboard.RefreshIntervalSeconds
			}

			client := dashboard.NewClient(apiURL, time.Duration(cfg.Dashboard.RequestTimeoutSeconds)*time.Second)
			painel := dashboard.New(client, dashboard.Options{
				Ano:  ano,
				Mes:  mes,
				Dias: dias,
				Aba:  aba,
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if !watch {
				return painel.Render(ctx)
			}

			return watchLoop(ctx, cancel, painel, intervalo)
		},
	}

	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "URL base da API do gestor (padrão: API_URL do ambiente)")
	rootCmd.Flags().IntVar(&ano, "ano", 0, "Exercício de referência (padrão: ano corrente)")
	rootCmd.Flags().IntVar(&mes, "mes", 0, "Mês de referência, 1 a 12 (padrão: mês corrente)")
	rootCmd.Flags().IntVar(&dias, "dias", 0, "Janela de vencimento de contratos em dias")
	rootCmd.Flags().StringVar(&aba, "aba", dashboard.AbaTodas, "Aba a exibir: geral, financas, compras, engenharia, tributos, pessoal, suprimentos, frotas, atendimento ou todas")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Atualiza o painel periodicamente")
	rootCmd.Flags().IntVar(&intervalo, "intervalo", 0, "Intervalo de atualização em segundos no modo watch")

	return rootCmd
}

// watchLoop redesenha o painel em um job periódico. Cada execução busca os
// relatórios de novo e imprime um painel completo; a última execução
// concluída é a que fica visível, então uma busca lenta pode ser sobreposta
// por uma mais recente.
func watchLoop(ctx context.Context, cancel context.CancelFunc, painel *dashboard.Dashboard, intervaloSegundos int) error {
	scheduler := gocron.NewScheduler(time.Local)

	_, err := scheduler.Every(intervaloSegundos).Seconds().Do(func() {
		if err := painel.Render(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao renderizar o painel")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do painel: %w", err)
	}

	scheduler.StartAsync()
	defer scheduler.Stop()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		cancel()
	case <-ctx.Done():
	}

	return nil
}
