package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/services"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show whether Ollama is running and which models are installed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listModels(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func listModels(ctx context.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	client, err := services.NewOllamaClient(cfg.Ollama.Host)
	if err != nil {
		return err
	}

	backend := services.NewOllamaBackend(client, log)
	provider := services.NewAssistantProvider(backend, cfg.Ollama.PreferredModels, cfg.Ollama.ChatTimeout, log)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	status := provider.Status(ctx)
	if !status.Running {
		log.Error("Ollama is not running", zap.String("host", cfg.Ollama.Host), zap.String("error", status.Error))
		return fmt.Errorf("cannot connect to Ollama at %s, run 'ollama serve'", cfg.Ollama.Host)
	}

	if len(status.Models) == 0 {
		fmt.Println("Ollama is running but no models are installed. Try: ollama pull llama3.2")
		return nil
	}

	selected, _ := services.SelectModel(cfg.Ollama.PreferredModels, status.Models)
	fmt.Println("Ollama is running. Installed models:")
	for _, m := range status.Models {
		marker := " "
		if m == selected {
			marker = "*"
		}
		fmt.Printf(" %s %s\n", marker, m)
	}
	return nil
}
