package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"rain-scent/internal/catalog"
	"rain-scent/internal/config"
	"rain-scent/internal/llm"
	"rain-scent/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// agreement_check corre escenarios fijos contra el LLM real y el ranking local
// y reporta si el primer perfume del LLM cae dentro del top 3 local.
func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.LLMEnabled() {
		log.Fatal("LLM_API_KEY is required for agreement_check")
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal(err)
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout(), logger)
	local := service.NewRecommendationService(cat, nil, logger)
	ai := service.NewAIRecommendationService(llmClient, cat, local, nil, nil, service.AIOptions{
		Timeout:            cfg.LLMTimeout(),
		BreakerMaxFailures: cfg.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.BreakerOpenTimeout(),
	}, logger)

	var reports []scenarioReport
	for _, sc := range defaultScenarios() {
		fmt.Printf("%s[Escenario]%s %s\n", colorCyan, colorReset, sc.Name)

		rec, source := ai.Recommend(ctx, sc.Answers)
		report := compare(sc.Name, rec, source, local.Recommend(sc.Answers))
		reports = append(reports, report)

		color := colorRed
		if report.Agrees {
			color = colorGreen
		}
		fmt.Printf("  source=%s ai=%s local=[%s] %sagree=%v%s\n\n",
			report.Source, report.AITop, strings.Join(report.LocalTop, ", "), color, report.Agrees, colorReset)
	}

	rate, counted := agreementRate(reports)
	fmt.Println("==== Resumen ====")
	fmt.Printf("Acuerdo: %.0f%% (%d escenarios con respuesta del LLM de %d)\n", rate*100, counted, len(reports))
}
