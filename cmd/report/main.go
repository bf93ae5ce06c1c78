package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"geolens/db"
	"geolens/internal/agent"
	"geolens/internal/logging"
	"geolens/internal/model"
	"geolens/internal/repository"
	"geolens/pkg/geo"
	"geolens/pkg/llm"
	"geolens/pkg/news"
	"geolens/pkg/official"

	"github.com/joho/godotenv"
)

// One-shot report: run the news and official agents for a location, contrast
// the two, and print the narrative. Useful for cron jobs and smoke checks
// without standing up the API.
func main() {
	location := flag.String("location", "", "location to report on (required)")
	keywords := flag.String("keywords", "", "extra search keywords")
	indicator := flag.String("indicator", string(model.IndicatorDemographics), "official indicator")
	period := flag.Int("period", 5, "official data period in years")
	days := flag.Int("days", 7, "news window in days, 0 for no window")
	flag.Parse()

	godotenv.Load()
	logging.Init()

	if *location == "" {
		flag.Usage()
		os.Exit(2)
	}

	ind, err := model.ParseIndicator(*indicator)
	if err != nil {
		log.Fatalf("unknown indicator %q, valid: %v", *indicator, model.Indicators)
	}

	openaiClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	var enricher llm.Enricher = openaiClient
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		enricher = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}

	newsAgent := agent.NewNewsAgent(news.NewCollector(os.Getenv("NEWS_LANG"), os.Getenv("NEWS_COUNTRY")), enricher)
	officialAgent := agent.NewOfficialAgent(geo.NewClient(), official.NewProvider())
	contrastAgent := agent.NewContrastAgent(enricher)

	ctx := context.Background()

	var start, end *time.Time
	if *days > 0 {
		e := time.Now().UTC()
		s := e.AddDate(0, 0, -*days)
		start, end = &s, &e
	}

	newsRes, err := newsAgent.Run(ctx, *location, *keywords, start, end)
	if err != nil {
		log.Fatalf("error running news agent: %v", err)
	}
	slog.Info("news agent done", "records", len(newsRes.Records))

	officialRes := officialAgent.Run(ctx, *location, ind, *period)
	slog.Info("official agent done", "kind", officialRes.Kind)

	snap := model.Snapshot{News: newsRes, Official: officialRes}
	narrative, err := contrastAgent.Run(ctx, *location, snap)
	if err != nil {
		log.Fatalf("error running contrast agent: %v", err)
	}

	fmt.Println(narrative)

	if os.Getenv("DATABASE_URL") == "" {
		return
	}

	if err := db.Connect(); err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	repo := repository.NewRunRepository(db.DB)
	sessionID := fmt.Sprintf("report-%s", time.Now().UTC().Format("20060102-150405"))

	if _, err := repo.SaveNewsRun(sessionID, newsRes); err != nil {
		log.Fatalf("error archiving news run: %v", err)
	}
	if _, err := repo.SaveOfficialRun(sessionID, officialRes); err != nil {
		log.Fatalf("error archiving official run: %v", err)
	}
	id, err := repo.SaveContrast(sessionID, *location, narrative)
	if err != nil {
		log.Fatalf("error archiving contrast run: %v", err)
	}

	slog.Info("report archived", "session_id", sessionID, "contrast_run_id", id)
}
