package main

import (
	"context"
	"fmt"

	"github.com/tmurov/reqdesk/internal/config"
	"github.com/tmurov/reqdesk/internal/export"
	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/notify"
	"github.com/tmurov/reqdesk/internal/service"
	"github.com/tmurov/reqdesk/internal/source"
	"github.com/tmurov/reqdesk/internal/store"
	"github.com/tmurov/reqdesk/internal/tui"
	"github.com/tmurov/reqdesk/internal/workers"
	"github.com/tmurov/reqdesk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewDeskLogger("reqdesk")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recordSource, err := source.NewRecordSource(ctx, cfg.Source, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record source")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	var sound notify.SoundPlayer = notify.NopSoundPlayer{}
	if cfg.Notify.Sound {
		sound = notify.NewSystemSoundPlayer(log)
	}
	desktop := notify.NewSystemDesktopNotifier(cfg.Notify.Desktop, log)

	services := service.NewServices(ctx, recordSource, storages, sound, desktop, log)

	settings := models.PrintSettings{
		Copies:      cfg.Print.Copies,
		Paper:       models.PaperSize(cfg.Print.Paper),
		Orientation: models.Orientation(cfg.Print.Orientation),
	}
	desk := export.NewDesk(
		services.Transitions,
		export.NewPDFExporter(cfg.Print.OutputDir, log),
		export.NewSpoolPrinter(log),
		settings,
	)

	ui, err := tui.New(services, desk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	// establish the baseline before the screen comes up; a failure here is
	// surfaced as a connectivity toast on the first frame
	services.Orchestrator.PollOnce(ctx, false)

	workers.NewWorkers(
		workers.NewSyncWorker(ctx, services.Job, cfg.Sync.Interval),
	).Run()
	defer services.Job.Stop()

	if err = ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("desk run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
