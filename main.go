package main

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pivolan/corner_plots/config"
)

var (
	flagPlotDir string
	flagReport  bool
	flagPublish bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "corner_plots <url>",
		Short: "Render statistical charts from a remote JSON dataset",
		Long: "Fetches a JSON dataset of corner detection results from the given URL " +
			"and renders scatter plots, histograms, box plots and bar charts as PNG files.",
		Args: cobra.ExactArgs(1),
		RunE: run,
	}
	cmd.Flags().StringVar(&flagPlotDir, "plot-dir", "", "output directory for charts (default $PLOT_DIR or plots)")
	cmd.Flags().BoolVar(&flagReport, "report", false, "also write an interactive HTML report")
	cmd.Flags().BoolVar(&flagPublish, "publish", false, "send charts to the configured Telegram chat")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(_ *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	plotDir := flagPlotDir
	if plotDir == "" {
		plotDir = cfg.PlotDir
	}

	plotter, err := NewPlotter(plotDir)
	if err != nil {
		return err
	}
	plotter.Report = flagReport

	paths := plotter.DrawPlots(args[0])
	if len(paths) == 0 {
		log.Warn("no charts were generated")
		return nil
	}
	for _, path := range paths {
		fmt.Println(path)
	}

	if flagPublish {
		if cfg.TgToken == "" || cfg.TgChatID == 0 {
			log.Warn("TG_TOKEN or TG_CHAT_ID not configured, skipping publish")
			return nil
		}
		bot, err := tgbotapi.NewBotAPI(cfg.TgToken)
		if err != nil {
			return err
		}
		publishCharts(bot, cfg.TgChatID, paths)
	}
	return nil
}
