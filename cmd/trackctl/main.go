// Command trackctl manages the prediction tracker from the shell:
//
//	trackctl check                                      settle yesterday's predictions
//	trackctl stats                                      print the accuracy report
//	trackctl log <team1> <team2> <winner> <score> [confidence]
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/hoopsight/hoopsight/internal/adapters/repository"
	"github.com/hoopsight/hoopsight/internal/adapters/results"
	app "github.com/hoopsight/hoopsight/internal/app"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/pkg/logger"
)

const defaultLogConfidence = 0.5

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "trackctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	if err := logger.Init(); err != nil {
		return err
	}
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	_ = logger.SetLevelString(cfg.LogLevel)

	store, err := repository.NewFileStore(cfg.DataDir,
		repository.WithStoreLogger(logger.Named("store")),
	)
	if err != nil {
		return err
	}
	source := results.NewClient(cfg.ResultsBaseURL,
		results.WithAPIKey(cfg.ResultsAPIKey),
		results.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.ResultsTimeoutMS) * time.Millisecond}),
	)
	svc := app.New(
		app.WithLogger(logger.Named("trackctl")),
		app.WithStore(store),
		app.WithResultSource(source),
	)

	switch args[0] {
	case "check":
		return runCheck(ctx, svc)
	case "stats":
		return runStats(ctx, svc)
	case "log":
		return runLog(ctx, svc, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCheck(ctx context.Context, svc *app.Service) error {
	report, err := svc.Reconcile(ctx)
	if err != nil {
		return err
	}
	if report.Checked == 0 {
		fmt.Println("no predictions to check")
		return nil
	}
	fmt.Printf("checked: %d | correct: %d (%.1f%%)\n",
		report.Checked, report.Correct,
		float64(report.Correct)/float64(report.Checked)*100)
	return nil
}

func runStats(ctx context.Context, svc *app.Service) error {
	s, err := svc.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("overall accuracy: %.2f%% (%d/%d)\n",
		s.Accuracy, s.CorrectPredictions, s.TotalPredictions)
	if len(s.Last7Days) > 0 {
		fmt.Println("last 7 days:")
		for _, day := range s.Last7Days {
			fmt.Printf("  %s: %.1f%% (%d/%d)\n", day.Date, day.Accuracy, day.Correct, day.Total)
		}
	}
	if s.BestDay != nil {
		fmt.Printf("best day:  %s (%.1f%%)\n", s.BestDay.Date, s.BestDay.Accuracy)
	}
	if s.WorstDay != nil {
		fmt.Printf("worst day: %s (%.1f%%)\n", s.WorstDay.Date, s.WorstDay.Accuracy)
	}
	return nil
}

func runLog(ctx context.Context, svc *app.Service, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: trackctl log <team1> <team2> <winner> <score> [confidence]")
	}
	confidence := defaultLogConfidence
	if len(args) > 4 {
		c, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			return fmt.Errorf("invalid confidence %q: %w", args[4], err)
		}
		confidence = c
	}
	rec, err := svc.LogPrediction(ctx, app.LogRequest{
		Team1:           args[0],
		Team2:           args[1],
		PredictedWinner: args[2],
		PredictedScore:  args[3],
		Confidence:      confidence,
	})
	if err != nil {
		return err
	}
	fmt.Printf("prediction saved: %s\n", rec.ID)
	return nil
}

func usage() {
	fmt.Println("commands: check, stats, log <team1> <team2> <winner> <score> [confidence]")
}
