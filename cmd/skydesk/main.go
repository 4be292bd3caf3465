package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skydesk/skydesk/chatbot"
	"github.com/skydesk/skydesk/chatbot/countries"
	"github.com/skydesk/skydesk/chatbot/session"
	"github.com/skydesk/skydesk/internal/profile"
	"github.com/skydesk/skydesk/internal/observability"
	"github.com/skydesk/skydesk/server"
	"github.com/skydesk/skydesk/store"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "skydesk",
	Short: "Airport-information chatbot service",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8080, "port of the server")
	rootCmd.PersistentFlags().String("data", "Airport details.xlsx", "path to the reference data workbook")
	rootCmd.PersistentFlags().String("country-url", countries.DefaultDirectoryURL, "country directory endpoint")
	rootCmd.PersistentFlags().Duration("session-timeout", time.Hour, "idle session expiry")
	rootCmd.PersistentFlags().Float64("rate-limit-rps", 10, "per-client requests per second, 0 disables")
	rootCmd.PersistentFlags().Int("rate-limit-burst", 20, "per-client burst size")

	for _, flag := range []string{"mode", "addr", "port", "data", "country-url", "session-timeout", "rate-limit-rps", "rate-limit-burst"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix("skydesk")
	viper.AutomaticEnv()
}

func run(_ *cobra.Command, _ []string) error {
	p := &profile.Profile{
		Mode:                viper.GetString("mode"),
		Addr:                viper.GetString("addr"),
		Port:                viper.GetInt("port"),
		DataFile:            viper.GetString("data"),
		CountryDirectoryURL: viper.GetString("country-url"),
		SessionTimeout:      viper.GetDuration("session-timeout"),
		RateLimitRPS:        viper.GetFloat64("rate-limit-rps"),
		RateLimitBurst:      viper.GetInt("rate-limit-burst"),
		Version:             version,
	}
	if err := p.Validate(); err != nil {
		return err
	}

	observability.SetupDefault(p.Mode)
	slog.Info("starting skydesk", "version", version, "mode", p.Mode)

	refdata, err := store.LoadWorkbook(p.DataFile)
	if err != nil {
		return err
	}
	slog.Info("reference data loaded", "file", p.DataFile)

	sessions := session.NewStore()
	countryCache := countries.NewCache(countries.NewHTTPDirectory(p.CountryDirectoryURL))
	dispatcher := chatbot.NewDispatcher(sessions, refdata, countryCache, p.SessionTimeout, slog.Default())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cleanup := session.NewCleanupJob(sessions, p.SessionTimeout, session.DefaultCleanupInterval)
	cleanup.Start(ctx)
	defer cleanup.Stop()

	return server.New(p, dispatcher).Start(ctx)
}

func main() {
	// Missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
