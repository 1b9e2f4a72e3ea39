package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/normanking/signavatar/internal/animation"
	"github.com/normanking/signavatar/internal/bus"
	"github.com/normanking/signavatar/internal/config"
	"github.com/normanking/signavatar/internal/logging"
	"github.com/normanking/signavatar/internal/nlp"
	"github.com/normanking/signavatar/internal/pipeline"
	"github.com/normanking/signavatar/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "signavatar",
	Short: "Text-to-sign-language animation service",
	Long: `SignAvatar translates English text into timed sign language
animation sequences of MediaPipe hand landmarks.`,
}

func main() {
	rootCmd.AddCommand(serveCmd, translateCmd, signsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func animationConfig(cfg *config.Config) animation.Config {
	return animation.Config{
		FPS:                cfg.Animation.FPS,
		DefaultDuration:    cfg.Animation.DefaultDuration,
		TransitionDuration: cfg.Animation.TransitionDuration,
		MinDuration:        cfg.Animation.MinDuration,
		MaxDuration:        cfg.Animation.MaxDuration,
	}
}

func nlpConfig(cfg *config.Config) nlp.Config {
	return nlp.Config{Lemmatize: cfg.NLP.LemmatizerEnabled}
}

func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.LogLevel(cfg.Logging.Level)
	logCfg.Console = cfg.Logging.Console

	appLog, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	return cfg, appLog, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket animation server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLog, err := setup()
		if err != nil {
			return err
		}
		defer appLog.Close()

		events := bus.NewEventBus()
		pipe := pipeline.New(animationConfig(cfg), nlpConfig(cfg), events)
		srv := server.New(cfg.Server, pipe, events, appLog)

		config.Watch(func(next *config.Config) {
			log.Info().
				Str("level", next.Logging.Level).
				Msg("configuration reloaded")
			events.Publish(bus.Event{Type: bus.EventTypeConfigReloaded})
		})

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text to a sign animation sequence on stdout",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLog, err := setup()
		if err != nil {
			return err
		}
		defer appLog.Close()

		pipe := pipeline.New(animationConfig(cfg), nlpConfig(cfg), nil)
		result, err := pipe.Translate(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		signsOnly, _ := cmd.Flags().GetBool("signs-only")
		if signsOnly {
			fmt.Println(strings.Join(result.NLP.Signs, " "))
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

var signsCmd = &cobra.Command{
	Use:   "signs",
	Short: "List the sign vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLog, err := setup()
		if err != nil {
			return err
		}
		defer appLog.Close()

		pipe := pipeline.New(animationConfig(cfg), nlpConfig(cfg), nil)
		repo := pipe.Repository()
		for _, token := range repo.Tokens() {
			def := repo.Get(token)
			fmt.Printf("%-12s %-8s motion=%s\n", token, def.Type, def.MotionType)
		}
		fmt.Printf("\n%d signs\n", repo.Len())
		return nil
	},
}

func init() {
	translateCmd.Flags().Bool("signs-only", false, "print only the ordered sign tokens")
}
