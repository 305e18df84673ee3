package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/quickmadu/internal/common/clock"
	"github.com/KirkDiggler/quickmadu/internal/common/roomcode"
	"github.com/KirkDiggler/quickmadu/internal/common/uuid"
	"github.com/KirkDiggler/quickmadu/internal/handlers/web"
	"github.com/KirkDiggler/quickmadu/internal/judge"
	"github.com/KirkDiggler/quickmadu/internal/letters"
	roomRepo "github.com/KirkDiggler/quickmadu/internal/repositories/room"
	gameService "github.com/KirkDiggler/quickmadu/internal/services/game"
	"github.com/KirkDiggler/quickmadu/internal/services/judging"
)

const releaseVersion = "0.1.0"

type config struct {
	bind          string
	port          int
	baseURL       string
	redisAddr     string
	redisPassword string
	geminiAPIKey  string
	geminiModel   string
	judgeTimeout  time.Duration
	maxPlayers    int
	verbose       bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QUICKMADU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "quickmadu",
		Short:         "A fast-paced multiplayer word game with an AI judge.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			if cfg.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: QUICKMADU_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: QUICKMADU_PORT)")
	fs.StringVar(&cfg.baseURL, "base-url", "http://localhost:8080", "public base URL for share links (env: QUICKMADU_BASE_URL)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: QUICKMADU_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: QUICKMADU_REDIS_PASSWORD)")
	fs.StringVar(&cfg.geminiAPIKey, "gemini-api-key", "", "Gemini API key; empty disables the AI judge (env: QUICKMADU_GEMINI_API_KEY)")
	fs.StringVar(&cfg.geminiModel, "gemini-model", judge.DefaultModel, "Gemini model name (env: QUICKMADU_GEMINI_MODEL)")
	fs.DurationVar(&cfg.judgeTimeout, "judge-timeout", judging.DefaultTimeout, "judging call deadline before fallback scoring (env: QUICKMADU_JUDGE_TIMEOUT)")
	fs.IntVar(&cfg.maxPlayers, "max-players", 12, "maximum players per room (env: QUICKMADU_MAX_PLAYERS)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: QUICKMADU_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("quickmadu v{{.Version}}\n")

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	log.Info().Str("version", releaseVersion).Msg("starting quickmadu")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create room repository: %w", err)
	}

	var judgeClient judge.Client
	if cfg.geminiAPIKey != "" {
		gemini, geminiErr := judge.NewGemini(ctx, &judge.Config{
			APIKey: cfg.geminiAPIKey,
			Model:  cfg.geminiModel,
		})
		if geminiErr != nil {
			return fmt.Errorf("failed to create judge client: %w", geminiErr)
		}
		defer func() { _ = gemini.Close() }()

		judgeClient = gemini
	} else {
		log.Warn().Msg("no Gemini API key configured, rounds will use fallback scoring")
	}

	judgingSvc, err := judging.New(&judging.Config{
		Client:  judgeClient,
		Timeout: cfg.judgeTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create judging service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxPlayers:     cfg.maxPlayers,
		RoomRepo:       repo,
		JudgingService: judgingSvc,
		LetterPicker:   letters.New(&letters.Config{}),
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
		CodeGenerator:  roomcode.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	server, err := web.New(&web.Config{
		Addr:        net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port)),
		BaseURL:     strings.TrimSuffix(cfg.baseURL, "/"),
		Version:     releaseVersion,
		GameService: gameSvc,
	})
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errs:
		return err
	case sig := <-sc:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	if err := server.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping web server")
	}

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("error closing redis client")
	}

	log.Info().Msg("server has been shut down")
	return nil
}

func main() {
	// A missing .env file is fine; real deployments set the environment
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := &config{}
	cmd := newCmd(cfg)

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("quickmadu exited with error")
	}
}
