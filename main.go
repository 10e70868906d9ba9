package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"hoteldesk_nlu/src"
	"hoteldesk_nlu/src/dialogue"
	"hoteldesk_nlu/src/entity"
	"hoteldesk_nlu/src/intent"
	"hoteldesk_nlu/src/language"
	"hoteldesk_nlu/src/logger"
	"hoteldesk_nlu/src/response"
)

const configPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	envConfig, err := src.LoadConfig()
	if err != nil {
		return err
	}
	if err := logger.Init(envConfig.Log); err != nil {
		return err
	}

	fileConfig, err := src.LoadFileConfig(configPath)
	if err != nil {
		logger.Warn().Err(err).Msg("config file not loaded, using defaults")
		fileConfig = src.DefaultFileConfig()
	}

	ctx := context.Background()

	strategy, err := buildStrategy(ctx, fileConfig, envConfig)
	if err != nil {
		return err
	}

	generator, err := response.NewGenerator(fileConfig.Language.DefaultLanguage)
	if err != nil {
		return err
	}

	registry, err := buildRegistry(ctx, fileConfig, envConfig)
	if err != nil {
		return err
	}
	defer registry.Close()

	manager := dialogue.NewManager(
		language.NewDetector(fileConfig.Language),
		strategy,
		entity.NewExtractor(fileConfig.Entities),
		generator,
		registry,
		dialogue.Options{MaxHistoryTurns: fileConfig.Session.MaxHistoryTurns},
	)

	return console(ctx, manager)
}

func buildStrategy(ctx context.Context, fileConfig *src.FileConfig, envConfig *src.Config) (intent.Strategy, error) {
	if fileConfig.Classifier.Strategy == "keywords" {
		return intent.NewKeywordClassifier(), nil
	}

	var backend intent.Backend
	if fileConfig.Classifier.Provider != "" {
		b, err := intent.NewModelBackend(ctx, fileConfig.Classifier, envConfig.Secret.ClassifierAPIKey)
		if err != nil {
			return nil, err
		}
		backend = b
	}
	return intent.NewRuleClassifier(backend), nil
}

func buildRegistry(ctx context.Context, fileConfig *src.FileConfig, envConfig *src.Config) (dialogue.Registry, error) {
	if fileConfig.Session.Store == "redis" {
		return dialogue.NewRedisRegistry(ctx, envConfig.Secret.RedisURL, fileConfig.Session)
	}
	return dialogue.NewMemoryRegistry(fileConfig.Session), nil
}

// console runs an interactive loop against a single session.
func console(ctx context.Context, manager *dialogue.Manager) error {
	sessionID := uuid.NewString()
	fmt.Printf("Hotel desk assistant (session %s)\n", sessionID)
	fmt.Println("Type a message, /clear to reset the session, /quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/clear":
			if err := manager.ClearSession(ctx, sessionID); err != nil {
				logger.Error().Err(err).Msg("failed to clear session")
			}
			fmt.Println("session cleared")
			continue
		}

		resp, err := manager.ProcessMessage(ctx, line, sessionID)
		if err != nil {
			logger.Error().Err(err).Msg("failed to process message")
			continue
		}

		fmt.Println(resp.Message)
		fmt.Printf("  [intent=%s confidence=%.2f language=%s turn=%d",
			resp.Intent, resp.Confidence, resp.Language, resp.TurnCount)
		if len(resp.MissingSlots) > 0 {
			fmt.Printf(" missing=%s", strings.Join(resp.MissingSlots, ","))
		}
		fmt.Println("]")
	}
}
