package app

import (
	"context"
	"fmt"
	"log"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/redis/go-redis/v9"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/generator"
	"github.com/anikeeva/writedesk/internal/prompt"
	in_memory "github.com/anikeeva/writedesk/internal/storage/in-memory"
	key_value "github.com/anikeeva/writedesk/internal/storage/key-value"
	"github.com/anikeeva/writedesk/internal/usecase"
	"github.com/anikeeva/writedesk/pkg/tokencount"
)

func Run(cfg *config.Config) error {
	ctx := context.Background()

	bot, err := api.NewBotAPI(cfg.Telegram.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("failed to create new bot: %w", err)
	}
	log.Printf("Authorized on account %s", bot.Self.UserName)

	var personaStorage usecase.PersonaStorage
	var historyStorage usecase.HistoryStorage
	if cfg.Redis.Endpoint != "" {
		rdb := redis.NewClient(
			&redis.Options{
				Addr: cfg.Redis.Endpoint,
			},
		)
		personaStorage = key_value.NewPersonaStorage(rdb)
		historyStorage = key_value.NewHistoryStorage(rdb)
	} else {
		log.Printf("no redis endpoint configured, using in-memory storage")
		personaStorage = in_memory.NewPersonaStorage()
		historyStorage = in_memory.NewHistoryStorage()
	}

	personaUsecase := usecase.NewPersonaUsecase(
		usecase.PersonaUsecaseDeps{
			PersonaStorage: personaStorage,
		},
	)
	if err = personaUsecase.SeedFromConfig(ctx, cfg.Personas); err != nil {
		return fmt.Errorf("failed to seed personas: %w", err)
	}

	counter, err := tokencount.NewCounter(cfg.Generator.Model)
	if err != nil {
		return fmt.Errorf("failed to create token counter: %w", err)
	}

	gen, err := generator.New(ctx, cfg.Generator)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	if gen == nil {
		log.Printf("no generator provider configured, responses run on local fallback only")
	}

	responseUsecase := usecase.NewResponseUsecase(
		usecase.ResponseUsecaseDeps{
			PersonaStorage: personaStorage,
			HistoryStorage: historyStorage,
			Composer:       prompt.NewComposer(counter),
			Generator:      gen,
		}, cfg.Response,
	)

	telegramUsecase, err := usecase.NewTelegramUsecase(
		cfg.Telegram, usecase.TelegramUsecaseDeps{
			Persona:  personaUsecase,
			Response: responseUsecase,
			Bot:      bot,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram usecase: %w", err)
	}

	return telegramUsecase.Run()
}
