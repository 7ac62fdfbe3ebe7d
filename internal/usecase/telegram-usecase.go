package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/sourcegraph/conc"

	"github.com/anikeeva/writedesk/config"
	"github.com/anikeeva/writedesk/internal/model"
)

const (
	MessageServerError     = "Something wrong with me. Try later"
	MessageCommandStart    = "Welcome to WriteDesk! Send me a text and every persona will answer. Mention a persona (@id) to address it alone. Use /personas to see who is around."
	MessageCommandHelp     = "Send any text: asking for a rewrite, asking for feedback, or just chatting. Use /rewrite <text> or /feedback <text> to force the treatment, /personas to list personas, /newpersona and /sample to manage them."
	MessageCommandUnknown  = "I don't know that command"
	MessageNoPersonas      = "No personas are configured yet. Create one with /newpersona <name> | <personality> | <writing style>"
	MessageRewriteUsage    = "Usage: /rewrite <text to rewrite>"
	MessageFeedbackUsage   = "Usage: /feedback <text to get feedback on>"
	MessageSampleUsage     = "Usage: /sample <persona id> <sample text>"
	MessageSampleSaved     = "Sample saved for %s"
	MessageNewPersonaUsage = "Usage: /newpersona <name> | <personality> | <writing style>"
	MessagePersonaCreated  = "Created persona %s (id: %s)"

	CommandStart      = "start"
	CommandHelp       = "help"
	CommandPersonas   = "personas"
	CommandRewrite    = "rewrite"
	CommandFeedback   = "feedback"
	CommandSample     = "sample"
	CommandNewPersona = "newpersona"
)

type TelegramUsecaseDeps struct {
	Persona  *PersonaUsecase
	Response *ResponseUsecase
	Bot      *api.BotAPI
}

type TelegramUsecase struct {
	TelegramUsecaseDeps
	cfg config.Telegram
}

func NewTelegramUsecase(cfg config.Telegram, deps TelegramUsecaseDeps) (*TelegramUsecase, error) {
	_, err := deps.Bot.Request(
		api.NewSetMyCommands(
			[]api.BotCommand{
				{
					Command:     CommandHelp,
					Description: "How to talk to the personas",
				},
				{
					Command:     CommandPersonas,
					Description: "List available personas",
				},
				{
					Command:     CommandRewrite,
					Description: "Rewrite a text in every persona's voice",
				},
				{
					Command:     CommandFeedback,
					Description: "Get feedback on a text from every persona",
				},
			}...,
		),
	)
	if err != nil {
		return nil, err
	}

	return &TelegramUsecase{
		TelegramUsecaseDeps: deps,
		cfg:                 cfg,
	}, nil
}

func (t *TelegramUsecase) Run() error {
	u := api.NewUpdate(0)
	u.Timeout = 60

	updates := t.Bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		if err := t.handleMessage(context.Background(), update); err != nil {
			log.Printf("error handling message: %v", err)
		}
	}
	return nil
}

func (t *TelegramUsecase) handleMessage(ctx context.Context, update api.Update) error {
	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		return t.handleCommand(ctx, chatID, update)
	}

	return t.dispatch(ctx, chatID, update.Message.Text, model.IntentUnknown)
}

func (t *TelegramUsecase) handleCommand(ctx context.Context, chatID int64, update api.Update) error {
	args := strings.TrimSpace(update.Message.CommandArguments())

	switch update.Message.Command() {
	case CommandStart:
		t.sendMessageAndHandleErr(chatID, MessageCommandStart)
	case CommandHelp:
		t.sendMessageAndHandleErr(chatID, MessageCommandHelp)
	case CommandPersonas:
		return t.handlePersonasCommand(ctx, chatID)
	case CommandRewrite:
		if args == "" {
			t.sendMessageAndHandleErr(chatID, MessageRewriteUsage)
			return nil
		}
		return t.dispatch(ctx, chatID, args, model.IntentRewrite)
	case CommandFeedback:
		if args == "" {
			t.sendMessageAndHandleErr(chatID, MessageFeedbackUsage)
			return nil
		}
		return t.dispatch(ctx, chatID, args, model.IntentFeedback)
	case CommandSample:
		return t.handleSampleCommand(ctx, chatID, args)
	case CommandNewPersona:
		return t.handleNewPersonaCommand(ctx, chatID, args)
	default:
		t.sendMessageAndHandleErr(chatID, MessageCommandUnknown)
	}
	return nil
}

func (t *TelegramUsecase) handlePersonasCommand(ctx context.Context, chatID int64) error {
	personas, err := t.Persona.ListPersonas(ctx)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError)
		return fmt.Errorf("failed to list personas: %w", err)
	}
	if len(personas) == 0 {
		t.sendMessageAndHandleErr(chatID, MessageNoPersonas)
		return nil
	}
	t.sendMessageAndHandleErr(chatID, preparePersonasList(personas))
	return nil
}

func (t *TelegramUsecase) handleSampleCommand(ctx context.Context, chatID int64, args string) error {
	personaID, text, ok := strings.Cut(args, " ")
	if !ok || strings.TrimSpace(text) == "" {
		t.sendMessageAndHandleErr(chatID, MessageSampleUsage)
		return nil
	}
	if err := t.Persona.AddTrainingSample(ctx, personaID, strings.TrimSpace(text), "", ""); err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError)
		return fmt.Errorf("failed to add training sample: %w", err)
	}
	t.sendMessageAndHandleErr(chatID, fmt.Sprintf(MessageSampleSaved, personaID))
	return nil
}

func (t *TelegramUsecase) handleNewPersonaCommand(ctx context.Context, chatID int64, args string) error {
	parts := strings.SplitN(args, "|", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) != 3 || parts[0] == "" {
		t.sendMessageAndHandleErr(chatID, MessageNewPersonaUsage)
		return nil
	}
	persona, err := t.Persona.CreatePersona(ctx, parts[0], parts[1], parts[2])
	if err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError)
		return fmt.Errorf("failed to create persona: %w", err)
	}
	t.sendMessageAndHandleErr(chatID, fmt.Sprintf(MessagePersonaCreated, persona.Name, persona.ID))
	return nil
}

// dispatch runs the text through the response pipeline and relays each
// persona's result to the chat as it is produced.
func (t *TelegramUsecase) dispatch(
	ctx context.Context, chatID int64, text string, explicit model.Intent,
) error {
	personas, err := t.Persona.ListPersonas(ctx)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, MessageServerError)
		return fmt.Errorf("failed to list personas: %w", err)
	}
	if len(personas) == 0 {
		t.sendMessageAndHandleErr(chatID, MessageNoPersonas)
		return nil
	}

	targets, body := resolveTargets(text, personas)
	msg := model.Message{
		Text:             body,
		TargetPersonaIDs: targets,
		ExplicitIntent:   explicit,
	}

	results := make(chan model.GenerationResult)
	wg := conc.NewWaitGroup()
	wg.Go(
		func() {
			t.Response.RespondStream(ctx, msg, results)
		},
	)
	wg.Go(
		func() {
			if _, err := t.Bot.Request(api.NewChatAction(chatID, api.ChatTyping)); err != nil {
				log.Printf("failed to send new action to bot: %v\n", err)
			}
			for result := range results {
				t.sendMessageAndHandleErr(chatID, formatResult(result))
			}
		},
	)
	wg.Wait()
	return nil
}

// resolveTargets extracts leading @id mentions matching known personas.
// Without mentions the whole registry is targeted, in registry order.
func resolveTargets(text string, personas []model.Persona) ([]string, string) {
	known := make(map[string]struct{}, len(personas))
	for _, persona := range personas {
		known[persona.ID] = struct{}{}
	}

	targets := make([]string, 0)
	rest := strings.TrimSpace(text)
	for {
		if !strings.HasPrefix(rest, "@") {
			break
		}
		mention, remaining, _ := strings.Cut(rest, " ")
		id := strings.TrimPrefix(mention, "@")
		if _, ok := known[id]; !ok {
			break
		}
		targets = append(targets, id)
		rest = strings.TrimSpace(remaining)
	}

	if len(targets) == 0 {
		for _, persona := range personas {
			targets = append(targets, persona.ID)
		}
		return targets, strings.TrimSpace(text)
	}
	return targets, rest
}

func preparePersonasList(personas []model.Persona) string {
	result := strings.Builder{}
	result.WriteString(fmt.Sprintf("You have %v personas.\n", len(personas)))
	for i, persona := range personas {
		result.WriteString(
			fmt.Sprintf(
				"%v) %s (@%s): %s. Samples: %v\n",
				i+1, persona.Name, persona.ID, persona.Personality, len(persona.Training.Samples),
			),
		)
	}
	return result.String()
}

func formatResult(result model.GenerationResult) string {
	if result.ResponseType == model.ResponseTypeError {
		return result.Text
	}
	return fmt.Sprintf("%s:\n%s", result.PersonaName, result.Text)
}

func (t *TelegramUsecase) sendMessageAndHandleErr(chatID int64, message string) api.Message {
	msg, err := t.sendMessage(chatID, message)
	if err != nil {
		log.Printf("failed to send new message to bot: %v\n", err)
	}
	return msg
}

func (t *TelegramUsecase) sendMessage(chatID int64, message string) (api.Message, error) {
	return t.sendToBot(api.NewMessage(chatID, message))
}

func (t *TelegramUsecase) sendToBot(c api.Chattable) (api.Message, error) {
	return t.Bot.Send(c)
}
