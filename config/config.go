package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Generator selects and configures the remote generation backend.
// An empty Provider means no remote generator is configured: every
// response is produced by the local fallback engines.
type Generator struct {
	Provider string        `yaml:"provider" env:"GENERATOR_PROVIDER"`
	APIKey   string        `yaml:"api_key" env:"GENERATOR_API_KEY"`
	BaseURL  string        `yaml:"base_url" env:"GENERATOR_BASE_URL"`
	Model    string        `yaml:"model" env:"GENERATOR_MODEL"`
	Endpoint string        `yaml:"endpoint" env:"GENERATOR_ENDPOINT"`
	Timeout  time.Duration `yaml:"timeout" env:"GENERATOR_TIMEOUT"`
}

type Response struct {
	// Delay between personas in one batch. An ordering/UX decision,
	// not a rate limit.
	PacingDelay time.Duration `yaml:"pacing_delay" env:"RESPONSE_PACING_DELAY"`
}

type Telegram struct {
	TelegramAPIToken string `yaml:"api_token" env:"TELEGRAM_APITOKEN"`
}

type Redis struct {
	Endpoint string `yaml:"endpoint" env:"REDIS_ENDPOINT"`
}

type TrainingSample struct {
	Text    string    `yaml:"text"`
	Title   string    `yaml:"title"`
	Notes   string    `yaml:"notes"`
	AddedAt time.Time `yaml:"added_at"`
}

type StylePreferences struct {
	Tone      string `yaml:"tone"`
	Formality string `yaml:"formality"`
	Length    string `yaml:"length"`
	Voice     string `yaml:"voice"`
}

// Persona blocks in the yaml config seed the registry at startup.
type Persona struct {
	ID                 string           `yaml:"id"`
	Name               string           `yaml:"name"`
	Personality        string           `yaml:"personality"`
	WritingStyle       string           `yaml:"writing_style"`
	CustomInstructions string           `yaml:"custom_instructions"`
	Style              StylePreferences `yaml:"style"`
	TrainingSamples    []TrainingSample `yaml:"training_samples"`
}

type Config struct {
	Generator Generator `yaml:"generator"`
	Response  Response  `yaml:"response"`
	Telegram  Telegram  `yaml:"telegram"`
	Redis     Redis     `yaml:"redis"`
	Personas  []Persona `yaml:"personas"`
}

func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
		return nil, err
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
