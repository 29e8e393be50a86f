package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAzure     = "azure"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderBedrock   = "bedrock"
)

// DefaultCrisisKeywords are the phrases that force a critical escalation
// regardless of what the model returns.
var DefaultCrisisKeywords = []string{
	"kill myself",
	"end my life",
	"don't want to live",
	"suicide",
	"hurt myself",
	"want to die",
	"no reason to live",
	"don't want to exist",
}

const DefaultCrisisMessage = "It sounds like you're going through something really difficult. " +
	"You deserve support. Please consider reaching out to a crisis helpline."

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Crisis     CrisisConfig     `mapstructure:"crisis"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Emergency  EmergencyConfig  `mapstructure:"emergency"`
	Detection  DetectionConfig  `mapstructure:"detection"`
	Events     EventsConfig     `mapstructure:"events"`
}

type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	MetricsPort  int      `mapstructure:"metrics_port"`
	Host         string   `mapstructure:"host"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	TLSEnable bool   `mapstructure:"tls"`
}

// ClassifierConfig selects the model backend used by the classification
// gateway. BaseURL lets the openai provider talk to any OpenAI-compatible
// chat completions endpoint.
type ClassifierConfig struct {
	Provider               string         `mapstructure:"provider"`
	Model                  string         `mapstructure:"model"`
	BaseURL                string         `mapstructure:"base_url"`
	APIKey                 string         `mapstructure:"api_key"`
	Temperature            float64        `mapstructure:"temperature"`
	MaxTokens              int            `mapstructure:"max_tokens"`
	DegradeOnUpstreamError bool           `mapstructure:"degrade_on_upstream_error"`
	Options                map[string]any `mapstructure:"options"`
	Azure                  AzureConfig    `mapstructure:"azure"`
	Bedrock                BedrockConfig  `mapstructure:"bedrock"`
}

type AzureConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	APIVersion  string `mapstructure:"api_version"`
	UseIdentity bool   `mapstructure:"use_identity"`
}

// BedrockConfig falls back to the default AWS credential chain when no keys
// are set. RoleARN is assumed through STS on top of those credentials.
type BedrockConfig struct {
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key"`
	SecretKey       string `mapstructure:"secret_key"`
	SessionToken    string `mapstructure:"session_token"`
	RoleARN         string `mapstructure:"role_arn"`
	RoleSessionName string `mapstructure:"role_session_name"`
}

type CrisisConfig struct {
	Keywords []string `mapstructure:"keywords"`
	Message  string   `mapstructure:"message"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type EmergencyConfig struct {
	Region          string `mapstructure:"region"`
	EmergencyNumber string `mapstructure:"emergency_number"`
	HelplineNumber  string `mapstructure:"helpline_number"`
	PsychiatristURL string `mapstructure:"psychiatrist_url"`
}

type DetectionConfig struct {
	GatewayURL         string        `mapstructure:"gateway_url"`
	APIKey             string        `mapstructure:"api_key"`
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
	LockTTL            time.Duration `mapstructure:"lock_ttl"`
	DraftTTL           time.Duration `mapstructure:"draft_ttl"`
}

// secretKeys are usually absent from the yaml file, so they are bound to
// their environment variables explicitly (auth.jwt_secret -> AUTH_JWT_SECRET).
var secretKeys = []string{
	"classifier.api_key",
	"auth.jwt_secret",
	"detection.api_key",
	"database.password",
	"redis.password",
	"classifier.bedrock.access_key",
	"classifier.bedrock.secret_key",
}

// EventsConfig selects where flagged post events go. An empty publisher
// disables them.
type EventsConfig struct {
	Publisher string                 `mapstructure:"publisher"`
	Settings  map[string]interface{} `mapstructure:"settings"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()
	cfg := &Config{
		Classifier: ClassifierConfig{DegradeOnUpstreamError: true},
	}
	v.SetDefault("classifier.degrade_on_upstream_error", true)
	for _, key := range secretKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}
	if err := loadConfigFile(v, configPath, "config", cfg); err != nil {
		return nil, fmt.Errorf("could not load main config file: %w", err)
	}
	SetDefaultValues(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string, out interface{}) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func SetDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if len(cfg.Server.AllowOrigins) == 0 {
		cfg.Server.AllowOrigins = []string{"*"}
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Classifier.Provider == "" {
		cfg.Classifier.Provider = ProviderOpenAI
	}
	if cfg.Classifier.Model == "" && cfg.Classifier.Provider == ProviderOpenAI {
		cfg.Classifier.Model = "google/gemini-3-flash-preview"
	}
	if len(cfg.Crisis.Keywords) == 0 {
		cfg.Crisis.Keywords = append([]string(nil), DefaultCrisisKeywords...)
	}
	if cfg.Crisis.Message == "" {
		cfg.Crisis.Message = DefaultCrisisMessage
	}
	if cfg.Emergency.Region == "" {
		cfg.Emergency.Region = "IN"
	}
	if cfg.Emergency.EmergencyNumber == "" {
		cfg.Emergency.EmergencyNumber = "112"
	}
	if cfg.Emergency.HelplineNumber == "" {
		cfg.Emergency.HelplineNumber = "9152987821"
	}
	if cfg.Emergency.PsychiatristURL == "" {
		cfg.Emergency.PsychiatristURL = "https://www.practo.com/"
	}
	if cfg.Detection.GatewayURL == "" {
		cfg.Detection.GatewayURL = fmt.Sprintf("http://127.0.0.1:%d/functions/v1/analyze-emotion", cfg.Server.Port)
	}
	if cfg.Detection.BreakerMaxFailures == 0 {
		cfg.Detection.BreakerMaxFailures = 5
	}
	if cfg.Detection.BreakerTimeout == 0 {
		cfg.Detection.BreakerTimeout = 30 * time.Second
	}
	if cfg.Detection.LockTTL == 0 {
		cfg.Detection.LockTTL = 2 * time.Minute
	}
	if cfg.Detection.DraftTTL == 0 {
		cfg.Detection.DraftTTL = 24 * time.Hour
	}
}

func (c *Config) Validate() error {
	switch c.Classifier.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		if c.Classifier.APIKey == "" {
			return fmt.Errorf("classifier.api_key is required for provider %s", c.Classifier.Provider)
		}
	case ProviderAzure:
		if c.Classifier.Azure.Endpoint == "" {
			return errors.New("classifier.azure.endpoint is required for provider azure")
		}
		if c.Classifier.APIKey == "" && !c.Classifier.Azure.UseIdentity {
			return errors.New("classifier.api_key or classifier.azure.use_identity is required for provider azure")
		}
	case ProviderBedrock:
		if c.Classifier.Bedrock.Region == "" {
			return errors.New("classifier.bedrock.region is required for provider bedrock")
		}
		if (c.Classifier.Bedrock.AccessKey == "") != (c.Classifier.Bedrock.SecretKey == "") {
			return errors.New("classifier.bedrock.access_key and secret_key must be set together")
		}
	default:
		return fmt.Errorf("unsupported classifier provider: %s", c.Classifier.Provider)
	}
	return nil
}
