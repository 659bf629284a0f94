package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Clean  CleanConfig  `yaml:"clean" mapstructure:"clean"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// InputConfig locates the sales table. Format is "csv" or "xlsx";
// empty means derive it from the file extension.
type InputConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
	Sheet  string `yaml:"sheet" mapstructure:"sheet"`
}

// OutputConfig configures the rendered artifact.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// CleanConfig configures the cleaning stage. Defaults reproduce the
// observed dataset exactly: a 39-year tenure cap and the known raw
// spelling variants of the three sales methods.
type CleanConfig struct {
	MaxTenureYears int               `yaml:"max_tenure_years" mapstructure:"max_tenure_years"`
	Methods        []string          `yaml:"methods" mapstructure:"methods"`
	MethodAliases  map[string]string `yaml:"method_aliases" mapstructure:"method_aliases"`
}

// ServerConfig configures the serve subcommand.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SALES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input.path", "product_sales.csv")
	v.SetDefault("input.format", "")
	v.SetDefault("input.sheet", "")
	v.SetDefault("output.path", "sales_method_dominance_choropleth.html")
	v.SetDefault("clean.max_tenure_years", 39)
	v.SetDefault("clean.methods", model.CanonicalMethods())
	v.SetDefault("clean.method_aliases", map[string]string{
		"Email":        model.MethodEmail,
		"email":        model.MethodEmail,
		"Call":         model.MethodCall,
		"Email + Call": model.MethodEmailCall,
		"em + call":    model.MethodEmailCall,
	})
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks invariants that the pipeline relies on.
func (c *Config) Validate() error {
	var problems []string

	if c.Input.Path == "" {
		problems = append(problems, "input.path is required")
	}
	if c.Output.Path == "" {
		problems = append(problems, "output.path is required")
	}
	if c.Clean.MaxTenureYears <= 0 {
		problems = append(problems, "clean.max_tenure_years must be > 0")
	}
	if len(c.Clean.Methods) == 0 {
		problems = append(problems, "clean.methods must not be empty")
	}
	for raw, canonical := range c.Clean.MethodAliases {
		var known bool
		for _, m := range c.Clean.Methods {
			if canonical == m {
				known = true
				break
			}
		}
		if !known {
			problems = append(problems, "clean.method_aliases maps "+raw+" to non-canonical "+canonical)
		}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be between 1 and 65535")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
