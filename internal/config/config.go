// Package config loads the application configuration from, in order of
// precedence: environment variables, a .env file in the working directory,
// and a TOML file at ~/.config/mediaship/config.toml.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds everything the flow needs, resolved once at startup.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Folders FoldersConfig `toml:"folders"`
	Notify  NotifyConfig  `toml:"notify"`
	Verbose bool          `toml:"verbose"`
}

// ServerConfig identifies the remote media server and how to reach it.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	User string `toml:"user"`

	// KnownHostsFile and PrivateKeyFile default to the usual ~/.ssh files.
	// Authentication also tries a running ssh-agent before the key file.
	KnownHostsFile string `toml:"known_hosts_file"`
	PrivateKeyFile string `toml:"private_key_file"`
}

// FoldersConfig holds the local and remote folder layout.
type FoldersConfig struct {
	// Base is the local mount point of the server's media share.
	Base string `toml:"base"`
	// Origin is the local folder the selection starts from.
	Origin string `toml:"origin"`
	// Series is the folder listing the series/season tree.
	Series string `toml:"series"`
	// DestinationBase is the absolute media root on the server.
	DestinationBase string `toml:"destination_base"`
}

// NotifyConfig configures the channel announcement collaborators.
type NotifyConfig struct {
	OMDBAPIKey       string `toml:"omdb_api_key"`
	TelegramBotToken string `toml:"telegram_bot_token"`
	TelegramChatID   string `toml:"telegram_chat_id"`
}

// Default returns the configuration before any file or environment override.
func Default() Config {
	home, _ := os.UserHomeDir()

	return Config{
		Server: ServerConfig{
			Port:           22,
			KnownHostsFile: filepath.Join(home, ".ssh", "known_hosts"),
			PrivateKeyFile: filepath.Join(home, ".ssh", "id_ed25519"),
		},
	}
}

// Path returns the location of the TOML config file.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mediaship", "config.toml")
}

// Load resolves the configuration and validates the required fields.
func Load() (Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(Path()); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	// A .env next to the binary is optional, mirroring the usual dotenv setup.
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Server.Host == "":
		return errors.New("server host is required (SERVER_NAME)")
	case c.Server.User == "":
		return errors.New("server user is required (SERVER_USER)")
	case c.Folders.Origin == "":
		return errors.New("origin folder is required (SERVER_ORIGIN_FOLDER)")
	case c.Folders.DestinationBase == "":
		return errors.New("destination base folder is required (SERVER_DESTINATION_BASE_FOLDER)")
	}
	return nil
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.Folders.Base, "LOCAL_BASE_FOLDER")
	setIfPresent(&cfg.Folders.Origin, "SERVER_ORIGIN_FOLDER")
	setIfPresent(&cfg.Folders.Series, "SERVER_SERIES_FOLDER")
	setIfPresent(&cfg.Folders.DestinationBase, "SERVER_DESTINATION_BASE_FOLDER")
	setIfPresent(&cfg.Server.Host, "SERVER_NAME")
	setIfPresent(&cfg.Server.User, "SERVER_USER")
	setIfPresent(&cfg.Server.KnownHostsFile, "SSH_KNOWN_HOSTS_FILE")
	setIfPresent(&cfg.Server.PrivateKeyFile, "SSH_PRIVATE_KEY_FILE")
	setIfPresent(&cfg.Notify.OMDBAPIKey, "OMDB_API_KEY")
	setIfPresent(&cfg.Notify.TelegramBotToken, "TELEGRAM_BOT_TOKEN")
	setIfPresent(&cfg.Notify.TelegramChatID, "TELEGRAM_CHAT_ID")
	if !cfg.Verbose {
		cfg.Verbose = envTruthy("MEDIASHIP_VERBOSE")
	}
}

func setIfPresent(target *string, key string) {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		*target = val
	}
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
