package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-fragment/internal/domain"
)

const SERVICE_NAME = "fragment-session"

type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

type URIConfig struct {
	IPFSGateways []string `mapstructure:"ipfs_gateways"`
}

type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins for CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// WriteRPS and WriteBurst bound mint, burn and withdraw requests
	WriteRPS   float64 `mapstructure:"write_rps"`
	WriteBurst int     `mapstructure:"write_burst"`
}

type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// NetworkConfig describes one deployment of the collection contract
type NetworkConfig struct {
	ChainID         string `mapstructure:"chain_id"`
	Name            string `mapstructure:"name"`
	ContractAddress string `mapstructure:"contract_address"`
	DisplayOffset   int64  `mapstructure:"display_offset"`
	RPCURL          string `mapstructure:"rpc_url"`
}

type NetworksConfig struct {
	Primary NetworkConfig `mapstructure:"primary"`
	Test    NetworkConfig `mapstructure:"test"`
}

type ContractConfig struct {
	// FixedAddress pins a single deployment regardless of the wallet's chain
	FixedAddress string `mapstructure:"fixed_address"`
	// DeployBlock bounds the issuance event scan used when no counter is exposed
	DeployBlock uint64 `mapstructure:"deploy_block"`
	MetadataRef string `mapstructure:"metadata_ref"`
}

type MediaConfig struct {
	DefaultImageIPFS string `mapstructure:"default_image_ipfs"`
	HeroVideoIPFS    string `mapstructure:"hero_video_ipfs"`
}

type WalletConfig struct {
	PrivateKey     string        `mapstructure:"private_key"`
	InitialChainID string        `mapstructure:"initial_chain_id"`
	DialTimeout    time.Duration `mapstructure:"dial_timeout"`
}

type RefreshConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
	PoolSize int           `mapstructure:"pool_size"`
	RPS      float64       `mapstructure:"rps"`
	Burst    int           `mapstructure:"burst"`

	// MaxHoldings is the largest balance the owned-set enumeration accepts
	MaxHoldings int64 `mapstructure:"max_holdings"`
}

type PresenterConfig struct {
	ReadyAttempts int           `mapstructure:"ready_attempts"`
	ReadyInterval time.Duration `mapstructure:"ready_interval"`
	ReadyTTL      time.Duration `mapstructure:"ready_ttl"`
	FeedSize      int           `mapstructure:"feed_size"`
}

type SessionConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig    `mapstructure:"server"`
	Auth        AuthConfig      `mapstructure:"auth"`
	NATS        NATSConfig      `mapstructure:"nats"`
	URI         URIConfig       `mapstructure:"uri"`
	Networks    NetworksConfig  `mapstructure:"networks"`
	Contract    ContractConfig  `mapstructure:"contract"`
	Media       MediaConfig     `mapstructure:"media"`
	Wallet      WalletConfig    `mapstructure:"wallet"`
	Refresh     RefreshConfig   `mapstructure:"refresh"`
	Presenter   PresenterConfig `mapstructure:"presenter"`
	HTTPTimeout time.Duration   `mapstructure:"http_timeout"`
}

// LoadSessionConfig loads configuration for the fragment session service
func LoadSessionConfig(configFile string, envPath string) (*SessionConfig, error) {
	v := configureViper(SERVICE_NAME, configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.write_rps", 1)
	v.SetDefault("server.write_burst", 5)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "FRAGMENT_EVENTS")
	v.SetDefault("nats.connection_name", SERVICE_NAME)
	v.SetDefault("uri.ipfs_gateways", []string{"https://ipfs.io", "https://cloudflare-ipfs.com", "https://gateway.pinata.cloud"})
	v.SetDefault("networks.primary.chain_id", string(domain.ChainIDPrimary))
	v.SetDefault("networks.primary.name", "Ethereum")
	v.SetDefault("networks.test.chain_id", string(domain.ChainIDTest))
	v.SetDefault("networks.test.name", "Sepolia")
	v.SetDefault("contract.deploy_block", 0)
	v.SetDefault("contract.metadata_ref", domain.DEFAULT_METADATA_REF)
	v.SetDefault("wallet.initial_chain_id", string(domain.ChainIDTest))
	v.SetDefault("wallet.dial_timeout", "10s")
	v.SetDefault("refresh.interval", "15s")
	v.SetDefault("refresh.timeout", "30s")
	v.SetDefault("refresh.pool_size", 8)
	v.SetDefault("refresh.rps", 10)
	v.SetDefault("refresh.burst", 5)
	v.SetDefault("refresh.max_holdings", 10_000)
	v.SetDefault("presenter.ready_attempts", 10)
	v.SetDefault("presenter.ready_interval", "300ms")
	v.SetDefault("presenter.ready_ttl", "30s")
	v.SetDefault("presenter.feed_size", 100)
	v.SetDefault("http_timeout", "10s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg SessionConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the session cannot run with.
// Empty contract addresses are allowed; actions fail with ErrNoContractConfigured instead.
func (c *SessionConfig) Validate() error {
	if c.Contract.FixedAddress != "" && !common.IsHexAddress(c.Contract.FixedAddress) {
		return fmt.Errorf("contract.fixed_address is not a valid address: %s", c.Contract.FixedAddress)
	}
	for name, n := range map[string]NetworkConfig{"primary": c.Networks.Primary, "test": c.Networks.Test} {
		if n.ContractAddress != "" && !common.IsHexAddress(n.ContractAddress) {
			return fmt.Errorf("networks.%s.contract_address is not a valid address: %s", name, n.ContractAddress)
		}
		if n.ChainID == "" {
			return fmt.Errorf("networks.%s.chain_id is required", name)
		}
	}
	if c.Refresh.Interval <= 0 {
		return errors.New("refresh.interval must be positive")
	}
	if c.Presenter.ReadyAttempts <= 0 {
		return errors.New("presenter.ready_attempts must be positive")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_FRAGMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"http_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		"server.write_rps",
		"server.write_burst",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// URI
		"uri.ipfs_gateways",
		// Contract
		"contract.fixed_address",
		"contract.deploy_block",
		"contract.metadata_ref",
		// Media
		"media.default_image_ipfs",
		"media.hero_video_ipfs",
		// Wallet
		"wallet.private_key",
		"wallet.initial_chain_id",
		"wallet.dial_timeout",
		// Refresh
		"refresh.interval",
		"refresh.timeout",
		"refresh.pool_size",
		"refresh.rps",
		"refresh.burst",
		"refresh.max_holdings",
		// Presenter
		"presenter.ready_attempts",
		"presenter.ready_interval",
		"presenter.ready_ttl",
		"presenter.feed_size",
	}
	for _, network := range []string{"primary", "test"} {
		for _, field := range []string{"chain_id", "name", "contract_address", "display_offset", "rpc_url"} {
			keys = append(keys, fmt.Sprintf("networks.%s.%s", network, field))
		}
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
