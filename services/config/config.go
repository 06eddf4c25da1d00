package config

import (
	globalConfig "fundrr-backend/config"
)

type Config struct {
	DB        globalConfig.DBConfig     `yaml:"db"`
	Logger    globalConfig.LoggerConfig `yaml:"logger"`
	Chain     globalConfig.ChainConfig  `yaml:"chain"`
	Services  ServicesConfig            `yaml:"services"`
	Metrics   MetricsConfig             `yaml:"metrics"`
	Campaigns CampaignConfig            `yaml:"campaigns"`
	PriceFeed PriceFeedConfig           `yaml:"price_feed"`
}

type ServicesConfig struct {
	Address string `yaml:"address" envconfig:"SERVICES_ADDRESS"`
}

type MetricsConfig struct {
	PrometheusAddress string `yaml:"prometheus_address" envconfig:"METRICS_PROMETHEUS_ADDRESS"`
}

type CampaignConfig struct {
	FeeCollector            string `yaml:"fee_collector" envconfig:"CAMPAIGNS_FEE_COLLECTOR"`
	EscrowWallet            string `yaml:"escrow_wallet" envconfig:"CAMPAIGNS_ESCROW_WALLET"`
	CreationFeeLamports     uint64 `yaml:"creation_fee_lamports"`
	WithdrawalFeeLamports   uint64 `yaml:"withdrawal_fee_lamports"`
	ContributionCapLamports uint64 `yaml:"contribution_cap_lamports"`
	CacheTTLSeconds         int    `yaml:"cache_ttl_seconds"`
}

type PriceFeedConfig struct {
	Enabled         bool   `yaml:"enabled"`
	URL             string `yaml:"url" envconfig:"PRICE_FEED_URL"`
	IntervalSeconds int    `yaml:"interval_seconds"`
}

func newConfig() *Config {
	return &Config{
		Services: ServicesConfig{
			Address: "localhost:8000",
		},
		Campaigns: CampaignConfig{
			CreationFeeLamports:     100_000,
			WithdrawalFeeLamports:   100_000,
			ContributionCapLamports: 1_000_000,
			CacheTTLSeconds:         60,
		},
		PriceFeed: PriceFeedConfig{
			Enabled:         true,
			URL:             "https://api.coingecko.com/api/v3/simple/price?ids=solana&vs_currencies=usd",
			IntervalSeconds: 60,
		},
	}
}

func BuildConfig() (*Config, error) {
	cfg := newConfig()
	err := globalConfig.ParseConfigFile(cfg, globalConfig.CONFIG_FILE, false)
	if err != nil {
		return nil, err
	}
	err = globalConfig.ParseConfigFile(cfg, globalConfig.LOCAL_CONFIG_FILE, true)
	if err != nil {
		return nil, err
	}
	err = globalConfig.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
