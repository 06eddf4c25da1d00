package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_FILE       = "config.yml"
	LOCAL_CONFIG_FILE = "config.local.yml"
)

type DBConfig struct {
	Host       string `yaml:"host" envconfig:"DB_HOST"`
	Port       int    `yaml:"port" envconfig:"DB_PORT"`
	Database   string `yaml:"database" envconfig:"DB_DATABASE"`
	Username   string `yaml:"username" envconfig:"DB_USERNAME"`
	Password   string `yaml:"password" envconfig:"DB_PASSWORD"`
	LogQueries bool   `yaml:"log_queries"`
}

type LoggerConfig struct {
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`
}

type ChainConfig struct {
	RPCURL      string `yaml:"rpc_url" envconfig:"CHAIN_RPC_URL"`
	PayerSecret string `yaml:"payer_secret" envconfig:"CHAIN_PAYER_SECRET"`
}

func ParseConfigFile(cfg interface{}, fileName string, allowMissing bool) error {
	f, err := os.Open(fileName)
	if err != nil {
		if allowMissing && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}

func ReadEnv(cfg interface{}) error {
	err := envconfig.Process("", cfg)
	if err != nil {
		return fmt.Errorf("error reading env config: %w", err)
	}
	return nil
}
