// Package config loads configuration with Viper from a config.yml file, an
// optional .env file and the process environment.
//
// Files are searched in ./cmd/<service>/, ./config/ and the working
// directory. Environment variables override file values: LOGGING_LEVEL sets
// logging.level and OUTPUT_PAGE_SIZE sets output.page_size.
//
// # Usage
//
//	cfg, err := config.Load("streams")
//
// Services with their own settings embed ServiceConfig and call LoadConfig:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Extra string `yaml:"extra" mapstructure:"extra"`
//	}
//	err := config.LoadConfig("my-svc", &cfg)
package config
