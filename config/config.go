package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/openkb/rag-be/types"
)

type Config struct {
	Port                string              `mapstructure:"port"`
	AIEndpoint          string              `mapstructure:"ai_endpoint"`
	Model               string              `mapstructure:"model"`
	OpenAIAPIKey        string              `mapstructure:"OPENAI_API_KEY"`
	MongoURI            string              `mapstructure:"MONGODB_URI"`
	TempDir             string              `mapstructure:"temp_dir"`
	ChunkSize           int                 `mapstructure:"chunk_size"`
	ChunkOverlap        int                 `mapstructure:"chunk_overlap"`
	TopK                int                 `mapstructure:"top_k"`
	EvalTopK            int                 `mapstructure:"eval_top_k"`
	FetchTimeoutSec     int                 `mapstructure:"fetch_timeout_sec"`
	GenerateTimeoutSec  int                 `mapstructure:"generate_timeout_sec"`
	Documents           map[string]string   `mapstructure:"documents"`
	EvalPairs           []types.QAPair      `mapstructure:"eval_pairs"`
	WeaviateStoreConfig WeaviateStoreConfig `mapstructure:"weaviate_store_config"`
}

type WeaviateStoreConfig struct {
	Host         string       `mapstructure:"host"`
	APIKey       string       `mapstructure:"WEAVIATE_APIKEY"`
	Text2Vec     string       `mapstructure:"text2vec"`
	ModuleConfig ModuleConfig `mapstructure:"module_config"`
}

type ModuleConfig map[string]interface{}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

func (c *Config) GenerateTimeout() time.Duration {
	return time.Duration(c.GenerateTimeoutSec) * time.Second
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("MONGODB_URI")
	v.BindEnv("WEAVIATE_APIKEY")

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("temp_dir", "data")
	v.SetDefault("chunk_size", 500)
	v.SetDefault("chunk_overlap", 50)
	v.SetDefault("top_k", 5)
	v.SetDefault("eval_top_k", 5)
	v.SetDefault("fetch_timeout_sec", 60)
	v.SetDefault("generate_timeout_sec", 120)
}
