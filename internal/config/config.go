package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Source     SourceConfig     `yaml:"source"`
	Proxy      ProxyConfig      `yaml:"proxy"`
	Scrape     ScrapeConfig     `yaml:"scrape"`
	Sentiment  SentimentConfig  `yaml:"sentiment"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Stats      StatsConfig      `yaml:"stats"`
	Cache      CacheConfig      `yaml:"cache"`
	Redis      RedisConfig      `yaml:"redis"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	LogLevel   string           `yaml:"log_level"`
}

// RabbitMQConfig leaves URL empty to disable event publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"dbname"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type SourceConfig struct {
	ID       string `yaml:"id"`
	BaseURL  string `yaml:"base_url"`
	Timezone string `yaml:"timezone"`
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (s SourceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type ProxyConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Count    int    `yaml:"count"`
}

type ScrapeConfig struct {
	ArticleLimit    int           `yaml:"article_limit"`
	PageCount       int           `yaml:"page_count"`
	PageDelay       time.Duration `yaml:"page_delay"`
	ArticleDelayMin time.Duration `yaml:"article_delay_min"`
	ArticleDelayMax time.Duration `yaml:"article_delay_max"`
	MaxBodySize     int64         `yaml:"max_body_size"`
	Timeout         time.Duration `yaml:"timeout"`
	UserAgent       string        `yaml:"user_agent"`
}

type SentimentConfig struct {
	BatchSize  int           `yaml:"batch_size"`
	MaxBatches int           `yaml:"max_batches"`
	DelayMin   time.Duration `yaml:"delay_min"`
	DelayMax   time.Duration `yaml:"delay_max"`
}

// ClassifierConfig.Mode is "chat" (completion returns a score) or
// "embedding" (score from similarity to anchor headlines).
type ClassifierConfig struct {
	Mode              string        `yaml:"mode"`
	Endpoint          string        `yaml:"endpoint"`
	Model             string        `yaml:"model"`
	EmbeddingEndpoint string        `yaml:"embedding_endpoint"`
	EmbeddingModel    string        `yaml:"embedding_model"`
	APIKey            string        `yaml:"api_key"`
	SystemPrompt      string        `yaml:"system_prompt"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
	Timeout           time.Duration `yaml:"timeout"`
}

type StatsConfig struct {
	PageSize int `yaml:"page_size"`
}

// CacheConfig.Backend is one of "file", "redis" or "none".
type CacheConfig struct {
	Backend string        `yaml:"backend"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

type RedisConfig struct {
	URL string `yaml:"url"`
}

type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval"`
	RunTimeout time.Duration `yaml:"run_timeout"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment references in raw YAML and applies defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "news_analytics"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "articles"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "article_events"
	}
	if c.Source.ID == "" {
		c.Source.ID = "electrek"
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://electrek.co"
	}
	if c.Source.Timezone == "" {
		c.Source.Timezone = "UTC"
	}
	if c.Proxy.Count == 0 {
		c.Proxy.Count = 10
	}
	if c.Scrape.ArticleLimit == 0 {
		c.Scrape.ArticleLimit = 100
	}
	if c.Scrape.PageCount == 0 {
		c.Scrape.PageCount = 5
	}
	if c.Scrape.PageDelay == 0 {
		c.Scrape.PageDelay = 2 * time.Second
	}
	if c.Scrape.ArticleDelayMin == 0 {
		c.Scrape.ArticleDelayMin = 500 * time.Millisecond
	}
	if c.Scrape.ArticleDelayMax == 0 {
		c.Scrape.ArticleDelayMax = 1500 * time.Millisecond
	}
	if c.Scrape.MaxBodySize == 0 {
		c.Scrape.MaxBodySize = 10 << 20
	}
	if c.Scrape.Timeout == 0 {
		c.Scrape.Timeout = 30 * time.Second
	}
	if c.Sentiment.BatchSize == 0 {
		c.Sentiment.BatchSize = 50
	}
	if c.Sentiment.MaxBatches == 0 {
		c.Sentiment.MaxBatches = 10
	}
	if c.Sentiment.DelayMin == 0 {
		c.Sentiment.DelayMin = 500 * time.Millisecond
	}
	if c.Sentiment.DelayMax == 0 {
		c.Sentiment.DelayMax = 1500 * time.Millisecond
	}
	if c.Classifier.Mode == "" {
		c.Classifier.Mode = "chat"
	}
	if c.Classifier.Endpoint == "" {
		c.Classifier.Endpoint = "https://api.openai.com/v1/chat/completions"
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = "gpt-4o-mini"
	}
	if c.Classifier.EmbeddingEndpoint == "" {
		c.Classifier.EmbeddingEndpoint = "https://api.openai.com/v1/embeddings"
	}
	if c.Classifier.EmbeddingModel == "" {
		c.Classifier.EmbeddingModel = "text-embedding-3-large"
	}
	if c.Classifier.RequestsPerMinute == 0 {
		c.Classifier.RequestsPerMinute = 60
	}
	if c.Classifier.Timeout == 0 {
		c.Classifier.Timeout = 30 * time.Second
	}
	if c.Stats.PageSize == 0 {
		c.Stats.PageSize = 1000
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "file"
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = "cache"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * 24 * time.Hour
	}
	if c.Redis.URL == "" {
		c.Redis.URL = "redis://localhost:6379/0"
	}
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 6 * time.Hour
	}
	if c.Schedule.RunTimeout == 0 {
		c.Schedule.RunTimeout = time.Hour
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9090"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
