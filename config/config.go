package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 默认配置文件路径
const DefaultPath = "config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Assistant struct {
		HistoryWarnTurns int `yaml:"history_warn_turns"` // 对话历史超过该轮数时记录告警（不截断）
		SnapshotMaxItems int `yaml:"snapshot_max_items"` // 每类目写入知识库快照的最大条数
	} `yaml:"assistant"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"` // 为空时使用进程内计数
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Catalog struct {
		Source string `yaml:"source"` // memory / mysql
	} `yaml:"catalog"`
	Cache struct {
		Size int `yaml:"size"` // LRU缓存的类目数
	} `yaml:"cache"`
	RateLimit struct {
		PerSecond float64 `yaml:"per_second"` // 每个IP每秒允许的助手请求数
		Burst     int     `yaml:"burst"`
	} `yaml:"rate_limit"`
	Scheduler struct {
		CheckIntervalSec  int `yaml:"check_interval_sec"`  // 调度器检查间隔（秒）
		CatalogRefreshSec int `yaml:"catalog_refresh_sec"` // 类目缓存刷新间隔（秒）
	} `yaml:"scheduler"`
}

func Load() *Config {
	return LoadFrom(DefaultPath)
}

// LoadFrom 从指定路径加载配置，文件不存在时退回到环境变量
func LoadFrom(path string) *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		// 如果config.yaml不存在，则完全从环境变量加载配置
		return loadFromEnv()
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
		return loadFromEnv()
	}
	log.Printf("Loading configuration from %s", path)

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

// applyEnvOverrides 从环境变量中加载敏感信息
func applyEnvOverrides(cfg *Config) {
	if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
		cfg.DB.Username = envUsername
	}
	if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
		cfg.DB.Password = envPassword
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		cfg.Catalog.Source = source
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	// 计算 Server.Addr 字段
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Assistant.HistoryWarnTurns <= 0 {
		cfg.Assistant.HistoryWarnTurns = 40
	}
	if cfg.Assistant.SnapshotMaxItems <= 0 {
		cfg.Assistant.SnapshotMaxItems = 50
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "memory"
	}
	if cfg.Cache.Size <= 0 {
		cfg.Cache.Size = 16
	}
	if cfg.RateLimit.PerSecond <= 0 {
		cfg.RateLimit.PerSecond = 1
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 3
	}
	if cfg.Scheduler.CheckIntervalSec <= 0 {
		cfg.Scheduler.CheckIntervalSec = 60
	}
	if cfg.Scheduler.CatalogRefreshSec <= 0 {
		cfg.Scheduler.CatalogRefreshSec = 300
	}

	// 计算 DB.DSN 字段
	if cfg.DB.DSN == "" && cfg.DB.Host != "" {
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}
}

func loadFromEnv() *Config {
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Gemini.Model = os.Getenv("GEMINI_MODEL")

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}
