package config

import (
	"time"

	pkgconfig "github.com/yeabnoah/nerdspace/social-graph-service/pkg/config"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/pubsub"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/storage"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Graph      GraphConfig
	Auth       AuthConfig
	Publisher  pubsub.Config
	Kafka      KafkaConfig
	Reconciler ReconcilerConfig
	Storage    storage.Config
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Driver            string `mapstructure:"driver"`
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	SSLMode           string
	FilePath          string        `mapstructure:"file_path"`
	MaxIdleConns      int           `mapstructure:"max_idle_conns"`
	MaxOpenConns      int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime   int           `mapstructure:"conn_max_lifetime"`
	StoreTimeout      time.Duration `mapstructure:"store_timeout"`
	MigrateReadModels bool          `mapstructure:"migrate_read_models"`
}

// GraphConfig bounds the read paths.
type GraphConfig struct {
	DefaultPageSize   int `mapstructure:"default_page_size"`
	MaxPageSize       int `mapstructure:"max_page_size"`
	RecommendPageSize int `mapstructure:"recommend_page_size"`
}

// AuthConfig holds the identity provider's token verification settings.
type AuthConfig struct {
	JWTPublicKey     string `mapstructure:"jwt_public_key"`
	JWTPublicKeyFile string `mapstructure:"jwt_public_key_file"`
	Issuer           string `mapstructure:"issuer"`
}

// KafkaConfig configures the users CDC consumer.
type KafkaConfig struct {
	Brokers    string `mapstructure:"brokers"`
	UsersTopic string `mapstructure:"users_topic"`
	GroupID    string `mapstructure:"group_id"`
}

type ReconcilerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8095)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.file_path", "./data/social-graph.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.store_timeout", "3s")
	v.SetDefault("database.migrate_read_models", false)
	v.SetDefault("graph.default_page_size", 10)
	v.SetDefault("graph.max_page_size", 100)
	v.SetDefault("graph.recommend_page_size", 12)
	v.SetDefault("auth.jwt_public_key", "")
	v.SetDefault("auth.jwt_public_key_file", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("publisher.driver", "none")
	v.SetDefault("publisher.redis.address", "localhost:6379")
	v.SetDefault("publisher.redis.password", "")
	v.SetDefault("publisher.redis.db", 0)
	v.SetDefault("publisher.redis.pool_size", 10)
	v.SetDefault("publisher.redis.read_timeout", "3s")
	v.SetDefault("publisher.redis.write_timeout", "3s")
	v.SetDefault("publisher.kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.users_topic", "dbserver1.public.users")
	v.SetDefault("kafka.group_id", "social-graph-service")
	v.SetDefault("reconciler.interval", "10m")
	v.SetDefault("storage.driver", "none")
	v.SetDefault("storage.presign_ttl", "1h")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.access_key_id", "")
	v.SetDefault("storage.s3.secret_access_key", "")
	v.SetDefault("storage.s3.use_path_style", true)
	v.SetDefault("storage.s3.public_url", "")
	v.SetDefault("storage.local.base_url", "")
	v.SetDefault("log.level", "info")

	// Bind environment variables
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")
	v.BindEnv("database.sslmode", "DB_SSLMODE")
	v.BindEnv("database.file_path", "DB_FILE_PATH")
	v.BindEnv("database.max_idle_conns", "DB_MAX_IDLE_CONNS")
	v.BindEnv("database.max_open_conns", "DB_MAX_OPEN_CONNS")
	v.BindEnv("database.conn_max_lifetime", "DB_CONN_MAX_LIFETIME")
	v.BindEnv("database.store_timeout", "DB_STORE_TIMEOUT")
	v.BindEnv("database.migrate_read_models", "DB_MIGRATE_READ_MODELS")
	v.BindEnv("graph.default_page_size", "GRAPH_DEFAULT_PAGE_SIZE")
	v.BindEnv("graph.max_page_size", "GRAPH_MAX_PAGE_SIZE")
	v.BindEnv("graph.recommend_page_size", "GRAPH_RECOMMEND_PAGE_SIZE")
	v.BindEnv("auth.jwt_public_key", "JWT_PUBLIC_KEY")
	v.BindEnv("auth.jwt_public_key_file", "JWT_PUBLIC_KEY_FILE")
	v.BindEnv("auth.issuer", "JWT_ISSUER")
	v.BindEnv("publisher.driver", "PUBLISHER_DRIVER")
	v.BindEnv("publisher.redis.address", "REDIS_ADDRESS")
	v.BindEnv("publisher.redis.password", "REDIS_PASSWORD")
	v.BindEnv("publisher.redis.db", "REDIS_DB")
	v.BindEnv("publisher.kafka.brokers", "PUBLISHER_KAFKA_BROKERS")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.users_topic", "KAFKA_USERS_TOPIC")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("reconciler.interval", "RECONCILER_INTERVAL")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.presign_ttl", "STORAGE_PRESIGN_TTL")
	v.BindEnv("storage.s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("storage.s3.region", "S3_REGION")
	v.BindEnv("storage.s3.bucket", "S3_BUCKET")
	v.BindEnv("storage.s3.access_key_id", "S3_ACCESS_KEY_ID")
	v.BindEnv("storage.s3.secret_access_key", "S3_SECRET_ACCESS_KEY")
	v.BindEnv("storage.s3.public_url", "S3_PUBLIC_URL")
	v.BindEnv("storage.local.base_url", "STORAGE_LOCAL_BASE_URL")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
