package config

type TelegramConfig struct {
	Token            string `env:"BOT_TOKEN"`
	APIEndpoint      string `env:"API_ENDPOINT" envDefault:"https://api.telegram.org/bot%s/%s"`
	MessagePerSecond int    `env:"MESSAGE_PER_SECOND" envDefault:"-1"`
	GlobalRateLimit  int    `env:"GLOBAL_RATE_LIMIT" envDefault:"25"`
	RequestRetries   int    `env:"REQUEST_RETRIES" envDefault:"3"`
	RetryWaitMs      int    `env:"RETRY_WAIT_MS" envDefault:"500"`
	Debug            bool   `env:"BOT_DEBUG" envDefault:"false"`
}

type StorageConfig struct {
	RedisAddress      string `env:"REDIS_ADDRESS"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	BotInstancePrefix string `env:"BOT_INSTANCE_PREFIX" envDefault:"keyboard"`
	CacheNumCounters  int64  `env:"CACHE_NUM_COUNTERS" envDefault:"10000"`
	CacheMaxCost      int64  `env:"CACHE_MAX_COST" envDefault:"1000"`
}

type Config struct {
	Telegram             TelegramConfig `envPrefix:"TELEGRAM_"`
	Storage              StorageConfig  `envPrefix:"STORAGE_"`
	LocalizationFilePath string         `env:"LOCALIZATION_FILE_PATH"`
	LogLevel             string         `env:"LOG_LEVEL" envDefault:"info"`
}

// UseRedis reports whether keyboards should be kept in Redis rather than
// in the process cache.
func (s StorageConfig) UseRedis() bool {
	return s.RedisAddress != ""
}
