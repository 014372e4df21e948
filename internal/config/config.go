package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var ErrInvalidRiskThresholds = errors.New("risk thresholds must be non-negative and increasing")
var ErrInvalidDeviceLimit = errors.New("device limits must be positive")

type Config struct {
	ServiceName string       `env:"SERVICE_NAME" envDefault:"attendance-guard"`
	Server      ServerConfig `envPrefix:"SERVER_"`
	DB          DBConfig     `envPrefix:"POSTGRES_"`
	Redis       RedisConfig  `envPrefix:"REDIS_"`
	S3          S3Config     `envPrefix:"MINIO_"`
	Email       EmailConfig  `envPrefix:"EMAIL_"`
	Auth        AuthConfig   `envPrefix:"AUTH_"`
	Jaeger      JaegerConfig `envPrefix:"JAEGER_"`
	Risk        RiskConfig   `envPrefix:"RISK_"`
	Notify      NotifyConfig `envPrefix:"NOTIFY_"`
}

type ServerConfig struct {
	Mode   string `env:"MODE"   envDefault:"dev"`
	Port   int    `env:"PORT"   envDefault:"8080"`
	Scheme string `env:"SCHEME" envDefault:"http"`
	Domain string `env:"DOMAIN" envDefault:"localhost"`
	// TrustProxy takes the client IP from X-Forwarded-For/X-Real-IP. Enable it
	// only behind a proxy that overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DB"       envDefault:"attendance"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
}

type S3Config struct {
	Endpoint  string `env:"ENDPOINT"      envDefault:"localhost:9000"`
	AccessKey string `env:"ROOT_USER"`
	SecretKey string `env:"ROOT_PASSWORD"`
	Bucket    string `env:"BUCKET"        envDefault:"security-incidents"`
	UseSSL    bool   `env:"USE_SSL"       envDefault:"false"`
}

type EmailConfig struct {
	Server string `env:"SERVER"`
	Port   int    `env:"PORT"  envDefault:"587"`
	User   string `env:"USER"`
	Pass   string `env:"PASS"`
	Admin  string `env:"ADMIN"`
}

type AuthConfig struct {
	JWT JWTConfig `envPrefix:"JWT_"`
}

type JWTConfig struct {
	Secret string `env:"SECRET,required"`
	Issuer string `env:"ISSUER" envDefault:"attendance-guard"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `env:"TYPE"  envDefault:"const"`
		Param float64 `env:"PARAM" envDefault:"1"`
	} `envPrefix:"SAMPLER_"`
	Reporter struct {
		LogSpans           bool   `env:"LOG_SPANS"             envDefault:"false"`
		LocalAgentHostPort string `env:"LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
	} `envPrefix:"REPORTER_"`
}

// RiskConfig holds every tunable of device risk scoring. It is read once at
// startup and passed by value, so it is never mutated after construction.
type RiskConfig struct {
	LowThreshold      int `env:"LOW_THRESHOLD"      envDefault:"0"`
	MediumThreshold   int `env:"MEDIUM_THRESHOLD"   envDefault:"30"`
	HighThreshold     int `env:"HIGH_THRESHOLD"     envDefault:"60"`
	CriticalThreshold int `env:"CRITICAL_THRESHOLD" envDefault:"80"`

	DeviceCountLimit  int `env:"DEVICE_COUNT_LIMIT"  envDefault:"3"`
	DeviceCountWeight int `env:"DEVICE_COUNT_WEIGHT" envDefault:"20"`

	UnusualHourStart   int `env:"UNUSUAL_HOUR_START"   envDefault:"0"`
	UnusualHourEnd     int `env:"UNUSUAL_HOUR_END"     envDefault:"5"`
	UnusualHoursWeight int `env:"UNUSUAL_HOURS_WEIGHT" envDefault:"25"`

	LocationRadiusKm   float64 `env:"LOCATION_RADIUS_KM"   envDefault:"50"`
	LocationFarKm      float64 `env:"LOCATION_FAR_KM"      envDefault:"100"`
	LocationHistory    int     `env:"LOCATION_HISTORY"     envDefault:"5"`
	LocationSeverityPt int     `env:"LOCATION_SEVERITY_PT" envDefault:"15"`

	MaxDevices int `env:"MAX_DEVICES" envDefault:"3"`
}

type NotifyConfig struct {
	Workers    int           `env:"WORKERS"     envDefault:"2"`
	QueueSize  int           `env:"QUEUE_SIZE"  envDefault:"100"`
	Delay      time.Duration `env:"DELAY"       envDefault:"1s"`
	MaxRetries int           `env:"MAX_RETRIES" envDefault:"3"`
	Backoff    time.Duration `env:"BACKOFF"     envDefault:"2s"`
	Timeout    time.Duration `env:"TIMEOUT"     envDefault:"10s"`
}

// DefaultRiskConfig returns the thresholds and weights used when nothing is
// configured.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		LowThreshold:       0,
		MediumThreshold:    30,
		HighThreshold:      60,
		CriticalThreshold:  80,
		DeviceCountLimit:   3,
		DeviceCountWeight:  20,
		UnusualHourStart:   0,
		UnusualHourEnd:     5,
		UnusualHoursWeight: 25,
		LocationRadiusKm:   50,
		LocationFarKm:      100,
		LocationHistory:    5,
		LocationSeverityPt: 15,
		MaxDevices:         3,
	}
}

func (c RiskConfig) Validate() error {
	if c.LowThreshold < 0 ||
		c.LowThreshold > c.MediumThreshold ||
		c.MediumThreshold > c.HighThreshold ||
		c.HighThreshold > c.CriticalThreshold {
		return ErrInvalidRiskThresholds
	}

	if c.MaxDevices <= 0 || c.DeviceCountLimit <= 0 || c.LocationHistory <= 0 {
		return ErrInvalidDeviceLimit
	}
	return nil
}

func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil {
		zap.L().Info("env file is not loaded, using environment", zap.String("path", path), zap.Error(err))
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		panic(err)
	}

	if err := conf.Risk.Validate(); err != nil {
		panic(err)
	}

	zap.L().Info("Config loaded", zap.String("service", conf.ServiceName))
	return conf
}
