package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyMetrics   = key("metrics")
	KeyRequestID = key("request_id")
)

const (
	SessionBackendDynamo   = "dynamodb"
	SessionBackendPostgres = "postgres"
	SessionBackendMemory   = "memory"
)

type Config struct {
	Service       Service
	Logger        Logger
	Metrics       Metrics
	Platform      Platform
	Assets        Assets
	AWS           AWS
	Capture       Capture
	LiveConnector LiveConnector
	Sessions      Sessions
	Postgres      Postgres
	LMS           LMS
	Reaper        Reaper
	Debug         bool `env:"DEBUG" env-default:"false"`
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"meeting-service"`
	Host string `env:"SERVICE_HOST" env-default:"127.0.0.1"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Assets struct {
	App string `env:"APP" env-default:"meetingV2"`
	Dir string `env:"ASSETS_DIR" env-default:"dist"`
}

type AWS struct {
	Region                 string `env:"REGION" env-default:"us-east-1"`
	MeetingsEndpoint       string `env:"ENDPOINT"`
	MediaPipelinesRegion   string `env:"CHIME_SDK_MEDIA_PIPELINES_REGION" env-default:"us-east-1"`
	MediaPipelinesEndpoint string `env:"CHIME_SDK_MEDIA_PIPELINES_ENDPOINT" env-default:"https://media-pipelines-chime.us-east-1.amazonaws.com"`
	DynamoRegion           string `env:"DYNAMODB_REGION" env-default:"us-east-1"`
}

type Capture struct {
	S3Destination string `env:"CAPTURE_S3_DESTINATION"`
}

func (c Capture) Enabled() bool {
	return c.S3Destination != ""
}

type LiveConnector struct {
	IVSEndpoint string `env:"IVS_ENDPOINT"`
}

func (l LiveConnector) Enabled() bool {
	return l.IVSEndpoint != ""
}

type Sessions struct {
	Backend   string        `env:"SESSION_BACKEND" env-default:"dynamodb"`
	Table     string        `env:"SESSION_TABLE" env-default:"recorder-demo-stack-Meetings-E07BQC85E26Y"`
	TTL       time.Duration `env:"SESSION_TTL" env-default:"24h"`
	ListLimit int           `env:"MEETINGS_LIST_LIMIT" env-default:"100"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type LMS struct {
	VerifyURL string        `env:"LMS_VERIFY_URL"`
	JWTSecret string        `env:"LMS_JWT_SECRET"`
	Timeout   time.Duration `env:"LMS_TIMEOUT" env-default:"5s"`
}

func (l LMS) Enabled() bool {
	return l.VerifyURL != ""
}

type Reaper struct {
	Interval time.Duration `env:"REAPER_INTERVAL" env-default:"10m"`
}

// Addr is the host:port the HTTP listener binds to.
func (s Service) Addr() string {
	return s.Host + ":" + s.Port
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("can not read env variables: %s", err)
	}

	return cfg
}
