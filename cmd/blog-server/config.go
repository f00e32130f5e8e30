package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	internalhttp "github.com/blogapp/blog-server/internal/api/http"
	"github.com/blogapp/blog-server/internal/auth"
	rediscache "github.com/blogapp/blog-server/internal/cache/redis"
	"github.com/blogapp/blog-server/internal/db"
	"github.com/blogapp/blog-server/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

type Config struct {
	Env      string
	Log      LogConfig
	Http     internalhttp.Config
	JWT      auth.JWTConfig
	Database db.Config
	Redis    rediscache.Config
	Storage  storage.Config
	Admin    AdminConfig
}

// DevAdminPassword is the administrador password shipped in application.yaml
// for local development. It is refused in production.
const DevAdminPassword = "changeme"

var errDevAdminPassword = errors.New("admin.password still holds the development default; set ADMIN_PASSWORD")

// AdminConfig describes the administrador seeded at startup when the email is
// not registered yet.
type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// shouldSeed reports whether the administrador can be seeded in env. An empty
// email or password disables seeding.
func (a AdminConfig) shouldSeed(env string) (bool, error) {
	if a.Email == "" || a.Password == "" {
		return false, nil
	}
	if env == EnvProduction && a.Password == DevAdminPassword {
		return false, errDevAdminPassword
	}
	return true, nil
}

// Redacted hides secrets before the config is printed.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "****"
	}
	c.JWT.Secret = mask(c.JWT.Secret)
	c.Database.Url = mask(c.Database.Url)
	c.Redis.Password = mask(c.Redis.Password)
	c.Storage.MinIO.SecretKey = mask(c.Storage.MinIO.SecretKey)
	c.Admin.Password = mask(c.Admin.Password)
	return c
}

var config Config

func setDefaults() {
	viper.SetDefault("log.level", LOG_LEVEL_INFO)
	viper.SetDefault("log.format", LOG_FORMAT_TEXT)
	viper.SetDefault("http.port", 9090)
	viper.SetDefault("http.max_upload_mb", 5)
	viper.SetDefault("jwt.ttl", auth.DefaultTokenTTL)
	viper.SetDefault("database.schema", "public")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.ttl", rediscache.DefaultTTL)
	viper.SetDefault("storage.driver", storage.DriverLocal)
	viper.SetDefault("storage.local.dir", storage.DefaultLocalDir)
	viper.SetDefault("storage.local.public_path", storage.DefaultLocalPublicPath)
	viper.SetDefault("admin.name", "Administrador")
	viper.SetDefault("admin.email", "admin@blog.local")
}

func bindEnv() {
	_ = viper.BindEnv("env", "APP_ENV", "NODE_ENV")
	_ = viper.BindEnv("http.port", "PORT")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("admin.email", "ADMIN_EMAIL")
	_ = viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	_ = viper.BindEnv("redis.addr", "REDIS_ADDR")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = viper.BindEnv("storage.minio.endpoint", "MINIO_ENDPOINT")
	_ = viper.BindEnv("storage.minio.access_key", "MINIO_ACCESS_KEY")
	_ = viper.BindEnv("storage.minio.secret_key", "MINIO_SECRET_KEY")
	_ = viper.BindEnv("storage.minio.bucket", "MINIO_BUCKET")
}

func InitConfig() {
	_ = godotenv.Load()

	viper.SetConfigName("application")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd/blog-server")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()
	bindEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		panic(err)
	}

	initLogger(config.Log)

	if strings.ToUpper(config.Log.Level) == LOG_LEVEL_DEBUG {
		configJSON, err := json.MarshalIndent(config.Redacted(), "", "  ")
		if err == nil {
			fmt.Println("Config loaded:")
			fmt.Println(string(configJSON))
		}
	}
}
