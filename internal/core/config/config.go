package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	PortProbe       int // 端口被占用时向上探测的次数
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type LogFile struct {
	Enable     bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret   string
	Issuer   string
	TTLHours int
}

type DB struct {
	Driver             string
	DSN                string // 直接给 DSN 时优先使用
	Host               string
	Port               int
	User               string
	Password           string
	Name               string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SeedAccount struct {
	Name     string
	Email    string
	Password string
}

// Seed 启动引导账号；密码只从配置/环境注入，代码里没有默认值
type Seed struct {
	Main  SeedAccount
	Admin SeedAccount
}

type Limit struct {
	RPS               int
	Burst             int
	MaxConcurrent     int
	MaxBodyMB         int
	RequestTimeoutSec int
	LoginAttempts     int
	LoginWindowSec    int
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Seed  Seed
	Limit Limit
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// 配置文件可选：没有文件时纯靠环境变量 + 默认值
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Printf("read config %s: %v (falling back to env)", path, err)
			}
		}
	}

	// 兼容裸 PORT（部署平台常用）
	_ = v.BindEnv("app.http.port", "APP_APP_HTTP_PORT", "PORT")
	_ = v.BindEnv("jwt.secret", "APP_JWT_SECRET", "JWT_SECRET")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "store-console")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.portprobe", 20)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.path", "logs/app.log")
	v.SetDefault("log.file.maxsizemb", 64)
	v.SetDefault("log.file.maxbackups", 5)
	v.SetDefault("log.file.maxagedays", 14)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("jwt.issuer", "store-console")
	v.SetDefault("jwt.ttlhours", 24)

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.name", "store_console")
	v.SetDefault("db.maxopenconns", 50)
	v.SetDefault("db.maxidleconns", 10)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("limit.rps", 200)
	v.SetDefault("limit.burst", 400)
	v.SetDefault("limit.maxconcurrent", 300)
	v.SetDefault("limit.maxbodymb", 16)
	v.SetDefault("limit.requesttimeoutsec", 30)
	v.SetDefault("limit.loginattempts", 10)
	v.SetDefault("limit.loginwindowsec", 60)
}
