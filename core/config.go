package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		AppName      string
		RollbarToken string
		Server       ServerConfig
	}

	ServerConfig struct {
		Address          string
		Host             string
		DebugHost        string
		ShutdownTimeout  time.Duration
		DisableReqLogs   bool
		CORSAllowOrigins []string
	}
)

// NewConfig loads the app configuration.
// ENV selects the environment (DEV (local; default), TEST, QA, PROD); every key may be overridden
// by an env var prefixed with it, eg. DEV_SERVER_ADDRESS=:9000.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", false)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "EdTech")
	conf.SetDefault("build", "develop")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 10*time.Second)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("server.corsAllowOrigins", []string{"*"})

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
		conf.SetDefault("debug", true)
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:          conf.GetString("server.address"),
			Host:             conf.GetString("server.host"),
			DebugHost:        conf.GetString("server.debugHost"),
			ShutdownTimeout:  conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:   conf.GetBool("server.disableReqLogs"),
			CORSAllowOrigins: conf.GetStringSlice("server.corsAllowOrigins"),
		},
	}
}
