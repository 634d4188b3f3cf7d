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

type Config struct {
	Debug    bool
	TestMode bool
	Env      string // DEV (local; default), TEST, QA, PROD
	AppName  string
	Build    string

	SecretKey            []byte
	TokenExpirationDelta time.Duration

	// flat-file storage
	DataDir         string
	CredentialsFile string
	CoursesFile     string
	StudentDataFile string

	RollbarToken string
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Darasa")
	conf.SetDefault("secretKey", "h^$cegm2emy-poq5(wer)enb$+57=dz&uoxh2(h!x)#*c2#yg4")
	conf.SetDefault("tokenExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("dataDir", "data")
	conf.SetDefault("credentialsFile", "credentials.json")
	conf.SetDefault("coursesFile", "courses.json")
	conf.SetDefault("studentDataFile", "student_data.json")
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:                conf.GetBool("debug"),
		TestMode:             env == "TEST",
		Env:                  env,
		AppName:              conf.GetString("appName"),
		Build:                conf.GetString("build"),
		SecretKey:            []byte(conf.GetString("secretKey")),
		TokenExpirationDelta: conf.GetDuration("tokenExpirationDelta"),
		DataDir:              conf.GetString("dataDir"),
		CredentialsFile:      conf.GetString("credentialsFile"),
		CoursesFile:          conf.GetString("coursesFile"),
		StudentDataFile:      conf.GetString("studentDataFile"),
		RollbarToken:         conf.GetString("rollbarToken"),
	}
}

func (c *Config) CredentialsPath() string { return filepath.Join(c.DataDir, c.CredentialsFile) }
func (c *Config) CoursesPath() string     { return filepath.Join(c.DataDir, c.CoursesFile) }
func (c *Config) StudentDataPath() string { return filepath.Join(c.DataDir, c.StudentDataFile) }
