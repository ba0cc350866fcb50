package config

import (
	"time"

	"github.com/spf13/viper"
)

// FleetConfig represents the runtime configuration
type FleetConfig struct {
	Hostname         string
	Auth             bool
	WebPort          int
	MetricsPort      int
	LogLevel         string
	Debug            bool
	Database         *dbConfig
	BucketName       string
	BucketRegion     string
	AccessKey        string
	SecretKey        string
	AgentTokenSecret string
	AgentTokenTTL    time.Duration
	TaskLeaseTimeout time.Duration
	DownloadURLTTL   time.Duration
	KafkaBrokers     string
	SentryDSN        string
}

type dbConfig struct {
	Type     string
	User     string
	Password string
	Hostname string
	Port     uint
	Name     string
}

var config *FleetConfig

// Init configuration for service
func Init() {
	options := viper.New()
	options.SetDefault("WebPort", 3000)
	options.SetDefault("MetricsPort", 8080)
	options.SetDefault("LogLevel", "INFO")
	options.SetDefault("Auth", false)
	options.SetDefault("Debug", false)
	options.SetDefault("ClientUpdatesBucket", "fleet-client-updates")
	options.SetDefault("BucketRegion", "us-east-1")
	options.SetDefault("AgentTokenSecret", "")
	options.SetDefault("AgentTokenTTLHours", 24*365)
	options.SetDefault("TaskLeaseTimeoutMinutes", 15)
	options.SetDefault("DownloadURLTTLMinutes", 30)
	options.SetDefault("Database", "sqlite")
	options.SetDefault("DatabaseName", "fleet-api.db")
	options.SetDefault("KafkaBrokers", "")
	options.SetDefault("SentryDSN", "")
	options.AutomaticEnv()

	if options.GetBool("Debug") {
		options.Set("LogLevel", "DEBUG")
	}

	kubenv := viper.New()
	kubenv.AutomaticEnv()

	config = &FleetConfig{
		Hostname:         kubenv.GetString("Hostname"),
		Auth:             options.GetBool("Auth"),
		WebPort:          options.GetInt("WebPort"),
		MetricsPort:      options.GetInt("MetricsPort"),
		Debug:            options.GetBool("Debug"),
		LogLevel:         options.GetString("LogLevel"),
		BucketName:       options.GetString("ClientUpdatesBucket"),
		BucketRegion:     options.GetString("BucketRegion"),
		AccessKey:        options.GetString("AccessKey"),
		SecretKey:        options.GetString("SecretKey"),
		AgentTokenSecret: options.GetString("AgentTokenSecret"),
		AgentTokenTTL:    time.Duration(options.GetInt("AgentTokenTTLHours")) * time.Hour,
		TaskLeaseTimeout: time.Duration(options.GetInt("TaskLeaseTimeoutMinutes")) * time.Minute,
		DownloadURLTTL:   time.Duration(options.GetInt("DownloadURLTTLMinutes")) * time.Minute,
		KafkaBrokers:     options.GetString("KafkaBrokers"),
		SentryDSN:        options.GetString("SentryDSN"),
	}

	database := options.GetString("database")

	if database == "pgsql" {
		config.Database = &dbConfig{
			Type:     "pgsql",
			User:     options.GetString("PGSQL_USER"),
			Password: options.GetString("PGSQL_PASSWORD"),
			Hostname: options.GetString("PGSQL_HOSTNAME"),
			Port:     options.GetUint("PGSQL_PORT"),
			Name:     options.GetString("PGSQL_DATABASE"),
		}
	} else {
		config.Database = &dbConfig{
			Type: "sqlite",
			Name: options.GetString("DatabaseName"),
		}
	}
}

// Get returns an initialized FleetConfig
func Get() *FleetConfig {
	return config
}
