package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Bill      BillConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// StorageConfig selects where the store details are persisted.
// Driver is one of "pebble", "postgres" or "memory".
type StorageConfig struct {
	Driver     string
	PebblePath string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string // usb, network or none
	USBPath string
	Address string
	Width   int
}

// BillConfig holds the bill editor behaviour and the store defaults written
// on first run.
type BillConfig struct {
	DebounceWindow      time.Duration
	DefaultJurisdiction string
	StoreName           string
	StoreAddress        string
	StoreSubtitle       string
	Jurisdiction        string
	DLNumber            string
	GSTNumber           string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	return FromViper(viper.GetViper())
}

// FromViper applies defaults to v and builds a Config from it.
func FromViper(v *viper.Viper) *Config {
	v.SetDefault("APP_NAME", "medbill-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "medbill")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("STORAGE_DRIVER", "pebble")
	v.SetDefault("STORAGE_PEBBLE_PATH", "./storage/pebble")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	v.SetDefault("PRINTER_ADDRESS", "")
	v.SetDefault("PRINTER_WIDTH", 48)
	v.SetDefault("BILL_DEBOUNCE_MS", 300)
	v.SetDefault("BILL_DEFAULT_JURISDICTION", "Bhopal")
	v.SetDefault("STORE_NAME", "MEDICAL STORE")
	v.SetDefault("STORE_ADDRESS", "")
	v.SetDefault("STORE_SUBTITLE", "CHEMISTS & DRUGGISTS")
	v.SetDefault("STORE_JURISDICTION", "BHOPAL")
	v.SetDefault("STORE_DL_NUMBER", "")
	v.SetDefault("STORE_GST_NUMBER", "")

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		Storage: StorageConfig{
			Driver:     v.GetString("STORAGE_DRIVER"),
			PebblePath: v.GetString("STORAGE_PEBBLE_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: v.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    v.GetString("PRINTER_TYPE"),
			USBPath: v.GetString("PRINTER_USB_PATH"),
			Address: v.GetString("PRINTER_ADDRESS"),
			Width:   v.GetInt("PRINTER_WIDTH"),
		},
		Bill: BillConfig{
			DebounceWindow:      time.Duration(v.GetInt("BILL_DEBOUNCE_MS")) * time.Millisecond,
			DefaultJurisdiction: v.GetString("BILL_DEFAULT_JURISDICTION"),
			StoreName:           v.GetString("STORE_NAME"),
			StoreAddress:        v.GetString("STORE_ADDRESS"),
			StoreSubtitle:       v.GetString("STORE_SUBTITLE"),
			Jurisdiction:        v.GetString("STORE_JURISDICTION"),
			DLNumber:            v.GetString("STORE_DL_NUMBER"),
			GSTNumber:           v.GetString("STORE_GST_NUMBER"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
