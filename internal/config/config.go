package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Upstream   UpstreamConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Printer    PrinterConfig
	Scanner    ScannerConfig
	Receipt    ReceiptConfig
	StatusPoll StatusPollConfig
	QRIS       QRISConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// UpstreamConfig points the terminal at its backend.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
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

// PrinterConfig selects the receipt printer backend.
type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

// ScannerConfig tunes the barcode debounce heuristic.
type ScannerConfig struct {
	Terminator       string
	MaxBufferLength  int
	InterCharTimeout time.Duration
}

// ReceiptConfig holds the printed store header and paper geometry.
type ReceiptConfig struct {
	StoreName  string
	Address    string
	Phone      string
	PaperWidth int
}

type StatusPollConfig struct {
	Interval time.Duration
}

type QRISConfig struct {
	Description string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "smartkasir-kasir")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 50)
	viper.SetDefault("RATE_LIMIT_DURATION", 2)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("SCANNER_TERMINATOR", "\n")
	viper.SetDefault("SCANNER_MAX_BUFFER_LENGTH", 5)
	viper.SetDefault("SCANNER_INTERCHAR_TIMEOUT_MS", 100)
	viper.SetDefault("RECEIPT_STORE_NAME", "SmartKasir")
	viper.SetDefault("RECEIPT_ADDRESS", "")
	viper.SetDefault("RECEIPT_PHONE", "")
	viper.SetDefault("RECEIPT_PAPER_WIDTH", 32)
	viper.SetDefault("STATUS_POLL_SECONDS", 5)
	viper.SetDefault("QRIS_DESCRIPTION", "Pembayaran SmartKasir")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Scanner: ScannerConfig{
			Terminator:       viper.GetString("SCANNER_TERMINATOR"),
			MaxBufferLength:  viper.GetInt("SCANNER_MAX_BUFFER_LENGTH"),
			InterCharTimeout: time.Duration(viper.GetInt("SCANNER_INTERCHAR_TIMEOUT_MS")) * time.Millisecond,
		},
		Receipt: ReceiptConfig{
			StoreName:  viper.GetString("RECEIPT_STORE_NAME"),
			Address:    viper.GetString("RECEIPT_ADDRESS"),
			Phone:      viper.GetString("RECEIPT_PHONE"),
			PaperWidth: viper.GetInt("RECEIPT_PAPER_WIDTH"),
		},
		StatusPoll: StatusPollConfig{
			Interval: time.Duration(viper.GetInt("STATUS_POLL_SECONDS")) * time.Second,
		},
		QRIS: QRISConfig{
			Description: viper.GetString("QRIS_DESCRIPTION"),
		},
	}
}

// ScanTerminator returns the configured terminator as a rune, defaulting
// to newline when unset.
func (c *ScannerConfig) ScanTerminator() rune {
	for _, r := range c.Terminator {
		return r
	}
	return '\n'
}
