package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Restaurant RestaurantConfig
	Receipt    ReceiptConfig
	Pipeline   PipelineConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// RestaurantConfig carries the identity and billing defaults stamped
// onto every receipt.
type RestaurantConfig struct {
	Name              string
	Address           string
	Telephone         string
	Waiter            string
	OrderType         string
	PaymentMethod     string
	FooterNote        string
	TaxRate           float64
	ServiceChargeRate float64
	QRBaseURL         string
}

// ReceiptConfig controls layout behavior.
type ReceiptConfig struct {
	// FlowFooter places the QR and footer bands after the payment band
	// instead of at fixed offsets from the page bottom. The fixed
	// placement is the compatible default; it can overlap on very
	// short bills.
	FlowFooter bool
}

// PipelineConfig configures the batch generation run.
type PipelineConfig struct {
	InputPath string
	OutputDir string
	ImagesDir string
	DPI       int
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

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billgen")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("RESTAURANT_NAME", "VERTEX RESTAURANT")
	viper.SetDefault("RESTAURANT_ADDRESS", "Plot 123, Mlimani St, Morogoro")
	viper.SetDefault("RESTAURANT_TEL", "+255 754 123 456")
	viper.SetDefault("RESTAURANT_WAITER", "Jane Doe")
	viper.SetDefault("RESTAURANT_ORDER_TYPE", "Dine-In")
	viper.SetDefault("RESTAURANT_PAYMENT_METHOD", "Mobile Money")
	viper.SetDefault("RESTAURANT_FOOTER_NOTE", "Thank you for dining with us!")
	viper.SetDefault("RESTAURANT_TAX_RATE", 0.18)
	viper.SetDefault("RESTAURANT_SERVICE_CHARGE_RATE", 0.05)
	viper.SetDefault("RESTAURANT_QR_BASE_URL", "https://vertex.co/restaurant_bill")
	viper.SetDefault("RECEIPT_FLOW_FOOTER", false)
	viper.SetDefault("PIPELINE_INPUT_PATH", "./datasets/bills.csv")
	viper.SetDefault("PIPELINE_OUTPUT_DIR", "./outputs")
	viper.SetDefault("PIPELINE_IMAGES_DIR", "./images")
	viper.SetDefault("PIPELINE_DPI", 300)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Restaurant: RestaurantConfig{
			Name:              viper.GetString("RESTAURANT_NAME"),
			Address:           viper.GetString("RESTAURANT_ADDRESS"),
			Telephone:         viper.GetString("RESTAURANT_TEL"),
			Waiter:            viper.GetString("RESTAURANT_WAITER"),
			OrderType:         viper.GetString("RESTAURANT_ORDER_TYPE"),
			PaymentMethod:     viper.GetString("RESTAURANT_PAYMENT_METHOD"),
			FooterNote:        viper.GetString("RESTAURANT_FOOTER_NOTE"),
			TaxRate:           viper.GetFloat64("RESTAURANT_TAX_RATE"),
			ServiceChargeRate: viper.GetFloat64("RESTAURANT_SERVICE_CHARGE_RATE"),
			QRBaseURL:         viper.GetString("RESTAURANT_QR_BASE_URL"),
		},
		Receipt: ReceiptConfig{
			FlowFooter: viper.GetBool("RECEIPT_FLOW_FOOTER"),
		},
		Pipeline: PipelineConfig{
			InputPath: viper.GetString("PIPELINE_INPUT_PATH"),
			OutputDir: viper.GetString("PIPELINE_OUTPUT_DIR"),
			ImagesDir: viper.GetString("PIPELINE_IMAGES_DIR"),
			DPI:       viper.GetInt("PIPELINE_DPI"),
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
	}
}
