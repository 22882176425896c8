// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EcoChef.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: ECOCHEF_MONGO_URI, ECOCHEF_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "ecochef", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "ecochef-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Blob storage (post images)
	{Name: "blob_endpoint", Default: "localhost:9000", Desc: "S3-compatible endpoint for image storage"},
	{Name: "blob_access_key", Default: "minioadmin", Desc: "Blob storage access key"},
	{Name: "blob_secret_key", Default: "minioadmin", Desc: "Blob storage secret key"},
	{Name: "blob_bucket", Default: "ecochef-posts", Desc: "Bucket for post images"},
	{Name: "blob_use_ssl", Default: false, Desc: "Use TLS for the blob endpoint"},

	// Groq
	{Name: "groq_api_key", Default: "", Desc: "Groq API key for recipe generation and receipt structuring"},
	{Name: "groq_base_url", Default: "", Desc: "Override for the Groq endpoint (blank uses the public one)"},
	{Name: "groq_model", Default: "llama-3.3-70b-versatile", Desc: "Groq model name"},

	// OCR
	{Name: "ocr_binary", Default: "", Desc: "Path to the tesseract binary (blank uses PATH)"},
	{Name: "ocr_lang", Default: "eng", Desc: "Tesseract language pack"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for absolute links"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, ECOCHEF_* for app), and
// command-line flags, merged with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ECOCHEF", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		BlobEndpoint:  appValues.String("blob_endpoint"),
		BlobAccessKey: appValues.String("blob_access_key"),
		BlobSecretKey: appValues.String("blob_secret_key"),
		BlobBucket:    appValues.String("blob_bucket"),
		BlobUseSSL:    appValues.Bool("blob_use_ssl"),

		GroqAPIKey:  appValues.String("groq_api_key"),
		GroqBaseURL: appValues.String("groq_base_url"),
		GroqModel:   appValues.String("groq_model"),

		OCRBinary: appValues.String("ocr_binary"),
		OCRLang:   appValues.String("ocr_lang"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI format is checked early, before attempting to connect.
// A missing Groq key is allowed so the app can run without the recipe
// features in local setups; the affected views report it instead.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.BlobBucket == "" {
		return fmt.Errorf("blob_bucket must be set")
	}

	if appCfg.GroqAPIKey == "" {
		logger.Warn("groq_api_key is not set; recipe generation and receipt scanning will fail")
	}

	return nil
}
