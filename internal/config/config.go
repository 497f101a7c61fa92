package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Statutory StatutoryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string

	// KioskCompanyID is the tenant the unauthenticated attendance kiosk
	// endpoint writes to. One deployment serves one tenant's kiosks.
	KioskCompanyID string
}

// StatutoryConfig holds the Honduran statutory payroll constants. These
// track the law, not the code: every value can be overridden by env so a
// legal revision never requires touching calculation logic.
type StatutoryConfig struct {
	// MinimumWage is the monthly minimum-wage reference used as the IHSS
	// contribution ceiling and the RAP exemption floor.
	MinimumWage decimal.Decimal

	// SocialSecurityRate is the employee IHSS rate applied to
	// min(baseSalary, MinimumWage).
	SocialSecurityRate decimal.Decimal

	// RetirementFundRate is the employee RAP rate applied to
	// max(0, baseSalary - MinimumWage).
	RetirementFundRate decimal.Decimal

	// AnnualExemption is the flat annual deduction subtracted from gross
	// annual income before the ISR brackets apply.
	AnnualExemption decimal.Decimal

	// ISR bracket upper bounds on net annual income, ascending, with the
	// cumulative tax owed at the lower edge of brackets three and four.
	ISRBracket1Ceiling decimal.Decimal // at or below: exempt
	ISRBracket2Ceiling decimal.Decimal // 15% band
	ISRBracket3Ceiling decimal.Decimal // 20% band; above: 25%
	ISRBracket2Base    decimal.Decimal // tax accrued through the 15% band
	ISRBracket3Base    decimal.Decimal // tax accrued through the 20% band
	ISRRate2           decimal.Decimal
	ISRRate3           decimal.Decimal
	ISRRate4           decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; production supplies real env vars.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sistema_rh"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		KioskCompanyID: getEnv("KIOSK_COMPANY_ID", ""),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	statutory, err := loadStatutory()
	if err != nil {
		return nil, fmt.Errorf("statutory configuration: %w", err)
	}
	config.Statutory = statutory

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// DefaultStatutory returns the statutory constants in force as of the
// last legal revision this codebase tracks.
func DefaultStatutory() StatutoryConfig {
	return StatutoryConfig{
		MinimumWage:        decimal.RequireFromString("11903.13"),
		SocialSecurityRate: decimal.RequireFromString("0.05"),
		RetirementFundRate: decimal.RequireFromString("0.015"),
		AnnualExemption:    decimal.RequireFromString("40000"),
		ISRBracket1Ceiling: decimal.RequireFromString("217493.16"),
		ISRBracket2Ceiling: decimal.RequireFromString("494224.40"),
		ISRBracket3Ceiling: decimal.RequireFromString("771252.37"),
		ISRBracket2Base:    decimal.RequireFromString("41610.33"),
		ISRBracket3Base:    decimal.RequireFromString("96916.30"),
		ISRRate2:           decimal.RequireFromString("0.15"),
		ISRRate3:           decimal.RequireFromString("0.20"),
		ISRRate4:           decimal.RequireFromString("0.25"),
	}
}

func loadStatutory() (StatutoryConfig, error) {
	s := DefaultStatutory()

	overrides := []struct {
		env    string
		target *decimal.Decimal
	}{
		{"STATUTORY_MINIMUM_WAGE", &s.MinimumWage},
		{"STATUTORY_IHSS_RATE", &s.SocialSecurityRate},
		{"STATUTORY_RAP_RATE", &s.RetirementFundRate},
		{"STATUTORY_ISR_EXEMPTION", &s.AnnualExemption},
		{"STATUTORY_ISR_BRACKET1_CEILING", &s.ISRBracket1Ceiling},
		{"STATUTORY_ISR_BRACKET2_CEILING", &s.ISRBracket2Ceiling},
		{"STATUTORY_ISR_BRACKET3_CEILING", &s.ISRBracket3Ceiling},
		{"STATUTORY_ISR_BRACKET2_BASE", &s.ISRBracket2Base},
		{"STATUTORY_ISR_BRACKET3_BASE", &s.ISRBracket3Base},
		{"STATUTORY_ISR_RATE2", &s.ISRRate2},
		{"STATUTORY_ISR_RATE3", &s.ISRRate3},
		{"STATUTORY_ISR_RATE4", &s.ISRRate4},
	}

	for _, o := range overrides {
		raw := os.Getenv(o.env)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return StatutoryConfig{}, fmt.Errorf("invalid %s: %w", o.env, err)
		}
		*o.target = value
	}

	return s, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.Statutory.MinimumWage.IsPositive() {
		return fmt.Errorf("STATUTORY_MINIMUM_WAGE must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
