package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	SMTP    SMTPConfig
	Booking BookingConfig
	Storage StorageConfig
	Admin   AdminConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// BookingConfig carries the booking-lifecycle deadlines. ReviewWindow is
// how long an early booking stays editable before it is locked (and how
// long an urgent booking may stay unpaid before it expires). The urgent
// threshold is the check-in distance below which a booking must be paid
// immediately.
type BookingConfig struct {
	ReviewWindow    time.Duration
	UrgentThreshold time.Duration
	DraftTTL        time.Duration
	SweepInterval   time.Duration
}

type StorageConfig struct {
	PaymentProofDir string
}

// AdminConfig seeds the initial administrator account on startup so a
// fresh deployment always has someone who can provision staff.
type AdminConfig struct {
	Email    string
	Password string
	FullName string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	reviewWindow, err := time.ParseDuration(viper.GetString("BOOKING_REVIEW_WINDOW"))
	if err != nil {
		reviewWindow = 2 * time.Hour
	}

	urgentThreshold, err := time.ParseDuration(viper.GetString("BOOKING_URGENT_THRESHOLD"))
	if err != nil {
		urgentThreshold = 24 * time.Hour
	}

	draftTTL, err := time.ParseDuration(viper.GetString("BOOKING_DRAFT_TTL"))
	if err != nil {
		draftTTL = 30 * time.Minute
	}

	sweepInterval, err := time.ParseDuration(viper.GetString("BOOKING_SWEEP_INTERVAL"))
	if err != nil {
		sweepInterval = time.Minute
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	proofDir := viper.GetString("PAYMENT_PROOF_DIR")
	if proofDir == "" {
		proofDir = "uploads/payment_proofs"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		Booking: BookingConfig{
			ReviewWindow:    reviewWindow,
			UrgentThreshold: urgentThreshold,
			DraftTTL:        draftTTL,
			SweepInterval:   sweepInterval,
		},
		Storage: StorageConfig{
			PaymentProofDir: proofDir,
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			FullName: viper.GetString("ADMIN_FULL_NAME"),
		},
	}

	return config, nil
}
