package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MBARUDI/menthorhub-backend/pkg"
)

const (
	defaultPixAmount      = 19.90
	defaultPixDescription = "Acesso Premium MenthorHub"
	defaultUsersTable     = "users"
)

// Config holds everything the process needs to run. Load fails instead
// of falling back when a required value is absent, so a misconfigured
// instance never serves traffic.

type Config struct {
	Port                   string
	MercadoPagoAccessToken string
	NotificationURL        string
	UsersTable             string
	PixAmount              float64
	PixDescription         string
}

// Load reads configuration from the environment.
//
// Required: MERCADOPAGO_ACCESS_TOKEN (unless the gateway mock is
// enabled), MP_NOTIFICATION_URL, AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY (the datastore credential; DYNAMODB_ENDPOINT
// selects a local datastore when set).
func Load() (Config, error) {
	cfg := Config{
		Port:                   getenvDefault("PORT", "8080"),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		NotificationURL:        strings.TrimSpace(os.Getenv("MP_NOTIFICATION_URL")),
		UsersTable:             getenvDefault("USERS_TABLE", defaultUsersTable),
		PixAmount:              defaultPixAmount,
		PixDescription:         getenvDefault("PIX_DESCRIPTION", defaultPixDescription),
	}

	if cfg.MercadoPagoAccessToken == "" && !pkg.IsPaymentGatewayMockEnabled() {
		return Config{}, fmt.Errorf("missing MERCADOPAGO_ACCESS_TOKEN")
	}
	if cfg.NotificationURL == "" {
		return Config{}, fmt.Errorf("missing MP_NOTIFICATION_URL")
	}
	if strings.TrimSpace(os.Getenv("AWS_ACCESS_KEY_ID")) == "" {
		return Config{}, fmt.Errorf("missing AWS_ACCESS_KEY_ID")
	}
	if strings.TrimSpace(os.Getenv("AWS_SECRET_ACCESS_KEY")) == "" {
		return Config{}, fmt.Errorf("missing AWS_SECRET_ACCESS_KEY")
	}

	if raw := strings.TrimSpace(os.Getenv("PIX_AMOUNT")); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			return Config{}, fmt.Errorf("invalid PIX_AMOUNT %q", raw)
		}
		cfg.PixAmount = amount
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
