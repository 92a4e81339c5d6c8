package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP_USR-token")
	t.Setenv("MP_NOTIFICATION_URL", "https://backend.example.com/webhooks/mercadopago")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("PIX_AMOUNT", "")
	t.Setenv("PIX_DESCRIPTION", "")
	t.Setenv("USERS_TABLE", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.UsersTable != "users" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PixAmount != 19.90 {
		t.Fatalf("expected default pix amount, got %v", cfg.PixAmount)
	}
	if cfg.PixDescription != "Acesso Premium MenthorHub" {
		t.Fatalf("unexpected description: %q", cfg.PixDescription)
	}
	if cfg.NotificationURL == "" || cfg.MercadoPagoAccessToken == "" {
		t.Fatalf("required values missing: %+v", cfg)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"missing access token", "MERCADOPAGO_ACCESS_TOKEN"},
		{"missing notification url", "MP_NOTIFICATION_URL"},
		{"missing aws key", "AWS_ACCESS_KEY_ID"},
		{"missing aws secret", "AWS_SECRET_ACCESS_KEY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, "")

			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.key) {
				t.Fatalf("expected missing %s error, got %v", tc.key, err)
			}
		})
	}
}

func TestLoad_MockModeSkipsAccessToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MercadoPagoAccessToken != "" {
		t.Fatalf("expected empty token, got %q", cfg.MercadoPagoAccessToken)
	}
}

func TestLoad_PixAmount(t *testing.T) {
	t.Run("custom amount", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PIX_AMOUNT", "29.90")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.PixAmount != 29.90 {
			t.Fatalf("expected 29.90, got %v", cfg.PixAmount)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PIX_AMOUNT", "free")

		if _, err := Load(); err == nil {
			t.Fatal("expected invalid PIX_AMOUNT error")
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PIX_AMOUNT", "0")

		if _, err := Load(); err == nil {
			t.Fatal("expected invalid PIX_AMOUNT error")
		}
	})
}
