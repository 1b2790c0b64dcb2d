package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "RAZORPAY_BASE_URL",
		"RAZORPAY_MOCK", "REDIS_CONN", "DATABASE_URL", "EXPO_PUSH_URL", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.MockPayments {
		t.Fatal("expected mock mode off by default")
	}
	if cfg.RazorpayConfigured() {
		t.Fatal("expected unconfigured by default")
	}
	if cfg.RazorpayBaseURL != "https://api.razorpay.com" {
		t.Fatalf("unexpected base URL %q", cfg.RazorpayBaseURL)
	}
	if cfg.ExpoPushURL != "https://exp.host/--/api/v2/push/send" {
		t.Fatalf("unexpected push URL %q", cfg.ExpoPushURL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret")
	t.Setenv("RAZORPAY_MOCK", "true")

	cfg := LoadConfig()

	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.Port)
	}
	if !cfg.MockPayments {
		t.Fatal("expected mock mode on")
	}
	if !cfg.RazorpayConfigured() {
		t.Fatal("expected configured credentials")
	}
}

func TestLoadConfigBadBool(t *testing.T) {
	t.Setenv("RAZORPAY_MOCK", "yes-please")

	if cfg := LoadConfig(); cfg.MockPayments {
		t.Fatal("expected unparseable bool to fall back to default")
	}
}
