package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

func TestPasswordAuthenticator(t *testing.T) {
	hash, err := HashPassword("bloom-secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	authn := NewPasswordAuthenticator(models.Admin{Name: "coach", PasswordHash: hash})
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		admin, err := authn.Authenticate(ctx, "coach", "bloom-secret")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if admin.Name != "coach" {
			t.Errorf("name = %q, want coach", admin.Name)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "coach", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong name", func(t *testing.T) {
		_, err := authn.Authenticate(ctx, "someone", "bloom-secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("no hash configured", func(t *testing.T) {
		_, err := NewPasswordAuthenticator(models.Admin{Name: "coach"}).Authenticate(ctx, "coach", "")
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("err = %v, want ErrNotConfigured", err)
		}
	})
}

func TestHashPasswordRejectsWeakPassword(t *testing.T) {
	if _, err := HashPassword("short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("err = %v, want ErrWeakPassword", err)
	}
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-with-32-bytes!!", time.Hour)

	token, expiresAt, err := manager.Generate(&models.Admin{Name: "coach"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt = %v, want in the future", expiresAt)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Name != "coach" || claims.Subject != "coach" {
		t.Errorf("claims = %+v, want name and subject coach", claims)
	}

	t.Run("other secret is rejected", func(t *testing.T) {
		other := NewJWTManager("another-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-with-32-bytes!!", -time.Minute)
		old, _, err := expired.Generate(&models.Admin{Name: "coach"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(old); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}
