package utils

import (
	"os"
	"testing"

	"meetbook/core/config"
	"meetbook/core/errors"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "partner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, appErr := ParseToken(token)
	if appErr != nil {
		t.Fatalf("ParseToken: %v", appErr)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "partner" {
		t.Errorf("role = %s, want partner", claims.Role)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, appErr := ParseToken("not.a.token")
	if appErr == nil || appErr.Code != errors.ErrInvalidTokenFormat {
		t.Fatalf("error = %v, want code %s", appErr, errors.ErrInvalidTokenFormat)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "member")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, appErr := ParseToken(tampered); appErr == nil {
		t.Fatal("tampered token was accepted")
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == "" || b == "" {
		t.Fatal("empty id")
	}
	if a == b {
		t.Error("ids are not unique")
	}
}
