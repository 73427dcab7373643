package security

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "testuser")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "testuser" {
		t.Errorf("claims = %d/%q, want 42/testuser", claims.UserID, claims.Username)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(42, "testuser")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("tampered token must not validate")
	}
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token must not validate")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(1, "a")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature: %v", err)
	}
	if sig == "" || !strings.HasSuffix(token, "."+sig) {
		t.Errorf("signature %q does not terminate token", sig)
	}

	if _, err := ExtractSignature("onlyonepart"); err == nil {
		t.Error("malformed token must error")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("gizli-parola")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "gizli-parola" {
		t.Fatal("hash must not equal the plain password")
	}
	if err := CheckPasswordHash("gizli-parola", hash); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPasswordHash("yanlis", hash); err == nil {
		t.Error("wrong password accepted")
	}
}
