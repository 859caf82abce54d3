package security

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || !claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejectsTampering(t *testing.T) {
	token, err := GenerateToken(7, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".forged-signature"
	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken(7, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if sig == "" || !strings.HasSuffix(token, sig) {
		t.Fatalf("signature %q does not terminate token", sig)
	}

	if _, err := ExtractSignature("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := CheckPasswordHash("super-secret", hash); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if err := CheckPasswordHash("wrong", hash); err == nil {
		t.Fatal("expected failure for wrong password")
	}
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected failure for empty password")
	}
}
