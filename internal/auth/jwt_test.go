package auth

import (
	"testing"

	"homestock/internal/model"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, 2, "alice", model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 1 || claims.HouseholdID != 2 {
		t.Errorf("got user %d household %d, want 1 and 2", claims.UserID, claims.HouseholdID)
	}
	if claims.Username != "alice" || claims.Role != model.RoleAdmin {
		t.Errorf("got %q role %q, want alice admin", claims.Username, claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a JTI to be set")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, 1, "alice", model.RoleMember)

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken(testSecret, "not.a.token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}

func TestTokensGetUniqueJTIs(t *testing.T) {
	t1, _ := GenerateToken(testSecret, 1, 1, "alice", model.RoleMember)
	t2, _ := GenerateToken(testSecret, 1, 1, "alice", model.RoleMember)

	c1, _ := ValidateToken(testSecret, t1)
	c2, _ := ValidateToken(testSecret, t2)
	if c1.ID == c2.ID {
		t.Error("expected distinct JTIs for separate tokens")
	}
}
