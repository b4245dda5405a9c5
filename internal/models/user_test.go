package models

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"
)

func TestRoleValid(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleSecretaria, true},
		{RoleGestor, true},
		{Role(""), false},
		{Role("admin"), false},
		{Role("Gestor"), false}, // case-sensitive
	}
	for _, tc := range cases {
		if got := tc.role.Valid(); got != tc.want {
			t.Errorf("Role(%q).Valid() = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestUserDTOOmitsPasswordHash(t *testing.T) {
	u := User{
		ID:           1,
		Username:     "maria.secretaria",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleSecretaria,
	}
	raw, err := json.Marshal(u.DTO())
	if err != nil {
		t.Fatalf("marshal DTO: %v", err)
	}
	if strings.Contains(string(raw), "$2a$") {
		t.Errorf("DTO must not serialize the password hash: %s", raw)
	}
	if !strings.Contains(string(raw), `"sector":null`) {
		t.Errorf("Expected null sector for secretaria, got %s", raw)
	}
}

func TestUserDTOSector(t *testing.T) {
	u := User{
		ID:       2,
		Username: "joao.financeiro",
		Role:     RoleGestor,
		Sector:   sql.NullString{String: "Financeiro", Valid: true},
	}
	dto := u.DTO()
	if dto.Sector == nil || *dto.Sector != "Financeiro" {
		t.Errorf("Expected sector pointer 'Financeiro', got %v", dto.Sector)
	}
}
