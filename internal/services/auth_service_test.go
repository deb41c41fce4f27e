package services_test

import (
	"testing"

	"tradepost/internal/domain"
	"tradepost/internal/services"
)

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newService(t)
	auth := services.NewAuthService(svc)

	tr, err := auth.Register("Hans", "Passw0rd!", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Role != domain.RoleUser {
		t.Fatal("plain registration must create a user")
	}

	got, err := auth.Login("sid-1", "hans", "Passw0rd!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != tr.ID {
		t.Fatal("login bound to the wrong trader")
	}

	cur, err := auth.CurrentTrader("sid-1")
	if err != nil || cur.ID != tr.ID {
		t.Fatal("session lookup failed")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newService(t)
	auth := services.NewAuthService(svc)
	if _, err := auth.Register("Hans", "Passw0rd!", "", false); err != nil {
		t.Fatal(err)
	}

	if _, err := auth.Login("sid", "Hans", "wrong"); err != services.ErrBadCreds {
		t.Fatalf("wrong password: want ErrBadCreds, got %v", err)
	}
	if _, err := auth.Login("sid", "Nobody", "Passw0rd!"); err != services.ErrBadCreds {
		t.Fatalf("unknown name: want ErrBadCreds, got %v", err)
	}
	if _, err := auth.CurrentTrader("sid"); err != services.ErrBadCreds {
		t.Fatal("failed login must not bind a session")
	}
}

func TestRegisterOrganization(t *testing.T) {
	svc, _ := newService(t)
	auth := services.NewAuthService(svc)

	tr, err := auth.Register("Hasgeek", "Passw0rd!", "an org", true)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.IsOrganization() {
		t.Fatal("org flag not applied")
	}
}

func TestLogoutDropsSession(t *testing.T) {
	svc, _ := newService(t)
	auth := services.NewAuthService(svc)
	if _, err := auth.Register("Hans", "Passw0rd!", "", false); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Login("sid", "Hans", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}

	auth.Logout("sid")
	if _, err := auth.CurrentTrader("sid"); err != services.ErrBadCreds {
		t.Fatal("session survived logout")
	}
}
