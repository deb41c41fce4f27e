package validate_test

import (
	"testing"
	"time"

	"tradepost/internal/validate"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{" 100 ", 100, true},
		{"9001", 9001, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}
	for _, c := range cases {
		got, ok := validate.Price(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Price(%q) = %d,%v; want %d,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestAmount(t *testing.T) {
	if got, ok := validate.Amount("0"); !ok || got != 0 {
		t.Error("zero is a valid amount")
	}
	if _, ok := validate.Amount("-1"); ok {
		t.Error("negative amounts must be rejected")
	}
}

func TestID(t *testing.T) {
	if got, ok := validate.ID("42"); !ok || got != 42 {
		t.Error("plain id rejected")
	}
	for _, bad := range []string{"0", "-1", "x", ""} {
		if _, ok := validate.ID(bad); ok {
			t.Errorf("ID(%q) accepted", bad)
		}
	}
}

func TestName(t *testing.T) {
	good := []string{"Lamp", "Old Lamp", "Bob's lamp", "lamp-2"}
	for _, s := range good {
		if _, ok := validate.Name(s); !ok {
			t.Errorf("Name(%q) rejected", s)
		}
	}
	bad := []string{"", " ", "-leading", "<script>", "a\tb"}
	for _, s := range bad {
		if _, ok := validate.Name(s); ok {
			t.Errorf("Name(%q) accepted", s)
		}
	}
	if got, _ := validate.Name("  Lamp  "); got != "Lamp" {
		t.Errorf("name not trimmed: %q", got)
	}
}

func TestTraderName(t *testing.T) {
	if _, ok := validate.TraderName("hans_42"); !ok {
		t.Error("valid trader name rejected")
	}
	for _, bad := range []string{"", "white space", "a@b", "0123456789012345678901234567890"} {
		if _, ok := validate.TraderName(bad); ok {
			t.Errorf("TraderName(%q) accepted", bad)
		}
	}
}

func TestDescription(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	if got := validate.Description(string(long)); len(got) != 500 {
		t.Errorf("description not capped: %d", len(got))
	}
	if got := validate.Description("  hi  "); got != "hi" {
		t.Errorf("description not trimmed: %q", got)
	}
}

func TestAuctionHours(t *testing.T) {
	if d, ok := validate.AuctionHours("24"); !ok || d != 24*time.Hour {
		t.Error("24h rejected")
	}
	for _, bad := range []string{"0", "-1", "169", "x"} {
		if _, ok := validate.AuctionHours(bad); ok {
			t.Errorf("AuctionHours(%q) accepted", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if !validate.Password("Passw0rd") {
		t.Error("valid password rejected")
	}
	bad := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere", ""}
	for _, s := range bad {
		if validate.Password(s) {
			t.Errorf("Password(%q) accepted", s)
		}
	}
}
