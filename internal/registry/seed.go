package registry

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"tradepost/internal/domain"
)

// SeedDemo installs a few demo traders so a fresh instance is usable
// right away. Safe to call once on an empty registry.
func SeedDemo(r *Registry) {
	if len(r.traders) > 0 {
		return
	}
	log.Println("[seed] inserting demo traders")

	mk := func(name string, role domain.Role, desc, raw string, credits int) {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		if _, err := r.AddTrader(name, role, desc, string(h), credits); err != nil {
			log.Printf("[seed] %s: %v", name, err)
		}
	}

	mk("Alice", domain.RoleUser, "Collector of odds and ends", "Passw0rd!", 100)
	mk("Bob", domain.RoleUser, "Buys anything shiny", "Passw0rd!", 100)
	mk("Hasgeek", domain.RoleOrganization, "Surplus hardware reseller", "Passw0rd!", 500)
}
