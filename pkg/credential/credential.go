// Package credential isolates how passwords are stored, so the policy is a
// single swappable decision instead of logic scattered across handlers.
package credential

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sealer turns a raw password into its stored form and checks a raw
// password against a stored one.
type Sealer interface {
	Seal(raw string) string
	Verify(stored, raw string) bool
}

// Plain stores passwords exactly as provided. This is the historical
// behavior and the default.
type Plain struct{}

func (Plain) Seal(raw string) string { return raw }

func (Plain) Verify(stored, raw string) bool { return stored == raw }

// SHA256 stores a salted hex digest instead of the raw password.
type SHA256 struct {
	Salt string
}

func (s SHA256) Seal(raw string) string {
	h := sha256.Sum256([]byte(raw + s.Salt))
	return hex.EncodeToString(h[:])
}

func (s SHA256) Verify(stored, raw string) bool {
	return stored == s.Seal(raw)
}

// FromConfig maps a config value to a Sealer. Unknown values fall back to
// Plain.
func FromConfig(name string) Sealer {
	if name == "sha256" {
		return SHA256{Salt: "miniblog"} // TODO: per-user random salt once login exists
	}
	return Plain{}
}
