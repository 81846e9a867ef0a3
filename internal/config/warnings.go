package config

import "fmt"

// Values copied from the example .env that must not reach production
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
	minAPIKeyLength   = 16
)

// Warnings lists settings that load fine but are probably mistakes.
// Outside development these are worth acting on before go-live.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	} else if !c.IsDevelopment() && len(c.APIKey) < minAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", minAPIKeyLength))
	}
	if c.AnnounceCron == "" {
		warnings = append(warnings, "ANNOUNCE_CRON is empty - daily winner announcements are disabled")
	}
	if c.ItemDropRate == 0 {
		warnings = append(warnings, "ITEM_DROP_RATE is 0 - solves will never drop items")
	}

	return warnings
}
