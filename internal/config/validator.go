package config

// Warnings lists settings that are valid but probably not what the player
// meant. They are logged at startup and never fatal.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.UsePostgres() && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.StatusEnabled() && c.StatusAPIKey == "" {
		warnings = append(warnings, "STATUS_API_KEY is empty - the status API is readable by anyone who can reach STATUS_PORT")
	}

	if c.StatusAPIKey == ExampleStatusAPIKey {
		warnings = append(warnings, "STATUS_API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.Seed != 0 {
		warnings = append(warnings, "SEED is fixed - every run will generate the same world")
	}

	return warnings
}
