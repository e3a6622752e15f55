package domain

// Stats is the mutable combat block shared by players and enemies.
// Health always stays within [0, MaxHealth].
type Stats struct {
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
}

// NewStats returns stats at full health.
func NewStats(maxHealth, attack, defense int) Stats {
	return Stats{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Attack:    attack,
		Defense:   defense,
	}
}

// TakeDamage applies amount after subtracting defense and returns the mitigated
// damage. Overkill is reported in full; health itself stops at zero.
func (s *Stats) TakeDamage(amount int) int {
	mitigated := amount - s.Defense
	if mitigated < 0 {
		mitigated = 0
	}
	s.Health -= mitigated
	if s.Health < 0 {
		s.Health = 0
	}
	return mitigated
}

// Heal restores up to amount health and returns the health actually gained.
func (s *Stats) Heal(amount int) int {
	if amount < 0 {
		return 0
	}
	missing := s.MaxHealth - s.Health
	if amount > missing {
		amount = missing
	}
	s.Health += amount
	return amount
}

// IsAlive reports whether health is above zero.
func (s Stats) IsAlive() bool {
	return s.Health > 0
}

// GrowMaxHealth raises both the cap and current health.
func (s *Stats) GrowMaxHealth(amount int) {
	s.MaxHealth += amount
	s.Health += amount
}
