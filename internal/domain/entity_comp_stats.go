package domain

// CombatStats - боевые характеристики.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// NewCombatStats создает характеристики с полным здоровьем.
func NewCombatStats(maxHP, defense, power int) *CombatStats {
	return &CombatStats{MaxHP: maxHP, HP: maxHP, Defense: defense, Power: power}
}

// TakeDamage уменьшает HP. Отрицательный урон игнорируется.
// Возвращает true, если после удара HP <= 0.
func (s *CombatStats) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	s.HP -= amount
	return s.IsDead()
}

// Heal лечит, не превышая MaxHP.
func (s *CombatStats) Heal(amount int) {
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// IsDead - инвариант здоровья нарушен.
func (s *CombatStats) IsDead() bool {
	return s.HP <= 0
}

// MeleeDamageAgainst - урон атаки по цели: Power - Defense, но не меньше нуля.
func (s *CombatStats) MeleeDamageAgainst(target *CombatStats) int {
	return max(0, s.Power-target.Defense)
}
