package portfolio

import "math"

// SkillRow is the tabular view of a SkillEntry.
type SkillRow struct {
	Name        string
	Proficiency float64
	Percent     int
}

// SkillTable derives the table and chart rows from the skills list, in order.
func SkillTable(skills []SkillEntry) []SkillRow {
	rows := make([]SkillRow, 0, len(skills))
	for _, s := range skills {
		rows = append(rows, SkillRow{
			Name:        s.Name,
			Proficiency: s.Proficiency,
			Percent:     Percent(s.Proficiency),
		})
	}
	return rows
}

// Percent converts a proficiency in [0,1] to a rounded percentage.
func Percent(proficiency float64) int {
	return int(math.Round(proficiency * 100))
}

// Strongest returns the skill with the highest proficiency. Ties go to the
// earliest entry. ok is false for an empty list.
func Strongest(skills []SkillEntry) (best SkillEntry, ok bool) {
	for i, s := range skills {
		if i == 0 || s.Proficiency > best.Proficiency {
			best = s
		}
	}
	return best, len(skills) > 0
}
