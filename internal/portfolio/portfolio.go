// Package portfolio holds the static catalog behind the site (profile, skills,
// projects, timeline) and the pure functions the section pages derive from it.
package portfolio

import "fmt"

// SkillEntry is one row of the skills catalog. Proficiency is in [0,1].
type SkillEntry struct {
	Name        string  `yaml:"name"`
	Proficiency float64 `yaml:"proficiency"`
}

// Project is a showcased project. Difficulty is in [MinDifficulty, MaxDifficulty].
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	TechStack   []string `yaml:"tech"`
	Difficulty  int      `yaml:"difficulty"`
}

// ExperienceItem is one timeline entry.
type ExperienceItem struct {
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
	Years   string `yaml:"years"`
	Summary string `yaml:"summary"`
}

// Metric is a labelled headline number on the home page.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Profile is the biographical text shown on the Home and About pages.
type Profile struct {
	Name      string   `yaml:"name"`
	Title     string   `yaml:"title"`
	Tagline   string   `yaml:"tagline"`
	Currently string   `yaml:"currently"`
	GitHubURL string   `yaml:"github_url"`
	Metrics   []Metric `yaml:"metrics"`
	Greeting  string   `yaml:"greeting"`

	About     string `yaml:"-"`
	Education string `yaml:"-"`
	Mission   string `yaml:"-"`
	Goals     string `yaml:"-"`
}

// Catalog is everything the site renders that is not per-session state.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	Profile  Profile          `yaml:"profile"`
	Skills   []SkillEntry     `yaml:"skills"`
	Projects []Project        `yaml:"projects"`
	Timeline []ExperienceItem `yaml:"timeline"`
	Resume   string           `yaml:"-"`
}

// Validate checks the catalog invariants: proficiency in [0,1], difficulty in
// [1,5], and no empty titles or skill names.
func (c *Catalog) Validate() error {
	for i, s := range c.Skills {
		if s.Name == "" {
			return &CatalogError{Message: fmt.Sprintf("skill %d has no name", i)}
		}
		if s.Proficiency < 0 || s.Proficiency > 1 {
			return &CatalogError{Message: fmt.Sprintf("skill %q proficiency %v outside [0,1]", s.Name, s.Proficiency)}
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return &CatalogError{Message: fmt.Sprintf("project %d has no title", i)}
		}
		if p.Difficulty < MinDifficulty || p.Difficulty > MaxDifficulty {
			return &CatalogError{Message: fmt.Sprintf("project %q difficulty %d outside [%d,%d]", p.Title, p.Difficulty, MinDifficulty, MaxDifficulty)}
		}
	}
	return nil
}
