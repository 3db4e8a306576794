package portfolio

import (
	"slices"
	"strings"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ProjectFilter selects projects by tech tag and maximum difficulty.
type ProjectFilter struct {
	Tech          []string
	MaxDifficulty int
}

// ProjectMatch is a project that passed a filter, with its position in the
// source list.
type ProjectMatch struct {
	Index int
	Project
}

// TechOptions returns the sorted set of distinct tech tags across projects.
func TechOptions(projects []Project) []string {
	var tags []string
	for _, p := range projects {
		tags = append(tags, p.TechStack...)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// DefaultFilter selects every tag and the highest difficulty, which matches
// every project that has at least one tag.
func DefaultFilter(projects []Project) ProjectFilter {
	return ProjectFilter{
		Tech:          TechOptions(projects),
		MaxDifficulty: MaxDifficulty,
	}
}

// ClampDifficulty forces a threshold into [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	return min(max(d, MinDifficulty), MaxDifficulty)
}

// Selected reports whether tag is part of the filter's tech selection.
func (f ProjectFilter) Selected(tag string) bool {
	return slices.Contains(f.Tech, tag)
}

// Matches reports whether p shares at least one tag with the selection and
// is no harder than the threshold.
func (f ProjectFilter) Matches(p Project) bool {
	if p.Difficulty > f.MaxDifficulty {
		return false
	}
	return slices.ContainsFunc(p.TechStack, f.Selected)
}

// FilterProjects returns the matching projects in source order. The input
// slice is not modified.
func FilterProjects(projects []Project, f ProjectFilter) []ProjectMatch {
	var out []ProjectMatch
	for i, p := range projects {
		if f.Matches(p) {
			out = append(out, ProjectMatch{Index: i, Project: p})
		}
	}
	return out
}

// TechSummary is the comma separated tech stack.
func (p Project) TechSummary() string {
	return strings.Join(p.TechStack, ", ")
}
