package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Choovyy/portfolio/internal/portfolio"
	"github.com/Choovyy/portfolio/internal/session"
	"github.com/Choovyy/portfolio/internal/visits"
)

const (
	sectionHome       = "home"
	sectionAbout      = "about"
	sectionSkills     = "skills"
	sectionProjects   = "projects"
	sectionExperience = "experience"
	sectionContact    = "contact"
)

type navItem struct {
	Key    string
	Label  string
	Active bool
}

// Menu order is fixed.
var navigation = []navItem{
	{Key: sectionHome, Label: "Home"},
	{Key: sectionAbout, Label: "About Me"},
	{Key: sectionSkills, Label: "Skills"},
	{Key: sectionProjects, Label: "Projects"},
	{Key: sectionExperience, Label: "Experience"},
	{Key: sectionContact, Label: "Contact"},
}

// resolveSection maps a requested section to a known one, defaulting to Home.
func resolveSection(name string) string {
	for _, item := range navigation {
		if item.Key == name {
			return name
		}
	}
	return sectionHome
}

func navFor(active string) []navItem {
	items := make([]navItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Key == active
		items[i] = item
	}
	return items
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// render writes a section either as an HTMX fragment or wrapped in the full
// page shell.
func (s *Server) render(c *gin.Context, status int, section string, data gin.H) {
	c.Set(visits.SectionKey, section)
	data["Section"] = section
	data["Profile"] = s.catalog.Profile

	if isHTMX(c) {
		c.HTML(status, "section.html", data)
		return
	}
	data["Nav"] = navFor(section)
	data["ProfileImage"] = s.profileImageURL()
	c.HTML(status, "layout.html", data)
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderSection(c, resolveSection(c.Query("section")))
}

func (s *Server) handleSection(c *gin.Context) {
	name := c.Param("name")
	if resolveSection(name) != name {
		c.String(http.StatusNotFound, "unknown section")
		return
	}
	s.renderSection(c, name)
}

func (s *Server) renderSection(c *gin.Context, section string) {
	var data gin.H
	switch section {
	case sectionAbout:
		data = s.aboutData(c)
	case sectionSkills:
		data = s.skillsData()
	case sectionProjects:
		data = s.projectsData(c)
	case sectionExperience:
		data = gin.H{"Timeline": s.catalog.Timeline}
	case sectionContact:
		data = s.contactData(currentSession(c), session.ContactMessage{})
	default:
		data = s.homeData(c)
	}
	s.render(c, http.StatusOK, section, data)
}

func (s *Server) homeData(c *gin.Context) gin.H {
	showChart := c.Query("chart") == "1"
	data := gin.H{
		"Hello":     c.Query("hello") == "1",
		"ShowChart": showChart,
	}
	if showChart {
		data["Chart"] = newLineChart(portfolio.ActivitySeries(s.rand), 600, 200)
	}
	return data
}

type aboutTab struct {
	Key    string
	Label  string
	Active bool
}

func (s *Server) aboutData(c *gin.Context) gin.H {
	active := "mission"
	text := s.catalog.Profile.Mission
	if c.Query("tab") == "goals" {
		active = "goals"
		text = s.catalog.Profile.Goals
	}
	return gin.H{
		"Tabs": []aboutTab{
			{Key: "mission", Label: "Mission", Active: active == "mission"},
			{Key: "goals", Label: "Goals", Active: active == "goals"},
		},
		"TabText": text,
	}
}

func (s *Server) skillsData() gin.H {
	strongest, ok := portfolio.Strongest(s.catalog.Skills)
	return gin.H{
		"Skills":       portfolio.SkillTable(s.catalog.Skills),
		"Strongest":    strongest,
		"HasStrongest": ok,
	}
}

type techOption struct {
	Name     string
	Selected bool
}

// projectFilter reads the filter controls. Without the "filtered" marker the
// default (everything selected) applies; with it, an empty tech list really
// means nothing is selected.
func (s *Server) projectFilter(c *gin.Context) portfolio.ProjectFilter {
	f := portfolio.DefaultFilter(s.catalog.Projects)
	if c.Query("filtered") == "1" {
		f.Tech = c.QueryArray("tech")
	}
	if d, err := strconv.Atoi(c.Query("difficulty")); err == nil {
		f.MaxDifficulty = portfolio.ClampDifficulty(d)
	}
	return f
}

func (s *Server) projectsData(c *gin.Context) gin.H {
	f := s.projectFilter(c)

	var options []techOption
	for _, tag := range portfolio.TechOptions(s.catalog.Projects) {
		options = append(options, techOption{Name: tag, Selected: f.Selected(tag)})
	}

	matches := portfolio.FilterProjects(s.catalog.Projects, f)
	return gin.H{
		"TechOptions":   options,
		"MaxDifficulty": f.MaxDifficulty,
		"MinLevel":      portfolio.MinDifficulty,
		"MaxLevel":      portfolio.MaxDifficulty,
		"Matches":       matches,
		"Count":         len(matches),
	}
}

func (s *Server) contactData(sess *session.Session, form session.ContactMessage) gin.H {
	return gin.H{
		"Form":    form,
		"Recent":  sess.Recent(session.RecentLimit),
		"Missing": map[string]bool{},
	}
}

func (s *Server) handleContact(c *gin.Context) {
	sess := currentSession(c)

	var form session.ContactMessage
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[WARN] Could not bind contact form: %v", err)
	}

	err := sess.Submit(form)
	if err != nil {
		var missing *session.MissingFieldError
		if !errors.As(err, &missing) {
			log.Printf("[ERROR] Contact submission failed: %v", err)
		}
		data := s.contactData(sess, form)
		data["Error"] = "Please complete all fields."
		data["Missing"] = missingSet(missing)

		status := HTTPStatus(err)
		// htmx only swaps 2xx responses into the page.
		if isHTMX(c) {
			status = http.StatusOK
		}
		s.render(c, status, sectionContact, data)
		return
	}

	log.Printf("[INFO] Contact message stored for session %s", sess.ID)
	data := s.contactData(sess, session.ContactMessage{})
	data["Success"] = "Message sent successfully!"
	s.render(c, http.StatusOK, sectionContact, data)
}

func missingSet(err *session.MissingFieldError) map[string]bool {
	set := map[string]bool{}
	if err != nil {
		for _, f := range err.Fields {
			set[f] = true
		}
	}
	return set
}
