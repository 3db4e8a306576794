package portfolio

// Download is a generated text attachment.
type Download struct {
	Filename string
	Content  []byte
}

const resumeFilename = "resume.txt"

// ProjectDownload exports a project's description as "{title}.txt".
func ProjectDownload(p Project) Download {
	return Download{
		Filename: p.Title + ".txt",
		Content:  []byte(p.Description),
	}
}

// ProjectDownloadAt looks up the project at index and exports it.
func (c *Catalog) ProjectDownloadAt(index int) (Download, error) {
	if index < 0 || index >= len(c.Projects) {
		return Download{}, &ProjectNotFoundError{Index: index}
	}
	return ProjectDownload(c.Projects[index]), nil
}

// ProjectByTitle finds a project by exact title.
func (c *Catalog) ProjectByTitle(title string) (Project, bool) {
	for _, p := range c.Projects {
		if p.Title == title {
			return p, true
		}
	}
	return Project{}, false
}

// ResumeDownload returns the fixed resume text. It does not depend on any
// session state.
func (c *Catalog) ResumeDownload() Download {
	return Download{
		Filename: resumeFilename,
		Content:  []byte(c.Resume),
	}
}
