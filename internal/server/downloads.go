package server

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Choovyy/portfolio/internal/portfolio"
)

func sendDownload(c *gin.Context, d portfolio.Download) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename}))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", d.Content)
}

func (s *Server) handleResumeDownload(c *gin.Context) {
	sendDownload(c, s.catalog.ResumeDownload())
}

func (s *Server) handleProjectDownload(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		index = -1
	}
	d, err := s.catalog.ProjectDownloadAt(index)
	if err != nil {
		c.String(HTTPStatus(err), err.Error())
		return
	}
	sendDownload(c, d)
}
