package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gofit/internal"
)

// handleMethodology renders the embedded methodology document, which
// states the hypotheses and walks through how each reported number is
// derived.
func (s *Server) handleMethodology(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("docs/methodology.md")
	if err != nil {
		internal.DefaultLogger.Error("[handleMethodology] FAILED - missing embedded document: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "methodology document unavailable"})
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	c.HTML(http.StatusOK, "methodology.html", gin.H{
		"Content": template.HTML(rendered),
	})
}
