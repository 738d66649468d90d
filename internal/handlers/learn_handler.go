package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learning-center-backend/internal/config"
	"learning-center-backend/internal/service"
)

// LearnHandler serves the learning center pages.
type LearnHandler struct {
	learnService *service.LearnService
	config       *config.Config
}

func NewLearnHandler(learnService *service.LearnService, cfg *config.Config) *LearnHandler {
	return &LearnHandler{
		learnService: learnService,
		config:       cfg,
	}
}

// RenderLanding renders the learning center landing page: the navigation
// card grid followed by the call-to-action panel.
func (h *LearnHandler) RenderLanding(c *gin.Context) {
	content := h.learnService.RenderLandingPage()

	c.HTML(http.StatusOK, "base.html", gin.H{
		"Title":       h.config.SiteName,
		"Description": h.config.SiteDescription,
		"SiteName":    h.config.SiteName,
		"Content":     content,
	})
}

// RenderSection renders the detail page of one navigation target. Unknown
// paths fall through to the HTML 404 page.
func (h *LearnHandler) RenderSection(c *gin.Context) {
	content, ok := h.learnService.RenderSectionPage(c.Request.URL.Path)
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":      "404 - 页面不存在",
			"SiteName":   h.config.SiteName,
			"StatusCode": http.StatusNotFound,
			"Message":    "请求的页面不存在。",
		})
		return
	}

	c.HTML(http.StatusOK, "base.html", gin.H{
		"Title":       h.config.SiteName,
		"Description": h.config.SiteDescription,
		"SiteName":    h.config.SiteName,
		"Content":     content,
	})
}
