package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/wildsme/contact"
	"github.com/Zachkp/wildsme/metrics"
	"github.com/Zachkp/wildsme/shell"
)

// Home page route
func (s *Server) handleIndex(c *gin.Context) {
	sh := s.newShell(c, s.forms.peek(visitorID(c)))

	// Ask the browser to send its color scheme, retrying this request with
	// it when it was missing.
	c.Header("Accept-CH", colorSchemeHint)
	c.Header("Critical-CH", colorSchemeHint)
	c.Header("Vary", colorSchemeHint)

	metrics.PageViews.WithLabelValues("index").Inc()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site": s.site,
		"view": sh.View(),
		"year": time.Now().Year(),
	})
}

// HTMX contact form endpoint - returns just the form HTML
func (s *Server) handleContactForm(c *gin.Context) {
	sh := s.newShell(c, s.forms.peek(visitorID(c)))
	metrics.PageViews.WithLabelValues("contact-form").Inc()
	c.HTML(http.StatusOK, "contact-form.html", gin.H{
		"view": sh.View(),
	})
}

// Experience timeline fragment
func (s *Server) handleExperience(c *gin.Context) {
	metrics.PageViews.WithLabelValues("experience").Inc()
	c.HTML(http.StatusOK, "experience-content.html", gin.H{
		"experience": s.site.Experience,
	})
}

// Handle contact form submission with HTMX. Validation errors re-render the
// form with the posted values; a valid form waits for the submitter and
// comes back empty. The visitor's form stays locked while it is sending.
func (s *Server) handleContact(c *gin.Context) {
	var values contact.Values
	if err := c.ShouldBind(&values); err != nil {
		log.Printf("Error binding contact form: %v", err)
	}

	id := visitorID(c)
	form := s.forms.get(id)
	sh := s.newShell(c, form)
	_ = sh.ScrollTo("contact")

	err := form.Fill(values)
	if err == nil {
		err = sh.Submit(c.Request.Context())
	}
	switch {
	case errors.Is(err, contact.ErrInvalid):
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusOK, "contact-form.html", gin.H{
			"view": sh.View(),
		})
	case errors.Is(err, contact.ErrSubmitting):
		metrics.ContactSubmissions.WithLabelValues("busy").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Your message is still being sent. Please wait a moment.",
		})
	case err != nil:
		metrics.ContactSubmissions.WithLabelValues("error").Inc()
		log.Printf("Error submitting contact form: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
	default:
		metrics.ContactSubmissions.WithLabelValues("sent").Inc()
		view := sh.View()
		s.forms.forget(id, form)
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Message sent successfully! I'll get back to you soon.",
			"view":    view,
		})
	}
}

// Editing a field clears its error. Returns that field's error slot.
func (s *Server) handleContactField(c *gin.Context) {
	field := c.GetHeader("HX-Trigger-Name")
	if field == "" {
		field = c.PostForm("field")
	}

	form := s.forms.peek(visitorID(c))
	err := form.Set(field, c.PostForm(field))
	if errors.Is(err, contact.ErrUnknownField) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field"})
		return
	}
	c.HTML(http.StatusOK, "contact-field-error.html", gin.H{
		"field": field,
		"error": form.Errors()[field],
	})
}

// navShell rebuilds the navigation state the page reports.
func (s *Server) navShell(c *gin.Context) *shell.Shell {
	sh := s.newShell(c, s.forms.peek(visitorID(c)))
	if active := c.PostForm("active"); shell.IsSection(active) {
		_ = sh.ScrollTo(active)
	}
	if open, _ := strconv.ParseBool(c.PostForm("open")); open {
		sh.ToggleMenu()
	}
	return sh
}

// Mobile menu button
func (s *Server) handleMenuToggle(c *gin.Context) {
	sh := s.navShell(c)
	sh.ToggleMenu()
	c.HTML(http.StatusOK, "nav.html", gin.H{
		"site": s.site,
		"view": sh.View(),
	})
}

// Navigation link: highlights the section and closes the menu.
func (s *Server) handleNavigate(c *gin.Context) {
	sh := s.navShell(c)
	if err := sh.ScrollTo(c.PostForm("section")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.HTML(http.StatusOK, "nav.html", gin.H{
		"site": s.site,
		"view": sh.View(),
	})
}

func (s *Server) handleContent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site":     s.site,
		"sections": shell.Sections,
	})
}

func (s *Server) handleTheme(c *gin.Context) {
	prefs := s.preferences(c)
	theme := prefs.Theme()
	c.JSON(http.StatusOK, gin.H{"theme": theme, "class": theme.Class(), "stored": prefs.Stored()})
}

// Theme button. The fallback is the scheme the page shows, so the first
// toggle always flips what the visitor sees.
func (s *Server) handleThemeToggle(c *gin.Context) {
	sh := s.newShell(c, s.forms.peek(visitorID(c)))
	theme, err := sh.ToggleTheme()
	if err != nil {
		log.Printf("Error saving theme preference: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	metrics.ThemeToggles.WithLabelValues(string(theme)).Inc()
	c.JSON(http.StatusOK, gin.H{"theme": theme, "class": theme.Class()})
}
