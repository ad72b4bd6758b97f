package server

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/wildsme/background"
	"github.com/Zachkp/wildsme/config"
	"github.com/Zachkp/wildsme/contact"
	"github.com/Zachkp/wildsme/content"
	"github.com/Zachkp/wildsme/preference"
	"github.com/Zachkp/wildsme/shell"
	"github.com/Zachkp/wildsme/storage"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	visitorCookie = "visitor_id"
	// Client hint carrying the browser's prefers-color-scheme.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
	// schemeParam is the color scheme the page currently shows, sent by the
	// browser script with every HTMX request and theme lookup.
	schemeParam = "scheme"
)

// Server serves the portfolio page, its fragments and the background API.
type Server struct {
	cfg       config.Config
	site      content.Site
	store     *storage.Store
	gen       *background.Generator
	submitter contact.Submitter
	forms     *formRegistry
	streams   *StreamManager
	upgrader  websocket.Upgrader

	adminToken string
}

// New wires a server. The submitter receives every valid contact message.
func New(cfg config.Config, site content.Site, store *storage.Store, submitter contact.Submitter) (*Server, error) {
	token, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:        cfg,
		site:       site,
		store:      store,
		gen:        background.NewGenerator(cfg.Background),
		submitter:  submitter,
		forms:      newFormRegistry(submitter),
		streams:    NewStreamManager(),
		adminToken: token,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	if s.cfg.TrackVisitors {
		r.Use(s.visitorTrackingMiddleware())
	}

	r.GET("/", s.handleIndex)
	r.GET("/contact-form", s.handleContactForm)
	r.GET("/experience-content", s.handleExperience)
	r.POST("/contact", s.handleContact)
	r.POST("/contact/field", s.handleContactField)
	r.POST("/nav/menu", s.handleMenuToggle)
	r.POST("/nav/section", s.handleNavigate)
	r.GET("/ws/background", s.handleBackgroundStream)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept", "Origin", "HX-Request", "HX-Target"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	{
		api.GET("/content", s.handleContent)
		api.GET("/theme", s.handleTheme)
		api.POST("/theme/toggle", s.handleThemeToggle)
		api.GET("/background", s.handleBackground)
		api.GET("/background/layout", s.handleLayout)
		api.GET("/background/frame", s.handleBackgroundFrame)
	}

	s.setupAdminRoutes(r)
	return r, nil
}

// Shutdown closes every open background stream.
func (s *Server) Shutdown() {
	s.streams.CloseAll()
}

var templateFuncs = template.FuncMap{
	"ago": humanize.Time,
	"add": func(a, b int) int { return a + b },
}

// visitorID returns the visitor cookie, issuing a new one when absent. The
// id is cached on the context so one request never issues two cookies.
func visitorID(c *gin.Context) string {
	if id := c.GetString(visitorCookie); id != "" {
		return id
	}
	id, err := c.Cookie(visitorCookie)
	if _, perr := uuid.Parse(id); err != nil || perr != nil {
		id = uuid.NewString()
		c.SetCookie(visitorCookie, id, 3600*24*365, "/", "", false, true)
	}
	c.Set(visitorCookie, id)
	return id
}

// systemPrefersDark is the fallback used when no theme is stored: the
// scheme the page shows when the script reports it, else the client hint.
func systemPrefersDark(c *gin.Context) bool {
	if theme, err := preference.Parse(c.DefaultPostForm(schemeParam, c.Query(schemeParam))); err == nil {
		return theme.IsDark()
	}
	return c.GetHeader(colorSchemeHint) == "dark"
}

// preferences resolves the visitor's theme service. Storage errors fall
// back to the system preference and are logged.
func (s *Server) preferences(c *gin.Context) *preference.Service {
	prefs := preference.NewService(s.store.Theme(visitorID(c)))
	if _, err := prefs.Resolve(systemPrefersDark(c)); err != nil {
		log.Printf("Error loading theme preference: %v", err)
	}
	return prefs
}

func (s *Server) newShell(c *gin.Context, form *contact.Form) *shell.Shell {
	return shell.New(s.preferences(c), form)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
