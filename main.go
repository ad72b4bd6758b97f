package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/wildsme/background"
	"github.com/Zachkp/wildsme/config"
	"github.com/Zachkp/wildsme/contact"
	"github.com/Zachkp/wildsme/content"
	"github.com/Zachkp/wildsme/server"
	"github.com/Zachkp/wildsme/storage"
)

var (
	port        string
	dbPath      string
	contentFile string
	seed        uint64
	submitDelay time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "wildsme",
	Short: "wildsme - personal portfolio server",
	Long:  "Serves the portfolio page, its HTMX fragments and the scroll-reactive background.",
	Run:   runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Run:   runServe,
}

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Page content management",
}

var contentDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the page content as YAML",
	Long:  "Print the effective page content as YAML, ready to be edited and used as CONTENT_FILE.",
	Run:   runContentDump,
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the background layout as JSON",
	Run:   runLayout,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&port, "port", "8080", "Port to listen on")
		cmd.Flags().StringVar(&dbPath, "db", "wildsme.db", "SQLite database path")
		cmd.Flags().StringVar(&contentFile, "content", "", "YAML content file")
		cmd.Flags().Uint64Var(&seed, "seed", background.DefaultSeed, "Background layout seed")
		cmd.Flags().DurationVar(&submitDelay, "submit-delay", contact.DefaultDelay, "Simulated contact submission delay")
	}
	contentDumpCmd.Flags().StringVar(&contentFile, "content", "", "YAML content file")
	layoutCmd.Flags().Uint64Var(&seed, "seed", background.DefaultSeed, "Background layout seed")

	contentCmd.AddCommand(contentDumpCmd)
	rootCmd.AddCommand(serveCmd, contentCmd, layoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment, then applies the flags that were set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("db") {
		cfg.DatabasePath = dbPath
	}
	if flags.Changed("content") {
		cfg.ContentFile = contentFile
	}
	if flags.Changed("seed") {
		cfg.Background.Seed = seed
	}
	if flags.Changed("submit-delay") {
		cfg.SubmitDelay = submitDelay
	}
	return cfg
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	gin.SetMode(cfg.GinMode)

	if cfg.UsingDefaultAdmin() && gin.Mode() == gin.DebugMode {
		log.Println("WARNING: using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatalf("load content: %v", err)
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	s, err := server.New(cfg, site, store, contact.Simulated{Delay: cfg.SubmitDelay})
	if err != nil {
		log.Fatalf("create server: %v", err)
	}
	// Clean up old visitor data for privacy compliance (run in background)
	go s.CleanupVisitors()

	router, err := s.Router()
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		log.Printf("listening on http://localhost%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	s.Shutdown()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

func runContentDump(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		log.Fatalf("load content: %v", err)
	}
	if err := content.Dump(os.Stdout, site); err != nil {
		log.Fatalf("dump content: %v", err)
	}
}

func runLayout(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	gen := background.NewGenerator(cfg.Background)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gen.Elements()); err != nil {
		log.Fatalf("encode layout: %v", err)
	}
}
