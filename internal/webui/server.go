// Package webui serves a small read-only dashboard over a finished or
// in-progress similarity run: live progress, cluster listing, and resized
// thumbnails. Like internal/report, it is a pure collaborator — it only
// consumes the core's plain return values and progress events, and is never
// imported back by the core pipeline packages.
package webui

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nfnt/resize"

	"imgsimfind"
	"imgsimfind/internal/imaging"
)

// ThumbnailSize is the square edge length of generated preview thumbnails.
const ThumbnailSize = 160

// thumbnailCacheSize bounds the in-memory-only LRU — cleared whenever the
// process exits, never written to disk, so it never reintroduces the
// cross-run hash-persistence behavior the spec excludes.
const thumbnailCacheSize = 256

// Server is the dashboard's state: the latest progress snapshot and the
// most recent cluster listing, guarded by mu since progress events and HTTP
// handlers run on different goroutines.
type Server struct {
	app    *fiber.App
	mu     sync.Mutex
	last   imgsimfind.ProgressEvent
	groups []imgsimfind.Cluster
	thumbs *lru.Cache[string, []byte]
}

// New builds a Server ready to Start; the listen address is given to Start.
func New() *Server {
	cache, _ := lru.New[string, []byte](thumbnailCacheSize)

	s := &Server{thumbs: cache}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/progress", s.handleProgress)
	api.Get("/groups", s.handleGroups)
	api.Get("/thumbnail", s.handleThumbnail)

	s.app = app
	return s
}

// Start listens on addr (e.g. ":8787") until the process is stopped.
func (s *Server) Start(addr string) error {
	return s.app.Listen(addr)
}

// Progress is called from the core's ProgressFunc to push the latest event
// into the dashboard's state.
func (s *Server) Progress(ev imgsimfind.ProgressEvent) {
	s.mu.Lock()
	s.last = ev
	s.mu.Unlock()
}

// SetGroups records the cluster listing for a finished run.
func (s *Server) SetGroups(groups []imgsimfind.Cluster) {
	s.mu.Lock()
	s.groups = groups
	s.mu.Unlock()
}

func (s *Server) handleProgress(c *fiber.Ctx) error {
	s.mu.Lock()
	ev := s.last
	s.mu.Unlock()
	return c.JSON(fiber.Map{
		"phase":      ev.Phase,
		"current":    ev.Current,
		"total":      ev.Total,
		"path":       ev.Path,
		"path2":      ev.Path2,
		"has_path2":  ev.HasPath2,
		"similarity": ev.Similarity,
	})
}

func (s *Server) handleGroups(c *fiber.Ctx) error {
	s.mu.Lock()
	groups := s.groups
	s.mu.Unlock()
	return c.JSON(groups)
}

func (s *Server) handleThumbnail(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing path")
	}

	if data, ok := s.thumbs.Get(path); ok {
		c.Set(fiber.HeaderContentType, "image/jpeg")
		return c.Send(data)
	}

	data, err := s.renderThumbnail(path)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	s.thumbs.Add(path, data)

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}

func (s *Server) renderThumbnail(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	img, err := imaging.StdDecoder{}.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	thumb := resize.Thumbnail(ThumbnailSize, ThumbnailSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
