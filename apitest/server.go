// Package apitest runs an in-process portal API for the test suite: every
// endpoint the client talks to, backed by an in-memory database, so the
// upload orchestrator, submission pipeline, and admin client can be
// exercised end to end without a live backend.
package apitest

import (
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	jwtSecret     = "apitest-secret"
	maxUploadSize = 10 * 1024 * 1024
)

// Server is a live stub of the nomination portal API.
type Server struct {
	DB     *gorm.DB
	Engine *gin.Engine

	httpServer *httptest.Server
}

// New starts a stub server over a fresh in-memory database.
func New() (*Server, error) {
	// A unique shared-cache DSN keeps each server on its own database while
	// letting the pool hold more than one connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&candidateRow{}, &storedFile{}, &portalUser{}); err != nil {
		return nil, err
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{DB: db, Engine: engine}
	s.setupRoutes()
	s.httpServer = httptest.NewServer(engine)
	return s, nil
}

// URL is the API base URL to hand to a client.
func (s *Server) URL() string {
	return s.httpServer.URL + "/api"
}

// Close shuts the stub down.
func (s *Server) Close() {
	s.httpServer.Close()
}

func (s *Server) setupRoutes() {
	api := s.Engine.Group("/api")
	{
		// Public routes
		api.POST("/auth/login", s.login)
		api.POST("/upload/single", s.uploadSingle)
		api.POST("/candidates", s.createCandidate)

		// Authenticated routes
		protected := api.Group("")
		protected.Use(s.authRequired())
		{
			protected.GET("/upload/info/:fileId", s.fileInfo)
			protected.GET("/upload/id/:fileId", s.fileContent)

			admin := protected.Group("/admin")
			{
				admin.GET("/candidates", s.listCandidates)
				admin.GET("/candidates/:id", s.getCandidate)
				admin.PATCH("/candidates/:id/status", requireRole("admin", "moderator"), s.updateStatus)
				admin.POST("/candidates/:id/notes", requireRole("admin", "moderator"), s.addNote)
				admin.DELETE("/candidates/:id", requireRole("admin"), s.deleteCandidate)
				admin.GET("/statistics", s.statistics)

				admin.GET("/users", requireRole("admin"), s.listUsers)
				admin.POST("/users", requireRole("admin"), s.createUser)
				admin.PUT("/users/:id", requireRole("admin"), s.updateUser)
				admin.DELETE("/users/:id", requireRole("admin"), s.deleteUser)
			}
		}
	}
}

// SeedUser creates an active console account with the given credentials.
func (s *Server) SeedUser(name, email, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user := portalUser{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	return s.DB.Create(&user).Error
}
