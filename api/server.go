package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aidancornelius/murmur-api/external/healthkit"
	"github.com/aidancornelius/murmur-api/schema"
	"github.com/aidancornelius/murmur-api/store"
)

var log = logrus.WithField("prefix", "api")

type Server struct {
	router *gin.Engine
	server *http.Server

	mongoStore store.MurmurStore
	healthKit  *healthkit.Client

	// location fixes the calendar-day boundary for grouping and day
	// keys; a single deployment serves a single home time zone.
	location *time.Location

	traceMode bool
}

func NewServer(mongoStore store.MurmurStore, healthKit *healthkit.Client, location *time.Location, traceMode bool) *Server {
	if location == nil {
		location = time.Local
	}

	s := &Server{
		mongoStore: mongoStore,
		healthKit:  healthKit,
		location:   location,
		traceMode:  traceMode,
	}
	s.router = s.setupRouter()

	return s
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/api")
	apiRoute.POST("/accounts", s.accountRegister)

	authorized := apiRoute.Group("")
	authorized.Use(s.recognizeAccount)
	{
		authorized.GET("/account", s.accountDetail)
		authorized.PATCH("/account/configuration", s.accountUpdateConfiguration)

		authorized.POST("/events/activity", s.addActivity)
		authorized.POST("/events/meal", s.addMeal)
		authorized.POST("/events/sleep", s.addSleep)
		authorized.POST("/events/symptom", s.addSymptom)
		authorized.GET("/symptoms/distribution", s.symptomDistribution)

		authorized.GET("/score", s.dailyScore)
		authorized.GET("/score/range", s.scoreRange)
		authorized.GET("/score/breakdown", s.scoreBreakdown)
		authorized.GET("/score/history", s.scoreHistory)

		authorized.GET("/report-items", s.reportItems)
		authorized.GET("/metrics/device", s.deviceMetrics)
	}

	return r
}

// Run blocks serving HTTP until Shutdown is called.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// recognizeAccount resolves the requesting account's profile and makes
// it available to handlers.
func (s *Server) recognizeAccount(c *gin.Context) {
	accountNumber := c.GetHeader("X-Account-Number")
	if accountNumber == "" {
		abortWithEncoding(c, http.StatusUnauthorized, errorMissingAccount)
		return
	}

	profile, err := s.mongoStore.GetProfile(accountNumber)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorUnknownAccount)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Set("requester", accountNumber)
	c.Set("account", profile)
	c.Next()
}

// requesterConfiguration returns the requester's load configuration,
// falling back to the application defaults.
func requesterConfiguration(c *gin.Context) schema.LoadConfiguration {
	if a, ok := c.Get("account"); ok {
		if profile, ok := a.(*schema.Profile); ok && profile.Configuration != nil {
			return *profile.Configuration
		}
	}
	return schema.DefaultLoadConfiguration
}
