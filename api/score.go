package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aidancornelius/murmur-api/schema"
	"github.com/aidancornelius/murmur-api/score"
	"github.com/aidancornelius/murmur-api/utils"
)

// maxRangeDays bounds range queries to keep a single request from
// folding over years of history.
const maxRangeDays = 366

type rangeEvents struct {
	activities []schema.Activity
	meals      []schema.Meal
	sleeps     []schema.Sleep
	symptoms   []schema.SymptomObservation
}

func (e rangeEvents) contributors() []schema.LoadContributor {
	contributors := make([]schema.LoadContributor, 0, len(e.activities)+len(e.meals)+len(e.sleeps))
	for _, a := range e.activities {
		contributors = append(contributors, a)
	}
	for _, m := range e.meals {
		contributors = append(contributors, m)
	}
	for _, sl := range e.sleeps {
		contributors = append(contributors, sl)
	}
	return contributors
}

func (s *Server) fetchEvents(accountNumber string, from, to time.Time) (*rangeEvents, error) {
	start := from.Unix()
	end := to.AddDate(0, 0, 1).Unix()

	activities, err := s.mongoStore.ListActivities(accountNumber, start, end)
	if err != nil {
		return nil, err
	}
	meals, err := s.mongoStore.ListMeals(accountNumber, start, end)
	if err != nil {
		return nil, err
	}
	sleeps, err := s.mongoStore.ListSleeps(accountNumber, start, end)
	if err != nil {
		return nil, err
	}
	symptoms, err := s.mongoStore.ListSymptoms(accountNumber, start, end)
	if err != nil {
		return nil, err
	}

	return &rangeEvents{
		activities: activities,
		meals:      meals,
		sleeps:     sleeps,
		symptoms:   symptoms,
	}, nil
}

// previousDecayedLoad is the seed for a day's calculation: the stored
// decayed load of the day before, or 0 when no history exists.
func (s *Server) previousDecayedLoad(accountNumber string, day time.Time) (float64, error) {
	record, err := s.mongoStore.GetLoadRecord(accountNumber, utils.DayKey(day.AddDate(0, 0, -1)))
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, nil
	}
	return record.DecayedLoad, nil
}

// resolveDay parses an optional ?date= parameter, defaulting to today.
func (s *Server) resolveDay(c *gin.Context) (time.Time, bool) {
	value := c.Query("date")
	if value == "" {
		return utils.StartOfDay(time.Now().In(s.location)), true
	}

	parsed, err := utils.ParseDate(value, s.location)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return time.Time{}, false
	}
	return utils.StartOfDay(parsed), true
}

func (s *Server) dailyScore(c *gin.Context) {
	accountNumber := c.GetString("requester")

	day, ok := s.resolveDay(c)
	if !ok {
		return
	}

	events, err := s.fetchEvents(accountNumber, day, day)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	previous, err := s.previousDecayedLoad(accountNumber, day)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	loadScore := score.CalculateDailyLoadFromEvents(day, events.activities, events.meals, events.sleeps, events.symptoms, previous, requesterConfiguration(c))

	if err := s.mongoStore.AddLoadRecord(accountNumber, loadScore); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": loadScore})
}

// resolveRange parses the required ?start=&end= parameters into day
// boundaries in the server location.
func (s *Server) resolveRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := utils.ParseDate(c.Query("start"), s.location)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return time.Time{}, time.Time{}, false
	}
	end, err := utils.ParseDate(c.Query("end"), s.location)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return time.Time{}, time.Time{}, false
	}

	from := utils.StartOfDay(start)
	to := utils.StartOfDay(end)
	if to.Before(from) || to.Sub(from) > maxRangeDays*24*time.Hour {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

func (s *Server) scoreRange(c *gin.Context) {
	accountNumber := c.GetString("requester")

	from, to, ok := s.resolveRange(c)
	if !ok {
		return
	}

	events, err := s.fetchEvents(accountNumber, from, to)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	seed, err := s.previousDecayedLoad(accountNumber, from)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	scores := score.CalculateLoadRange(from, to,
		score.GroupContributorsByDay(events.contributors(), s.location),
		score.GroupSymptomsByDay(events.symptoms, s.location),
		seed, requesterConfiguration(c))

	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (s *Server) scoreBreakdown(c *gin.Context) {
	accountNumber := c.GetString("requester")

	day, ok := s.resolveDay(c)
	if !ok {
		return
	}

	events, err := s.fetchEvents(accountNumber, day, day)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	breakdown := score.AnalyseContributions(events.contributors(), events.symptoms, requesterConfiguration(c))

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

func (s *Server) scoreHistory(c *gin.Context) {
	accountNumber := c.GetString("requester")

	from, to, ok := s.resolveRange(c)
	if !ok {
		return
	}

	records, err := s.mongoStore.GetLoadHistory(accountNumber, utils.DayKey(from), utils.DayKey(to))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	average, err := s.mongoStore.GetLoadAverage(accountNumber, utils.DayKey(from), utils.DayKey(to))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"average": average,
	})
}

func (s *Server) deviceMetrics(c *gin.Context) {
	accountNumber := c.GetString("requester")

	if s.healthKit == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorMetricsUnavailable)
		return
	}

	day, ok := s.resolveDay(c)
	if !ok {
		return
	}

	metrics, err := s.healthKit.DailyMetrics(accountNumber, utils.DayKey(day))
	if err != nil {
		abortWithEncoding(c, http.StatusBadGateway, errorMetricsUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
