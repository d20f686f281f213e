package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aidancornelius/murmur-api/schema"
	"github.com/aidancornelius/murmur-api/score"
	"github.com/aidancornelius/murmur-api/utils"
)

// Range validation happens here at the API boundary; the scoring engine
// only clamps defensively and never rejects.

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

func validExertion(e schema.ExertionRatings) bool {
	return validRating(e.Physical) && validRating(e.Cognitive) && validRating(e.Emotional)
}

func (s *Server) addActivity(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Name      string                 `json:"name" binding:"required"`
		Exertion  schema.ExertionRatings `json:"exertion"`
		Duration  string                 `json:"duration"`
		Timestamp int64                  `json:"timestamp"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !validExertion(params.Exertion) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	duration, err := utils.ParseDurationMinutes(params.Duration)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ts := params.Timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	activity := schema.Activity{
		AccountNumber:   accountNumber,
		Name:            params.Name,
		Exertion:        params.Exertion,
		DurationMinutes: duration,
		Timestamp:       ts,
	}

	id, err := s.mongoStore.AddActivity(activity)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": id,
		// clients show a pacing warning on intense activities
		"high_exertion": score.IsHighExertion(activity),
	})
}

func (s *Server) addMeal(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Name      string                  `json:"name" binding:"required"`
		Exertion  *schema.ExertionRatings `json:"exertion"`
		Timestamp int64                   `json:"timestamp"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Exertion != nil && !validExertion(*params.Exertion) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ts := params.Timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	id, err := s.mongoStore.AddMeal(schema.Meal{
		AccountNumber: accountNumber,
		Name:          params.Name,
		Exertion:      params.Exertion,
		Timestamp:     ts,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (s *Server) addSleep(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		BedTime  int64 `json:"bed_time" binding:"required"`
		WakeTime int64 `json:"wake_time" binding:"required"`
		Quality  int   `json:"quality" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// wake must not precede bed
	if params.WakeTime <= params.BedTime || !validRating(params.Quality) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.mongoStore.AddSleep(schema.Sleep{
		AccountNumber: accountNumber,
		BedTime:       params.BedTime,
		WakeTime:      params.WakeTime,
		Quality:       params.Quality,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// symptomDistribution counts symptom observations by name over a range,
// for the client's "most reported" view.
func (s *Server) symptomDistribution(c *gin.Context) {
	accountNumber := c.GetString("requester")

	from, to, ok := s.resolveRange(c)
	if !ok {
		return
	}

	distribution, err := s.mongoStore.GetSymptomDistribution(accountNumber, from.Unix(), to.AddDate(0, 0, 1).Unix())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"distribution": distribution})
}

func (s *Server) addSymptom(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Name      string                 `json:"name" binding:"required"`
		Severity  int                    `json:"severity" binding:"required"`
		Polarity  schema.SymptomPolarity `json:"polarity"`
		Timestamp int64                  `json:"timestamp"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Polarity == "" {
		params.Polarity = schema.SymptomPolarityNegative
	}
	if !validRating(params.Severity) ||
		(params.Polarity != schema.SymptomPolarityNegative && params.Polarity != schema.SymptomPolarityPositive) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ts := params.Timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	id, err := s.mongoStore.AddSymptom(schema.SymptomObservation{
		AccountNumber: accountNumber,
		Name:          params.Name,
		Severity:      params.Severity,
		Polarity:      params.Polarity,
		Timestamp:     ts,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
