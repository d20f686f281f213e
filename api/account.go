package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aidancornelius/murmur-api/schema"
	"github.com/aidancornelius/murmur-api/store"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		AccountNumber string                 `json:"account_number" binding:"required"`
		Metadata      map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	profile, err := s.mongoStore.CreateAccount(params.AccountNumber, params.Metadata)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": map[string]interface{}{
			"id":             profile.ID,
			"account_number": profile.AccountNumber,
		},
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	profile, ok := a.(*schema.Profile)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	configuration := schema.DefaultLoadConfiguration
	if profile.Configuration != nil {
		configuration = *profile.Configuration
	}

	c.JSON(http.StatusOK, gin.H{
		"result": map[string]interface{}{
			"id":             profile.ID,
			"account_number": profile.AccountNumber,
			"metadata":       profile.Metadata,
			"configuration":  configuration,
		},
	})
}

// accountUpdateConfiguration replaces the requester's load
// configuration. Thresholds must ascend and the decay rate stays in
// [0, 1]; the engine itself never validates.
func (s *Server) accountUpdateConfiguration(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Configuration schema.LoadConfiguration `json:"configuration" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !validConfiguration(params.Configuration) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.UpdateLoadConfiguration(accountNumber, params.Configuration); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func validConfiguration(cfg schema.LoadConfiguration) bool {
	t := cfg.Thresholds
	if !(t.Safe < t.Caution && t.Caution < t.High && t.High < t.Critical) {
		return false
	}
	if cfg.SymptomMultiplier < 0 {
		return false
	}
	return cfg.DecayRate >= 0 && cfg.DecayRate <= 1
}
