package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorMissingAccount     = errorResponse{1002, "account number not provided"}
	errorUnknownAccount     = errorResponse{1003, "account not registered"}
	errorAccountTaken       = errorResponse{1004, "account number already registered"}
	errorMetricsUnavailable = errorResponse{1005, "device metrics unavailable"}
)

func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error(resp.Message)
	}

	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}
