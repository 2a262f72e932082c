// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
)

const originKey = "origin"

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			s.log.Warn().Str("path", c.Request.URL.Path).Msg("Missing authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "missing Authorization header",
				Code:  "MISSING_AUTH_HEADER",
			})
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "authorization header must be in format: Bearer <token>",
				Code:  "INVALID_AUTH_FORMAT",
			})
			return
		}

		origin, err := s.tokens.Parse(tokenString)
		if err != nil {
			s.log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_TOKEN",
			})
			return
		}

		c.Set(originKey, origin)
		c.Next()
	}
}

func originFrom(c *gin.Context) auth.Origin {
	return c.MustGet(originKey).(auth.Origin)
}
