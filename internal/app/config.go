package app

import (
	"strings"
	"time"

	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/utils"
)

type Config struct {
	JWTSecretKey        string
	AccessTokenTTL      time.Duration
	RefreshTokenTTL     time.Duration
	AllowOrigins        []string
	InsightCacheBackend string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	cacheBackend := utils.GetEnv("INSIGHT_CACHE_BACKEND", "memory", log)
	return Config{
		JWTSecretKey:        jwtSecretKey,
		AccessTokenTTL:      time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL:     time.Duration(refreshTokenTTLSeconds) * time.Second,
		AllowOrigins:        strings.Split(origins, ","),
		InsightCacheBackend: cacheBackend,
	}
}
