package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/teatime-labs/moodgate/pkg/config"
)

type Client interface {
	RedisClient() *redis.Client
	Ping(ctx context.Context) error
	Close() error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(cfg config.RedisConfig, logger *logrus.Logger) (Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLSEnable {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	c := &client{redisClient: redis.NewClient(options)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  cfg.Host,
			"port":  cfg.Port,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": cfg.Host,
		"port": cfg.Port,
	}).Info("redis connected successfully")

	return c, nil
}

// NewClientFrom wraps an existing connection.
func NewClientFrom(redisClient *redis.Client) Client {
	return &client{redisClient: redisClient}
}

func (c *client) RedisClient() *redis.Client {
	return c.redisClient
}

func (c *client) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}

func (c *client) Close() error {
	return c.redisClient.Close()
}
