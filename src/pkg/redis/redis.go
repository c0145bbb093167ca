package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config carries the connection settings. A non-empty ClusterNodes list
// (";" separated) switches the client to cluster mode.
type Config struct {
	Host            string
	Port            string
	Password        string
	DB              int
	EnableTLS       bool
	ClusterNodes    string
	ClusterPassword string
}

// NewClient connects and pings once. The universal client covers both the
// single-node and cluster deployments from one set of options.
func NewClient(cfg Config) (redis.UniversalClient, error) {
	client := redis.NewUniversalClient(options(cfg))
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func options(cfg Config) *redis.UniversalOptions {
	var tlsConf *tls.Config
	if cfg.EnableTLS {
		tlsConf = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	opts := &redis.UniversalOptions{
		Addrs:        []string{fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)},
		Password:     cfg.Password,
		DB:           cfg.DB,
		TLSConfig:    tlsConf,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	}

	if cfg.ClusterNodes != "" {
		opts.Addrs = strings.Split(cfg.ClusterNodes, ";")
		opts.Password = cfg.ClusterPassword
		opts.DB = 0
	}

	return opts
}
