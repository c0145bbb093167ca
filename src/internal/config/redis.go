package config

import (
	"payout-service/src/pkg/log"
	redisPkg "payout-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func NewRedis(v *viper.Viper, logger log.Log) redis.UniversalClient {
	client, err := redisPkg.NewClient(redisPkg.Config{
		Host:            v.GetString("redis.host"),
		Port:            v.GetString("redis.port"),
		Password:        v.GetString("redis.password"),
		DB:              v.GetInt("redis.db"),
		EnableTLS:       v.GetBool("redis.enable_tls"),
		ClusterNodes:    v.GetString("redis.cluster.node"),
		ClusterPassword: v.GetString("redis.cluster.password"),
	})
	if err != nil {
		logger.Error("redis", err.Error(), "NewRedis", "")
		panic(err)
	}

	return client
}
