package main

import (
	"flag"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var (
	RedisConfigFile = flag.String("f", "etc/engine.yaml", "redis config file path")
	rdbConf         redis.RedisConf
	RedisClient     *redis.Redis
)

func initConfig() {
	flag.Parse()
	conf.MustLoad(*RedisConfigFile, &rdbConf)
	if rdbConf.Pass == "" {
		rdbConf.Pass = os.Getenv("REDIS_PASSWORD")
	}

	RedisClient = redis.MustNewRedis(rdbConf)
}
