package main

import (
	"log"
	"time"

	_ "github.com/panopteo/hnefatafl-engine/pkg/pprof"
)

const (
	OnceWorkingTime = 180                 // second
	ReplyExpireTime = OnceWorkingTime * 3 // second
)

func main() {
	initConfig()
	Pusher.Start()
	defer Pusher.Stop()

	for {
		nowPartition, err := GetFreePartition(RedisClient)
		if err != nil {
			log.Fatalln(err)
		}

		if err = OnceIntervalWorking(nowPartition); err != nil {
			log.Fatalln(err)
		}

		time.Sleep(time.Second)
	}
}
