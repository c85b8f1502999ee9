// Package pprof starts a profiling sidecar on import. The listen address
// comes from PPROF_ADDR; with no address set, a random localhost port is
// tried until one binds.
package pprof

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func run() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)

	if addr := os.Getenv("PPROF_ADDR"); addr != "" {
		_ = router.Run(addr)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for {
		addr := fmt.Sprintf("localhost:%d", 1024+rng.Intn(0xffff-1024))
		if err := router.Run(addr); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
}

func init() {
	go run()
}
