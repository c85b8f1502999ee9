package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/models/tafl"
	_ "github.com/panopteo/hnefatafl-engine/pkg/pprof"
	"github.com/panopteo/hnefatafl-engine/serve/internal/config"
	"github.com/panopteo/hnefatafl-engine/serve/internal/logic"
	"github.com/panopteo/hnefatafl-engine/serve/internal/svc"
	"github.com/panopteo/hnefatafl-engine/serve/internal/types"
	"github.com/zeromicro/go-zero/core/conf"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "the serve address")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *serveAddr != "" {
		c.Addr = *serveAddr
	}
	svcCtx := svc.NewServiceContext(c)

	r := gin.Default()

	r.POST("/games", func(ctx *gin.Context) {
		var req types.NewGameRequest
		_ = ctx.ShouldBindJSON(&req) // body is optional

		resp, err := logic.NewNewGameLogic(ctx, svcCtx).NewGame(&req)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, resp)
	})

	r.GET("/games/:uid", func(ctx *gin.Context) {
		uid := message.GameUid(ctx.Param("uid"))
		resp, err := logic.NewGameStateLogic(ctx, svcCtx).GameState(uid)
		if err != nil {
			ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, resp)
	})

	r.POST("/games/:uid/move", func(ctx *gin.Context) {
		var req types.ApplyMoveRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		uid := message.GameUid(ctx.Param("uid"))
		resp, err := logic.NewApplyMoveLogic(ctx, svcCtx).ApplyMove(uid, &req)
		if err != nil {
			ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, resp)
	})

	r.POST("/games/:uid/ai-move", func(ctx *gin.Context) {
		uid := message.GameUid(ctx.Param("uid"))
		resp, err := logic.NewAIMoveLogic(ctx, svcCtx).AIMove(uid)
		if err != nil {
			ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, resp)
	})

	r.GET("/selftest", func(ctx *gin.Context) {
		resp, err := logic.NewSelfTestLogic(ctx, svcCtx).SelfTest()
		if err != nil {
			ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, resp)
	})

	fmt.Printf("Starting http server at %s...\n", c.Addr)
	if err := r.Run(c.Addr); err != nil {
		panic(err)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, logic.GameNotFoundErr):
		return http.StatusNotFound
	case errors.Is(err, tafl.ErrIllegalMove), errors.Is(err, tafl.ErrGameOver):
		return http.StatusBadRequest
	case errors.Is(err, logic.AIMoveTimeoutErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
