package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/panopteo/hnefatafl-engine/pkg/assess"
	"github.com/panopteo/hnefatafl-engine/pkg/models/message"
	"github.com/panopteo/hnefatafl-engine/pkg/scenarios"
)

func RollBack(listKey, m string) {
	for i := 0; i < 20; i++ {
		if _, err := RedisClient.Lpush(listKey, m); err != nil {
			time.Sleep(time.Second / 2)
		} else {
			return
		}
	}
}

// OnceIntervalWorking drains the claimed partition: every popped request is
// answered with either a self-test report or a randomly chosen legal move.
// Requests for stale steps are dropped; the claim TTL is refreshed while
// work remains.
func OnceIntervalWorking(nowPartition message.RedisPartition) (err error) {
	log.Printf("Start Working At Partition: %d\n", nowPartition)

	defer func() {
		if _, err = RedisClient.Del(nowPartition.OwnerKey()); err != nil {
			log.Panicf("Release Partition Error: %s\n", err)
		}
	}()

	for {
		if err = RedisClient.Expire(nowPartition.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := RedisClient.Llen(nowPartition.ListKey())
		if err != nil {
			return err
		}

		if l == 0 {
			return nil
		}

		m, err := RedisClient.Rpop(nowPartition.ListKey())
		if err != nil {
			return err
		}

		if m == "" {
			continue
		}

		req, err := message.NewMoveRequestMessage(m)
		if err != nil {
			return err
		}

		if req.SelfTest {
			Pusher.AddMessages(Reply{
				MoveReplyMessage: answerSelfTest(req),
				RollBackFunc:     func() { RollBack(nowPartition.ListKey(), m) },
			})
			continue
		}

		nowStep, err := RedisClient.Get(req.GameUid.StepKey())
		if err != nil {
			RollBack(nowPartition.ListKey(), m)
			return err
		}

		if nowStep == "" {
			continue
		}

		if step, _ := strconv.Atoi(nowStep); step != req.StepCount {
			continue
		}

		Pusher.AddMessages(Reply{
			MoveReplyMessage: answerMove(req),
			RollBackFunc:     func() { RollBack(nowPartition.ListKey(), m) },
		})
	}
}

// answerSelfTest runs the internal rule checks. A panic anywhere becomes a
// top-level Error field; it never crosses the worker boundary raw.
func answerSelfTest(req message.MoveRequestMessage) (reply message.MoveReplyMessage) {
	reply = message.MoveReplyMessage{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   req.GameUid,
		StepCount: req.StepCount,
	}

	defer func() {
		if r := recover(); r != nil {
			reply.SelfTest = nil
			reply.Error = fmt.Sprintf("self-test panic: %v", r)
		}
	}()

	ok, failures := scenarios.Run()
	reply.SelfTest = &message.SelfTestResult{Ok: ok, Failures: failures}
	return reply
}

func answerMove(req message.MoveRequestMessage) (reply message.MoveReplyMessage) {
	reply = message.MoveReplyMessage{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   req.GameUid,
		StepCount: req.StepCount,
	}

	board, side, err := req.Snapshot.Board()
	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	move, err := assess.RandMoveFor(board, side)
	if err != nil {
		reply.Error = err.Error()
		return reply
	}

	reply.Move = move
	return reply
}
