package types

import "github.com/panopteo/hnefatafl-engine/pkg/models/message"

type NewGameRequest struct {
	AttackerAI bool `json:"attackerAI"`
	DefenderAI bool `json:"defenderAI"`
}

type NewGameResponse struct {
	GameUid string           `json:"gameUid"`
	Board   message.Snapshot `json:"board"`
}

type MoveView struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type CaptureView struct {
	Cell  int    `json:"cell"`
	Piece string `json:"piece"`
	Mode  string `json:"mode"`
}

type GameStateResponse struct {
	GameUid    string           `json:"gameUid"`
	Board      message.Snapshot `json:"board"`
	Outcome    string           `json:"outcome"`
	StepCount  int              `json:"stepCount"`
	LegalMoves []MoveView       `json:"legalMoves,omitempty"`
}

type ApplyMoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type ApplyMoveResponse struct {
	Move     MoveView      `json:"move"`
	Captures []CaptureView `json:"captures,omitempty"`
	Outcome  string        `json:"outcome"`
	ToMove   string        `json:"toMove,omitempty"`
}

type SelfTestResponse struct {
	Ok       bool     `json:"ok"`
	Failures []string `json:"failures,omitempty"`
	Error    string   `json:"error,omitempty"`
}
