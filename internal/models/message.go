package models

// MessageRef identifies a posted chat message so it can be edited later
type MessageRef struct {
	ChannelID string
	MessageID string
}

// CoinFace is the result of a coin flip
type CoinFace string

const (
	CoinFaceHeads CoinFace = "Heads"
	CoinFaceTails CoinFace = "Tails"
)
