package main

type uiState struct {
	busy       int // fetches in flight; keys are ignored while > 0
	noticeMsg  string
	noticeType string
	noticeSeq  int
}
