// Package tui is the interactive terminal front-end.
package tui

type state int

const (
	loadingState state = iota
	errorState
	homeState
	searchState
	animesState
	episodesState
	watchState
	historyState
)
