package core

// GameState is the top-level screen the session is in
type GameState uint8

const (
	StateMenu GameState = iota
	StateSettings
	StateShop
	StateGame
	StateVictory
	StateGameOver
	gameStateCount
)

var gameStateNames = [gameStateCount]string{
	StateMenu:     "menu",
	StateSettings: "settings",
	StateShop:     "shop",
	StateGame:     "game",
	StateVictory:  "victory",
	StateGameOver: "game_over",
}

func (s GameState) String() string {
	if s >= gameStateCount {
		return "unknown"
	}
	return gameStateNames[s]
}
