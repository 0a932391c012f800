// meta/meta.go
package meta

// BOARD_SIZE is the default width and height of the board.
const BOARD_SIZE = 15

// DEFAULT_DEPTH is the default number of plies searched by minimax and alpha-beta.
const DEFAULT_DEPTH = 2

// MAX_TURNS caps the number of moves in an AI-vs-AI match.
const MAX_TURNS = BOARD_SIZE * BOARD_SIZE
