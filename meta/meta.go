// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines the parallel engine may use.
const GO_ROUTINES = 8

// SERIAL_DEPTH defines how many plies below the root the parallel engine
// still evaluates one move at a time.
const SERIAL_DEPTH = 3

// CACHE_SHARDS defines the number of independently locked cache shards.
const CACHE_SHARDS = 64

// BOARD_SIZE defines the default side length of the board.
const BOARD_SIZE = 3

// GAMES defines the default number of games per match up.
const GAMES = 10
