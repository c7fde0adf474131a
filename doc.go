// Package chess implements a chess rules engine: position representation,
// legal move generation (including Chess960 castling, en passant and
// promotion), move application and reversion, outcome classification
// (checkmate, stalemate, threefold repetition, the fifty-move rule and
// insufficient material), and the FEN and SAN text formats.
//
// The package does not implement a game facade, PGN movetext parsing, board
// rendering, or any search/evaluation logic; those are left to callers.
//
// A Position is not safe for concurrent use. Independent Positions may be
// used freely from independent goroutines.
package chess
