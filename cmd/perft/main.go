// Command perft exercises move generation by counting leaf positions
// reachable from a FEN to a given depth, optionally broken down per root
// move (-divide), in the style of every pack engine's own perft tool.
//
// Example:
//
//	$ perft -fen startpos -depth 4
//	$ perft -fen "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1" -depth 3 -divide
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	chess "github.com/atamuratov07/chess-game"
)

var knownFENs = map[string]string{
	"startpos": chess.StartFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"chess960": "nrkbqrnb/pppppppp/8/8/8/8/PPPPPPPP/NRKBQRNB w FBfb - 0 1",
}

func main() {
	fen := flag.String("fen", "startpos", `position to search, or one of the known names: "startpos", "kiwipete", "chess960"`)
	depth := flag.Int("depth", 4, "depth in plies")
	divide := flag.Bool("divide", false, "print a per-root-move node count followed by the total")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	fenStr := *fen
	if known, ok := knownFENs[fenStr]; ok {
		fenStr = known
	}

	pos, err := chess.ParseFEN(fenStr)
	if err != nil {
		logger.Fatal("parsing FEN", zap.String("fen", fenStr), zap.Error(err))
	}

	logger.Info("starting perft",
		zap.String("fen", fenStr),
		zap.Int("depth", *depth),
		zap.Bool("divide", *divide),
	)

	start := time.Now()
	if *divide {
		runDivide(pos, *depth)
	} else {
		runTotal(pos, *depth)
	}
	elapsed := time.Since(start)

	logger.Info("perft finished", zap.Duration("elapsed", elapsed))
}

func runTotal(pos *chess.Position, depth int) {
	total := pos.Perft(depth)
	fmt.Printf("depth %d: %d nodes\n", depth, total)
}

func runDivide(pos *chess.Position, depth int) {
	counts := pos.PerftDivide(depth)
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Printf("%-6s %d\n", m, counts[m])
		total += counts[m]
	}
	fmt.Printf("total %d\n", total)
}
