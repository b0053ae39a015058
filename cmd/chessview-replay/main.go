// Command chessview-replay plays a YAML click script against a game session
// and prints the outcome of each click and the final position and clocks.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/obslog"
	"github.com/hailam/chessview/internal/replay"
)

var (
	scriptPath = flag.String("script", "", "click script (YAML)")
	startFEN   = flag.String("fen", "", "start position (default: standard)")
	logLevel   = flag.String("log-level", "warn", "log level")
)

func main() {
	flag.Parse()

	logger, err := obslog.New(*logLevel, "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessview-replay: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	script, err := replay.LoadFile(*scriptPath)
	if err != nil {
		logger.Error("cannot load script", zap.Error(err))
		os.Exit(1)
	}

	var rules board.Rules = board.NewBoard()
	if *startFEN != "" {
		b, err := board.NewBoardFromFEN(*startFEN)
		if err != nil {
			logger.Error("bad start position", zap.Error(err))
			os.Exit(1)
		}
		rules = b
	}

	res := replay.Run(script, rules, logger)
	if err := res.Write(os.Stdout); err != nil {
		logger.Error("write result", zap.Error(err))
		os.Exit(1)
	}
}
