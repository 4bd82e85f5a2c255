package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	historyLimit = flag.Int("history", 0, "number of undo snapshots kept, 0 for unbounded")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepPlies = flag.Int("step.plies", 200, "maximum plies in step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "run perft in parallel")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := realMain(ctx)
	stop()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(ctx context.Context) error {
	if *movegenRun {
		return movegen(flag.Args())
	}
	if *stepRun {
		return step(*stepPlies, *stepSeed)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, *perftParallel)
	}

	return runConsole(ctx)
}
