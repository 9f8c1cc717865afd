package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/big"

	"github.com/hupe1980/factorgo"
	"github.com/hupe1980/factorgo/orbit"
	"github.com/hupe1980/factorgo/search"
)

func main() {
	f, err := factorgo.New(big.NewInt(323)).
		Radix(96).
		Generators(orbit.MulGenerators(96, 5, 7, 11)...).
		Slack(4).
		BeamWidth(64).
		AdaptiveBeam(8, 512).
		HybridScoring().
		Logger(factorgo.NewTextLogger(slog.LevelDebug)).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	res, err := f.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	switch res.Status {
	case search.StatusFound:
		fmt.Printf("%s = %s * %s\n", f.Target(), res.P, res.Q)
	default:
		fmt.Printf("no factorization found (%s)\n", res.Status)
	}

	for _, ld := range res.Diagnostics.Levels {
		fmt.Printf("level %d: generated=%d pruned=%d violation=%.2f width=%d frontier=%d\n",
			ld.Level, ld.Generated, ld.Pruned, ld.ViolationRate, ld.BeamWidth, ld.FrontierOut)
	}
}
