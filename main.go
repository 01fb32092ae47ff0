package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	// Load environment from a .env file for local development.
	_ = godotenv.Load(".env")

	var scores []float64
	var target float64
	pflag.Float64SliceVar(&scores, "scores", nil, "judgment scores to analyze (repeat the flag or comma-separate values)")
	pflag.Float64Var(&target, "target", 0, "known ground-truth value; enables bias and MSE reporting")
	pflag.Parse()

	if !pflag.CommandLine.Changed("scores") {
		envScores, ok, err := scoresFromEnv()
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "missing required flag --scores")
			pflag.Usage()
			os.Exit(2)
		}
		scores = envScores
	}
	if err := checkFinite(scores); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --scores: %v\n", err)
		os.Exit(2)
	}

	var targetPtr *float64
	if pflag.CommandLine.Changed("target") {
		targetPtr = &target
	} else {
		envTarget, err := targetFromEnv()
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		targetPtr = envTarget
	}
	if targetPtr != nil {
		if err := checkFinite([]float64{*targetPtr}); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --target: %v\n", err)
			os.Exit(2)
		}
	}

	out, err := renderReport(scores, targetPtr)
	if err != nil {
		log.Fatalf("render result failed: %v", err)
	}
	fmt.Println(string(out))
}
