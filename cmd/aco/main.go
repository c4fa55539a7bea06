// Command aco runs an ant colony over a tab-delimited distance matrix and
// prints the best tour, its distance and the final pheromone matrix.
//
//	aco -distances data/distances.txt -cities data/cities.txt -variant n-best -ants 100 -iterations 500
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/dataset"
	"github.com/katalvlaran/antcolony/matrix"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "aco"
	app.Usage = "ant colony optimization over a distance matrix"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "distances, d", Value: "data/distances.txt", Usage: "tab-delimited distance matrix"},
		cli.StringFlag{Name: "cities, c", Value: "data/cities.txt", Usage: "city labels, one per line; empty for index labels"},
		cli.StringFlag{Name: "variant, v", Value: "best-so-far", Usage: "best-so-far (a) or n-best (b)"},
		cli.IntFlag{Name: "ants", Value: 10, Usage: "ants per iteration"},
		cli.IntFlag{Name: "iterations", Value: 100, Usage: "number of iterations"},
		cli.Float64Flag{Name: "decay", Value: 0.95, Usage: "evaporation factor in (0,1]"},
		cli.Float64Flag{Name: "alpha", Value: 1, Usage: "pheromone exponent"},
		cli.Float64Flag{Name: "beta", Value: 1, Usage: "distance exponent"},
		cli.Float64Flag{Name: "q", Value: 1, Usage: "deposit constant (best-so-far)"},
		cli.IntFlag{Name: "nbest", Value: 5, Usage: "reinforcing ants per iteration (n-best)"},
		cli.IntFlag{Name: "start", Value: 0, Usage: "start city (n-best)"},
		cli.Int64Flag{Name: "seed", Value: 0, Usage: "random seed, 0 for the default"},
		cli.IntFlag{Name: "workers", Value: 1, Usage: "goroutines building tours"},
		cli.IntFlag{Name: "report-every", Value: -1, Usage: "print the best distance every n iterations, -1 for the variant default, 0 to disable"},
		cli.IntFlag{Name: "early-stop", Value: 0, Usage: "stop after n iterations without improvement, 0 to disable"},
		cli.BoolFlag{Name: "progress", Usage: "draw a progress bar instead of iteration lines"},
	}
	app.Action = run

	return app
}

func run(c *cli.Context) error {
	variant, err := aco.ParseVariant(c.String("variant"))
	if err != nil {
		return err
	}
	opts := aco.DefaultOptions(variant)
	opts.NumAnts = c.Int("ants")
	opts.Iterations = c.Int("iterations")
	opts.Decay = c.Float64("decay")
	opts.Alpha = c.Float64("alpha")
	opts.Beta = c.Float64("beta")
	opts.Seed = c.Int64("seed")
	opts.Workers = c.Int("workers")
	opts.EarlyStop = c.Int("early-stop")
	switch variant {
	case aco.VariantBestSoFar:
		opts.Q = c.Float64("q")
	case aco.VariantNBest:
		opts.NBest = c.Int("nbest")
		opts.StartCity = c.Int("start")
	}
	if every := c.Int("report-every"); every >= 0 {
		opts.ReportEvery = every
	}

	dist, err := dataset.LoadDistances(c.String("distances"))
	if err != nil {
		return err
	}
	var labels []string
	if path := c.String("cities"); path != "" {
		if labels, err = dataset.LoadCities(path); err != nil {
			return err
		}
	}
	log.Printf("loaded %d cities, variant %s", dist.Rows(), variant)
	if err = matrix.ValidateSymmetric(dist, 0); err != nil {
		log.Printf("warning: distance matrix is not symmetric: %v", err)
	}

	var bar *progressbar.ProgressBar
	if c.Bool("progress") {
		bar = newProgressBar(opts.Iterations)
		opts.Observer = progressObserver(bar)
		opts.ReportEvery = 1
	} else {
		opts.Observer = aco.NewWriterObserver(os.Stdout)
	}

	colony, err := aco.New(dist, labels, opts)
	if err != nil {
		return err
	}
	if err = colony.Cities(os.Stdout); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := colony.Run(ctx)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		return err
	}
	log.Printf("finished after %d iterations", res.Iterations)

	return colony.Report(os.Stdout)
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]colony[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func progressObserver(bar *progressbar.ProgressBar) aco.Observer {
	return aco.ObserverFunc(func(s aco.IterationStats) {
		bar.Describe(fmt.Sprintf("[cyan]best %.4g[reset]", s.BestCost))
		_ = bar.Add(1)
	})
}
