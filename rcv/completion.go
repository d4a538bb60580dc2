package main

import (
	"flag"

	"github.com/etnz/recovery/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// file flags, by name.
var files = map[string]complete.Predictor{
	"config": predict.Files("*"),
	"env":    predict.Files("*"),
	"input":  predict.Files("*"),
	"o":      predict.Files("*"),
	"log":    predict.Files("*.log"),
}

// completion describes the command line of rcv for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: predictors(f)}
	})
	if topic, ok := root.Sub["topic"]; ok {
		if names, err := docs.Topics(); err == nil {
			topic.Args = predict.Set(names)
		}
	}
	return root
}

func predictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch p, ok := files[fl.Name]; {
		case ok:
			m[fl.Name] = p
		case isBool(fl):
			m[fl.Name] = predict.Nothing
		default:
			m[fl.Name] = predict.Something
		}
	})
	return m
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
