package main

import (
	"flag"
	"testing"

	"github.com/etnz/recovery/cmd"
	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("rcv", flag.ContinueOnError), "rcv")
	cmd.Register(commander)

	c := completion(commander)
	for _, name := range []string{"report", "scenarios", "assist", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion has no %q subcommand", name)
		}
	}
	report := c.Sub["report"]
	for _, name := range []string{"b", "x", "o", "no-save", "color", "include-positive"} {
		if _, ok := report.Flags[name]; !ok {
			t.Errorf("report completion has no -%s flag", name)
		}
	}
	if got := c.Sub["topic"].Args.Predict(""); len(got) != 4 {
		t.Errorf("topic completion predicts %q, want 4 topics", got)
	}
	if !registered(commander, "report") || registered(commander, "hello") {
		t.Errorf("registered() does not match the commands")
	}
}
