package targ_test

import (
	"fmt"

	"github.com/reeflective/targ"
)

func ExampleParse() {
	type config struct {
		Verbose bool     `short:"v" long:"verbose"`
		Output  string   `short:"o" default:"a.out"`
		Files   []string `arg:"files"`
	}

	cfg, err := targ.Parse[config]([]string{"-v", "main.c", "util.c"})
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(cfg.Verbose, cfg.Output, cfg.Files)
	// Output: true a.out [main.c util.c]
}

func ExampleParser_Register() {
	var (
		verbose bool
		output  = "a.out"
	)

	parser := targ.New()

	err := parser.Register(
		targ.Switch(&verbose, targ.Short('v'), targ.Long("verbose")),
		targ.Scalar(&output, targ.Short('o')),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(parser.Parse([]string{"--verbse"}))
	// Output: parse error: "--verbse": unknown flag (did you mean --verbose?)
}
