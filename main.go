package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"

	"github.com/chazu/arcsect/pkg/config"
)

type Evaluate struct {
	Config string `short:"c" desc:"Config file (TOML)"`
	Input  string `index:"0" desc:"Drawing script"`
}

type Pair struct {
	Config string `short:"c" desc:"Config file (TOML)"`
	A      string `short:"a" desc:"First entity name"`
	B      string `short:"b" desc:"Second entity name"`
	Input  string `index:"0" desc:"Drawing script"`
}

type Locate struct {
	Config string  `short:"c" desc:"Config file (TOML)"`
	X      float64 `short:"x" default:"0" desc:"Point X"`
	Y      float64 `short:"y" default:"0" desc:"Point Y"`
	Input  string  `index:"0" desc:"Drawing script"`
}

func main() {
	root := argp.NewCmd(&Evaluate{}, "Exact intersections of lines, arcs, circles and bulge polylines")
	root.AddCmd(&Pair{}, "pair", "Intersect two named entities")
	root.AddCmd(&Locate{}, "locate", "List closed entities containing a point")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Evaluate) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	app, source, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}
	result := app.Evaluate(source)
	if err := printJSON(result); err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("%d errors", len(result.Errors))
	}
	return nil
}

func (cmd *Pair) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.A == "" || cmd.B == "" {
		fmt.Println("ERROR: must specify both entity names")
		return argp.ShowUsage
	}
	app, source, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}
	hits, err := app.IntersectEntities(source, cmd.A, cmd.B)
	if err != nil {
		return err
	}
	return printJSON(hits)
}

func (cmd *Locate) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	app, source, err := setup(cmd.Config, cmd.Input)
	if err != nil {
		return err
	}
	names, err := app.Locate(source, cmd.X, cmd.Y)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// setup loads configuration, installs the logger and reads the script.
func setup(configPath, input string) (*App, string, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, "", err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, "", err
	}
	SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	source, err := os.ReadFile(input)
	if err != nil {
		return nil, "", err
	}
	return NewAppWithConfig(cfg), string(source), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
