// radixdemo exercises the radix package from the command line: it replays
// the classic split/merge example, or loads newline separated keys from a
// file and reports on them.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/e11jah/radix"
)

func main() {
	app := cli.App{
		Name:    "radixdemo",
		Usage:   "play with an in-memory radix tree",
		Version: versioninfo.Short(),
		Before:  setupLogging,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity (debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"RADIX_LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "insert, find and erase a handful of overlapping keys",
			Action: runDemo,
		},
		{
			Name:  "load",
			Usage: "insert keys read from a file (or stdin) and print statistics",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "file with one key per line, - for stdin",
					Value:   "-",
					EnvVars: []string{"RADIX_KEYS_FILE"},
				},
				&cli.BoolFlag{
					Name:  "dump",
					Usage: "print the node graph after loading",
				},
			},
			Action: runLoad,
		},
		{
			Name:      "find",
			Usage:     "load keys from a file, then look up each argument",
			ArgsUsage: "<key>...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"f"},
					Usage:    "file with one key per line, - for stdin",
					Required: true,
					EnvVars:  []string{"RADIX_KEYS_FILE"},
				},
			},
			Action: runFind,
		},
	}
	app.RunAndExitOnError()
}

func setupLogging(cctx *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %#v", cctx.String("log-level"))
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	return nil
}

func runDemo(cctx *cli.Context) error {
	tree := radix.New[string]()
	for _, k := range []string{"abc", "abcef", "abd", "ab", "a"} {
		_, inserted := tree.Insert(k, k)
		slog.Debug("insert", "key", k, "inserted", inserted, "size", tree.Size())
	}
	fmt.Println(tree.String())

	for _, k := range []string{"abz", "abc"} {
		if v, ok := tree.Get(k); ok {
			slog.Info("found", "key", k, "value", v)
		} else {
			slog.Info("not found", "key", k)
		}
	}

	for _, k := range []string{"abg", "abc"} {
		removed := tree.Erase(k)
		slog.Info("erase", "key", k, "removed", removed, "size", tree.Size())
	}
	fmt.Println(tree.String())

	for k, v := range tree.All() {
		fmt.Printf("%s\t%s\n", k, v)
	}
	return nil
}

func runLoad(cctx *cli.Context) error {
	tree, err := loadKeys(cctx.String("file"))
	if err != nil {
		return err
	}

	if cctx.Bool("dump") {
		fmt.Println(tree.String())
	}
	fmt.Printf("keys: %d\n", tree.Size())
	if first := tree.Begin(); first.Valid() {
		fmt.Printf("first: %q (line %d)\n", first.Key(), first.Value())
	}
	return nil
}

func runFind(cctx *cli.Context) error {
	if cctx.Args().Len() == 0 {
		return fmt.Errorf("need to provide at least one key as an argument")
	}

	tree, err := loadKeys(cctx.String("file"))
	if err != nil {
		return err
	}

	for _, k := range cctx.Args().Slice() {
		if line, ok := tree.Get(k); ok {
			fmt.Printf("%q\tline %d\n", k, line)
		} else {
			fmt.Printf("%q\tnot found\n", k)
		}
	}
	return nil
}

// loadKeys inserts every line of path, keyed by its content and valued by
// its line number. Repeated lines keep the last line number.
func loadKeys(path string) (*radix.Tree[string, int], error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening keys file: %w", err)
		}
		defer f.Close()
		r = f
	}

	tree := radix.New[int]()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if _, inserted := tree.Insert(scanner.Text(), line); !inserted {
			slog.Debug("duplicate key", "key", scanner.Text(), "line", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keys: %w", err)
	}
	slog.Info("loaded keys", "path", path, "lines", line, "keys", tree.Size())
	return tree, nil
}
