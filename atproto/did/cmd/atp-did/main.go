package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/leastinformednerd/fedibridge/atproto/did"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:    "atp-did",
		Usage:   "informal debugging CLI tool for the atproto DID subset",
		Version: versioninfo.Short(),
	}
	app.Commands = []*cli.Command{
		{
			Name:      "parse-did",
			Usage:     "validate a DID and print its parts",
			ArgsUsage: "<did>",
			Action:    runParseDID,
		},
		{
			Name:      "check-file",
			Usage:     "validate DIDs line by line from a file, '-' for stdin",
			ArgsUsage: "<path>",
			Action:    runCheckFile,
		},
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h))
	app.RunAndExitOnError()
}

func runParseDID(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide identifier as an argument")
	}

	d, err := did.ParseDID(s)
	if err != nil {
		return err
	}
	fmt.Printf("DID: %s\n", d)
	fmt.Printf("Method: %s\n", d.Method())
	fmt.Printf("Identifier: %s\n", d.Identifier())

	return nil
}

func runCheckFile(cctx *cli.Context) error {
	p := cctx.Args().First()
	if p == "" {
		return fmt.Errorf("need to provide a file path as an argument")
	}

	file := os.Stdin
	if p != "-" {
		var err error
		file, err = os.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()
	}

	var invalid int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		d, err := did.ParseDID(line)
		if err != nil {
			invalid++
			slog.Warn("invalid DID", "input", line, "err", err)
			continue
		}
		fmt.Println(d)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d lines failed validation", invalid)
	}
	return nil
}
