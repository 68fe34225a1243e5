package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/yoshiomiyamaego6502/pkg/cpu"
	"github.com/yoshiomiyamaego6502/pkg/logger"
	"github.com/yoshiomiyamaego6502/pkg/machine"
	"github.com/yoshiomiyamaego6502/pkg/monitor"
)

func main() {
	app := &cli.App{
		Name:    "go6502",
		Usage:   "Run a raw 6502 program image",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "raw program image (dasm raw output, no header)",
			},
			&cli.IntFlag{
				Name:  "origin",
				Usage: "load address for the image",
				Value: 0x1000,
			},
			&cli.IntFlag{
				Name:  "entry",
				Usage: "entry point written to the reset vector (defaults to origin)",
				Value: -1,
			},
			&cli.IntFlag{
				Name:    "steps",
				Aliases: []string{"n"},
				Usage:   "maximum instructions to execute (0 = until BRK)",
				Value:   0,
			},
			&cli.BoolFlag{
				Name:  "nop-unstable",
				Usage: "treat unstable illegal opcodes as NOPs instead of faulting",
			},
			&cli.BoolFlag{
				Name:    "monitor",
				Aliases: []string{"m"},
				Usage:   "step interactively in the TUI monitor",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (off, error, warn, info, debug, trace)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "log file path (empty for stdout)",
			},
			&cli.BoolFlag{
				Name:  "cpu-log",
				Usage: "enable per-instruction CPU logging",
			},
			&cli.BoolFlag{
				Name:  "bus-log",
				Usage: "enable bus attachment/fault logging",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	app.Run(os.Args)
}

func run(c *cli.Context) error {
	imageFile := c.String("image")
	if imageFile == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 2)
	}

	level := logger.GetLogLevelFromString(c.String("log-level"))
	if err := logger.Initialize(level, c.String("log-file")); err != nil {
		return cli.Exit(fmt.Sprintf("logger: %v", err), 1)
	}
	defer logger.Close()
	logger.SetCPULogging(c.Bool("cpu-log"))
	logger.SetBusLogging(c.Bool("bus-log"))

	origin := uint16(c.Int("origin"))
	entry := origin
	if e := c.Int("entry"); e >= 0 {
		entry = uint16(e)
	}

	m := machine.NewWithRAM()
	m.CPU.UnstableAsNOP = c.Bool("nop-unstable")

	n, err := m.LoadImageFile(imageFile, origin)
	if err != nil {
		return cli.Exit(fmt.Sprintf("load: %v", err), 1)
	}
	logger.LogInfo("image %s: %d bytes at $%04X, entry $%04X", imageFile, n, origin, entry)

	if err := m.SetResetVector(entry); err != nil {
		return cli.Exit(fmt.Sprintf("reset vector: %v", err), 1)
	}
	if err := m.Reset(); err != nil {
		return cli.Exit(fmt.Sprintf("reset: %v", err), 1)
	}

	if c.Bool("monitor") {
		if err := monitor.Run(m); err != nil {
			return cli.Exit(fmt.Sprintf("monitor: %v", err), 1)
		}
		printState(m)
		return nil
	}

	var steps int
	if limit := c.Int("steps"); limit > 0 {
		steps, err = m.Run(limit)
	} else {
		steps, err = m.RunUntilBRK()
	}
	if err != nil {
		logger.LogError("fault after %d instructions: %v", steps, err)
		printState(m)
		return cli.Exit(fmt.Sprintf("fault: %v", err), 1)
	}

	logger.LogInfo("executed %d instructions", steps)
	printState(m)
	return nil
}

func printState(m *machine.Machine) {
	c := m.CPU
	flags := ""
	for _, f := range []struct {
		bit  uint8
		name string
	}{
		{cpu.FlagNegative, "N"},
		{cpu.FlagOverflow, "V"},
		{cpu.FlagDecimal, "D"},
		{cpu.FlagInterrupt, "I"},
		{cpu.FlagZero, "Z"},
		{cpu.FlagCarry, "C"},
	} {
		if c.GetFlag(f.bit) {
			flags += f.name
		} else {
			flags += "."
		}
	}
	fmt.Printf("PC=$%04X A=$%02X X=$%02X Y=$%02X SP=$%02X P=%s\n",
		c.PC, c.A, c.X, c.Y, c.SP, flags)
}
