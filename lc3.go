// lc3 emulator.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"
)

func main() {
	var cli struct {
		Run runCmd `cmd default:"1" help:"run one or more LC-3 images"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	StartAddr  uint16   `name:"startaddr" default:"0x3000" help:"initial PC"`
	CPUProfile bool     `name:"cpuprofile" help:"write a CPU profile to the current directory"`
	Images     []string `arg optional:"" name:"image" help:"LC-3 image files"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	if len(r.Images) == 0 {
		fmt.Println("lc3 [image-file1] ...")
		os.Exit(2)
	}
	if r.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cpu := LC3{}
	cpu.Reset()
	cpu.PC = r.StartAddr
	for _, path := range r.Images {
		if err := cpu.LoadImage(path); err != nil {
			fmt.Printf("failed to load image: %s\n", path)
			os.Exit(1)
		}
	}

	cons := newHostConsole()
	cpu.bus.cons = cons
	cons.Raw()
	defer cons.Restore()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cons.Restore()
		fmt.Println()
		os.Exit(254) // exit(-2)
	}()

	return cpu.Run()
}
