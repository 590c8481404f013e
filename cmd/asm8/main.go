package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/pdp8/assembler"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opt := arg.New("asm8")
	opt.SetOption(arg.GroupDefault, "h", "help", "Show this help.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "o", "output", "Binary image to write.", "out.bin", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Print the symbol table to stderr.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log level: 1 for labels and origins, 2 for patches.", 0, false, arg.VarInt, nil)
	opt.SetPositional("INPUT", "Assembly source file.", "", true, arg.VarString)

	err := opt.Parse(args)
	if err != nil || opt.GetBool("help") {
		opt.PrintHelp()
		if err != nil && err != arg.ErrNoArgs {
			fmt.Fprintf(os.Stderr, "\n%v\n", err)
		}
		return 1
	}

	_ = flag.Set("logtostderr", "true")
	_ = flag.Set("v", strconv.Itoa(opt.GetInt("verbose")))
	defer glog.Flush()

	input := opt.GetPosString("INPUT")
	output := opt.GetString("output")

	src, err := os.ReadFile(input)
	if err != nil {
		glog.Errorf("Failed to read %s: %v", input, err)
		return 1
	}

	res, err := assembler.Assemble(string(src))
	if err != nil {
		glog.Errorf("%s: %v", input, err)
		return 1
	}

	if opt.GetBool("symbols") {
		pp.Fprintln(os.Stderr, res.Symbols)
	}

	if err := os.WriteFile(output, res.Image, 0644); err != nil {
		glog.Errorf("Failed to output to %s: %v", output, err)
		return 1
	}
	glog.V(1).Infof("%s: %d words, %d bytes -> %s", input, res.Words, len(res.Image), output)
	return 0
}
