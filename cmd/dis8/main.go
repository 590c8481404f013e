package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/pdp8/disassembler"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opt := arg.New("dis8")
	opt.SetOption(arg.GroupDefault, "h", "help", "Show this help.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "o", "output", "Write the listing here instead of stdout.", "", false, arg.VarString, nil)
	opt.SetPositional("INPUT", "Packed binary image.", "", true, arg.VarString)

	err := opt.Parse(args)
	if err != nil || opt.GetBool("help") {
		opt.PrintHelp()
		if err != nil && err != arg.ErrNoArgs {
			fmt.Fprintf(os.Stderr, "\n%v\n", err)
		}
		return 1
	}

	_ = flag.Set("logtostderr", "true")
	defer glog.Flush()

	input := opt.GetPosString("INPUT")
	image, err := os.ReadFile(input)
	if err != nil {
		glog.Errorf("Failed to read %s: %v", input, err)
		return 1
	}

	listing, err := disassembler.Disassemble(image)
	if err != nil {
		glog.Errorf("%s: %v", input, err)
		return 1
	}

	output := opt.GetString("output")
	if output == "" {
		fmt.Print(listing)
		return 0
	}
	if err := os.WriteFile(output, []byte(listing), 0644); err != nil {
		glog.Errorf("Failed to output to %s: %v", output, err)
		return 1
	}
	glog.V(1).Infof("%s: %d bytes listed -> %s", input, len(image), output)
	return 0
}
