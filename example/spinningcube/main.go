// Spinningcube draws a wooden crate seen from a camera circling around
// it. Space pauses the rotation.
//
// Run it from this directory so the default shader paths resolve:
//
//	devbox shell
//	cd example/spinningcube && go run .
//
// Flags:
//
//	-config demo.toml   override window, shader, texture and log settings
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/shader/internal/config"
	"github.com/go-theft-auto/shader/internal/demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML file overriding the demo defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath, config.SpinningCube())
	if err != nil {
		return err
	}

	logger, err := demo.NewLogger(os.Stderr, cfg)
	if err != nil {
		return err
	}

	return demo.Run(cfg, logger, demo.NewCube)
}
