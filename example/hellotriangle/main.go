// Hellotriangle draws a single triangle with one red, one green and one
// blue corner.
//
// Run it from this directory so the default shader paths resolve:
//
//	devbox shell
//	cd example/hellotriangle && go run .
//
// Flags:
//
//	-config demo.toml   override window, shader and log settings
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

	cfg, err := config.Load(*configPath, config.HelloTriangle())
	if err != nil {
		return err
	}

	logger, err := demo.NewLogger(os.Stderr, cfg)
	if err != nil {
		return err
	}

	return demo.Run(cfg, logger, demo.NewTriangle)
}
