// homecontrol - colour and level controls for home automation
//
// homecontrol provides the colour selector and range slider a home
// automation companion uses to pick a light's colour and brightness.
package main

import (
	"os"

	"github.com/jmylchreest/homecontrol/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
