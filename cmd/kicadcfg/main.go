// kicadcfg checks a user's KiCad 6 configuration and emits diagnostics
package main

import "github.com/OpenTraceLab/kicadcfg/cmd/kicadcfg/cmd"

func main() {
	cmd.Execute()
}
