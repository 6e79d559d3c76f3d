// Covlight highlights untested source lines in the terminal using
// coverage data from a .resultset.json report.
package main

import "github.com/mouse-blink/covlight/cmd"

func main() {
	cmd.Execute()
}
