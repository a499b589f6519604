// dbconsole - interactive consoles for configured databases
//
// dbconsole opens litecli, pgcli or mycli for a database defined in its
// configuration file, applying one shared console configuration to all three.
package main

import (
	"github.com/enunezf/dbconsole/internal/cli"
)

func main() {
	cli.Execute()
}
