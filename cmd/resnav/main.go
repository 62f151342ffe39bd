// resnav explores and filters community resource catalogs.
package main

import (
	"os"

	"github.com/hupe1980/resnav/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
