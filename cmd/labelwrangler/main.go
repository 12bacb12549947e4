// labelwrangler tidies and rebalances label columns in delimited datasets.
package main

import (
	"os"

	"github.com/hupe1980/labelwrangler/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
