// custody is the command line tool for creating and checking chain-of-custody transfer records.
package main

import "github.com/information-sharing-networks/custody-demo/internal/cli"

func main() {
	cli.Execute()
}
