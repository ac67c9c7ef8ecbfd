package main

import (
	"os"

	"upnmigrate/cli"
)

func main() {
	os.Exit(cli.Execute())
}
