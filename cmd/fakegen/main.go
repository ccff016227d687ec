package main

import "github.com/tidepool-org/fakegen/cmd/fakegen/command"

func main() {
	command.Execute()
}
