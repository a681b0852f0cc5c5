package main

import "github.com/jsphweid/diatonic/cmd"

func main() {
	cmd.Execute()
}
