package main

import "github.com/RyanBlaney/waveform-catalog/cmd"

func main() {
	cmd.Execute()
}
