package main

import "github.com/YoshihikoAbe/ozip2zip/ozip2zip/cmd"

func main() {
	cmd.Execute()
}
