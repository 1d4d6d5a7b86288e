package main

import "github.com/codehook/dashboard/cmd"

func main() {
	cmd.Execute()
}
