package main

import "github.com/mpapenbr/f1-dashboard-go/cmd"

func main() {
	cmd.Execute()
}
