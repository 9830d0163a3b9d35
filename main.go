package main

import "github.com/cogcities/drzone/cmd"

func main() {
	cmd.Execute()
}
