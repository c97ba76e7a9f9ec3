package main

import "github.com/vibast-solutions/ms-go-enrollment/cmd"

func main() {
	cmd.Execute()
}
