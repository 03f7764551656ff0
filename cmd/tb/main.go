package main

import "taskbuddy/cmd/tb/root"

func main() {
	root.Execute()
}
