package main

import "github.com/JBLinx-Studio/vitalsync-cli/cmd/vitalsync"

func main() {
	vitalsync.Execute()
}
