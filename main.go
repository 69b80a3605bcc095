package main

import "record-importer/cmd"

func main() {
	cmd.Execute()
}
