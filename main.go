package main

import "lab-admin/cmd"

func main() {
	cmd.Execute()
}
