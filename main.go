/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/moshehbenavraham/luminaris-quest-sub000/cmd"

func main() {
	cmd.Execute()
}
