package main

import (
	"github.com/GottfriedHerold/mont381/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
