package main

import (
	"github.com/axellelanca/linkbundles/cmd"
	_ "github.com/axellelanca/linkbundles/cmd/cli"
	_ "github.com/axellelanca/linkbundles/cmd/server"
)

func main() {
	cmd.Execute()
}
