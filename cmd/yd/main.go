package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	initLogger()
	cli.MainContext(context.Background(), MainCommand())
}
