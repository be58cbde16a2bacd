package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"

	"github.com/faizmokh/laporan/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
