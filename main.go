package main

import (
	cmd "github.com/leovegas/reportgen/cmd/reportgen"
	"github.com/leovegas/reportgen/data"
	"github.com/leovegas/reportgen/internal/assets"
)

func main() {
	assets.UpdateData(&data.Templates)
	cmd.Execute()
}
