//go:build tinygo

package main

import (
	"glassdial/app"
	"glassdial/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
