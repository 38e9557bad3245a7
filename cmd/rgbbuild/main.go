package main

import (
	"os"

	"rgbsdk/internal/rgbbuild"
)

func main() {
	os.Exit(rgbbuild.Main())
}
