package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	hexnoiseVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	hexnoise := NewAppBuild("hexnoise", "cmd/hexnoise", hexnoiseVersion)
	hexnoise.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", hexnoiseVersion).
			CgoEnabled(false)
	})
	hexnoise.Variant("windows", "amd64")
	hexnoise.Variant("linux", "amd64")
	hexnoise.Variant("linux", "arm64")
	hexnoise.Variant("darwin", "amd64")
	hexnoise.Variant("darwin", "arm64")
	b.ImportApp(hexnoise)

	b.Execute()
}
