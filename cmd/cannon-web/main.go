//go:build js

// Command cannon-web is the browser build of the cannon game. Build it
// with GopherJS and load it from a page holding <canvas id="game">.
package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/platform/web"
)

func main() {
	cfg := config.DefaultCannonConfig()
	if preset := query("difficulty"); preset != "" {
		if p, err := config.ParsePreset(preset); err == nil {
			config.ApplyCannonPreset(&cfg, p)
		}
	}

	err := web.Run(cfg, core.DefaultConfig(), web.Options{
		CanvasID:   "game",
		AssetsPath: "assets",
		Debug:      query("debug") != "",
		Mute:       query("mute") != "",
	})
	if err != nil {
		js.Global.Get("console").Call("error", err.Error())
	}
}

// query reads a URL search parameter.
func query(name string) string {
	params := js.Global.Get("URLSearchParams").New(js.Global.Get("location").Get("search"))
	v := params.Call("get", name)
	if v == nil || v == js.Undefined {
		return ""
	}
	return v.String()
}
