package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	proApp "proprofile/internal/app"
	"proprofile/internal/config"
	"proprofile/internal/layout"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "mcp":
			if err := proApp.ServeMCP(cfg); err != nil {
				log.Fatalf("MCP server error: %v", err)
			}
			return
		case "render":
			if err := runRender(cfg, os.Args[2:]); err != nil {
				log.Fatalf("render: %v", err)
			}
			return
		}
	}

	runDesktop(cfg)
}

func runRender(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	opts := proApp.RenderOptions{}
	fs.StringVar(&opts.CompanyFile, "company", "", "company data: JSON or CSV file, or an http(s) URL")
	fs.StringVar(&opts.DataPath, "data-path", "", "dot-separated path to the company object inside JSON")
	fs.StringVar(&opts.Layout, "layout", layout.MultiPageCorporate, "auto-layout or template name")
	fs.StringVar(&opts.Language, "lang", cfg.Language, "document language (en, id)")
	fs.StringVar(&opts.Out, "out", "", "output file (.pdf or .png)")
	fs.IntVar(&opts.Page, "page", 1, "page to render for .png output")
	fs.BoolVar(&opts.Watch, "watch", false, "re-render when the company file changes")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: proprofile render -company file.json -out profile.pdf [flags]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return proApp.RunRender(ctx, opts)
}

func runDesktop(cfg config.Config) {
	app := proApp.New(cfg)
	size := proApp.WindowSize(cfg)

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	err := wails.Run(&options.App{
		Title:     "ProProfile",
		Width:     size.Width,
		Height:    size.Height,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 241, G: 245, B: 249, A: 1},
		Menu:             appMenu,
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
				HideTitleBar:               false,
				FullSizeContent:            true,
				UseToolbar:                 true,
				HideToolbarSeparator:       true,
			},
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			About: &mac.AboutInfo{
				Title:   "ProProfile",
				Message: "Company profile designer",
			},
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
