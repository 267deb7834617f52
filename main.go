package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"LocalSketch/internal/config"
	sharenet "LocalSketch/internal/net"
	"LocalSketch/internal/render"
	"LocalSketch/internal/state"
	"LocalSketch/internal/ui"
)

func main() {
	configPath := flag.String("config", "sketchpad.toml", "path to the TOML config file")
	browse := flag.Bool("browse", false, "list sketchpads shared on the local network and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *browse {
		runBrowse()
		return
	}

	fonts, err := render.LoadFonts(cfg.EmojiFont)
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	defer fonts.Close()

	if args := flag.Args(); len(args) > 0 && strings.HasPrefix(args[0], sharenet.LinkScheme) {
		runViewer(cfg, fonts, args[0])
	} else {
		runHost(cfg, fonts)
	}
}

func runHost(cfg config.Config, fonts *render.Fonts) {
	log.Println("Starting as HOST")
	pad := state.NewPad(cfg.PadOptions()...)

	shareLink := ""
	if cfg.Share.Enabled {
		hub := sharenet.NewHub()
		defer hub.Close()

		publish := func() {
			if _, err := hub.Sync(pad, cfg.Width, cfg.Height); err != nil {
				log.Printf("[SHARE] Publish failed: %v", err)
			}
		}
		pad.Subscribe(publish)
		publish()
		go startHostServer(cfg.Share.Port, hub)

		if cfg.Share.Advertise {
			adv, err := sharenet.Advertise(cfg.Share.Port)
			if err != nil {
				log.Printf("[SHARE] Not advertising: %v", err)
			} else {
				defer adv.Close()
			}
		}
		shareLink = sharenet.ShareLink(sharenet.OutgoingIP(), cfg.Share.Port)
		log.Printf("[SHARE] Share link: %s", shareLink)
	}

	ui.RunHost(cfg, pad, fonts, shareLink)
}

func startHostServer(port int, hub *sharenet.Hub) {
	mux := http.NewServeMux()
	mux.Handle(sharenet.WSPath, hub)
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[SHARE] Host server listening on port %d", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("[SHARE] Host server stopped: %v", err)
	}
}

func runViewer(cfg config.Config, fonts *render.Fonts, link string) {
	log.Println("Starting as VIEWER")
	url, err := sharenet.ViewerURL(link)
	if err != nil {
		log.Fatalf("Bad link: %v", err)
	}
	ui.RunViewer(cfg, fonts, link, func(ctx context.Context, onDoc func(state.Document)) error {
		return sharenet.Follow(ctx, url, onDoc)
	})
}

func runBrowse() {
	found := 0
	err := sharenet.Browse(3*time.Second, func(link string) {
		found++
		fmt.Println(link)
	})
	if err != nil {
		log.Fatalf("Browse failed: %v", err)
	}
	if found == 0 {
		fmt.Fprintln(os.Stderr, "No sketchpads found")
	}
}
