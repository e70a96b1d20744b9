// Command swatchd serves swatch and gradient ramp PNGs over HTTP.
//
//	GET /swatch?color=oklch:0.7,0.2,30&size=64
//	GET /ramp?left=srgb:1,0,0&right=srgb:0,0,1&space=oklch&hue=longer
//	GET /healthz
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maax3v3/csscolor"
	"github.com/maax3v3/csscolor/internal/cli"
	"github.com/maax3v3/csscolor/internal/ramp"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})
	r.Get("/swatch", handleSwatch)
	r.Get("/ramp", handleRamp)

	fmt.Printf("swatchd listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func handleSwatch(w http.ResponseWriter, r *http.Request) {
	color, err := cli.ParseColorSpec(r.URL.Query().Get("color"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	size := intParam(r, "size", 64)
	if size <= 0 || size > 2048 {
		http.Error(w, "size must be in 1..2048", http.StatusBadRequest)
		return
	}

	writePNG(w, ramp.Swatch(color, size, size))
}

func handleRamp(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	left, err := cli.ParseColorSpec(q.Get("left"))
	if err != nil {
		http.Error(w, fmt.Sprintf("left: %v", err), http.StatusBadRequest)
		return
	}
	right, err := cli.ParseColorSpec(q.Get("right"))
	if err != nil {
		http.Error(w, fmt.Sprintf("right: %v", err), http.StatusBadRequest)
		return
	}

	spaceName := q.Get("space")
	if spaceName == "" {
		spaceName = "oklch"
	}
	space, ok := csscolor.ParseSpace(spaceName)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown color space %q", spaceName), http.StatusBadRequest)
		return
	}

	opts := ramp.DefaultOptions()
	opts.Width = intParam(r, "width", opts.Width)
	opts.StripHeight = intParam(r, "height", opts.StripHeight)
	if opts.Width <= 0 || opts.Width > 4096 || opts.StripHeight <= 0 || opts.StripHeight > 1024 {
		http.Error(w, "width must be in 1..4096 and height in 1..1024", http.StatusBadRequest)
		return
	}
	if hue := q.Get("hue"); hue != "" {
		method, ok := csscolor.ParseHueInterpolationMethod(hue)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown hue interpolation method %q", hue), http.StatusBadRequest)
			return
		}
		opts.HueMethod = method
	}

	writePNG(w, ramp.Strip(left, right, space, opts))
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writePNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
