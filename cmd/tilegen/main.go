package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kdudkov/tilegen/pkg/mercator"
	"github.com/kdudkov/tilegen/pkg/pyramid"
	_ "modernc.org/sqlite"
)

type App struct {
	gen         *pyramid.Generator
	outFilename string
	dbFilename  string
}

func NewApp(gen *pyramid.Generator, outFilename, dbFilename string) *App {
	return &App{
		gen:         gen,
		outFilename: outFilename,
		dbFilename:  dbFilename,
	}
}

func (app *App) Run() error {
	res := app.gen.Generate()

	total := 0

	var out io.Writer = os.Stdout

	if app.outFilename != "" {
		f, err := os.Create(app.outFilename)

		if err != nil {
			return err
		}

		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)

	for z := app.gen.GetMinZoom(); z <= app.gen.GetMaxZoom(); z++ {
		for _, t := range res[z] {
			fmt.Fprintf(w, "%d/%d/%d\n", t.Z, t.X, t.Y)
			total++
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if app.dbFilename != "" {
		if err := app.writeDb(res); err != nil {
			return err
		}
	}

	slog.Info(fmt.Sprintf("total tiles: %d", total))

	return nil
}

func (app *App) writeDb(res map[int][]mercator.Tile) error {
	_ = os.Remove(app.dbFilename)
	db, err := sql.Open("sqlite", app.dbFilename)

	if err != nil {
		return err
	}

	defer db.Close()

	if err := createTables(db); err != nil {
		return err
	}

	for z := app.gen.GetMinZoom(); z <= app.gen.GetMaxZoom(); z++ {
		for _, t := range res[z] {
			if err := putTile(db, t); err != nil {
				return err
			}
		}
	}

	b := app.gen.GetBounds()

	meta := map[string]string{
		"version": "1.1",
		"minzoom": fmt.Sprintf("%d", app.gen.GetMinZoom()),
		"maxzoom": fmt.Sprintf("%d", app.gen.GetMaxZoom()),
		"bounds":  fmt.Sprintf("%g,%g,%g,%g", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat),
		"name":    app.dbFilename,
		"scheme":  "tms",
	}

	return putMeta(db, meta)
}

func createTables(db *sql.DB) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS tiles (zoom_level INTEGER NOT NULL,tile_column INTEGER NOT NULL,tile_row INTEGER NOT NULL,UNIQUE (zoom_level, tile_column, tile_row));")

	if err != nil {
		return err
	}

	_, err = db.Exec("CREATE TABLE IF NOT EXISTS metadata (name TEXT, value TEXT);")

	return err
}

func putTile(db *sql.DB, t mercator.Tile) error {
	y1 := 1<<t.Z - t.Y - 1

	_, err := db.Exec("INSERT INTO tiles (zoom_level, tile_column, tile_row) values (?,?,?)", t.Z, t.X, y1)
	return err
}

func putMeta(db *sql.DB, meta map[string]string) error {
	for k, v := range meta {
		_, err := db.Exec("INSERT INTO metadata (name, value) values (?,?)", k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var minZoom = flag.Int("min", 1, "min zoom level")
	var maxZoom = flag.Int("max", 5, "max zoom level")
	var boundsArg = flag.String("bounds", "", "bounding box minLon,minLat,maxLon,maxLat (default - whole world)")
	var seq = flag.Bool("seq", false, "filter tiles on one goroutine")
	var out = flag.String("out", "", "tiles list file (default - stdout)")
	var dbFile = flag.String("db", "", "write tile plan to sqlite db")

	flag.Parse()

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	cfg := pyramid.Config{
		MinZoom:  *minZoom,
		MaxZoom:  *maxZoom,
		Strategy: pyramid.Parallel,
	}

	if *seq {
		cfg.Strategy = pyramid.Sequential
	}

	if *boundsArg != "" {
		b, err := pyramid.ParseBoundsArg(*boundsArg)

		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}

		cfg.Bounds = b
	}

	gen, err := pyramid.New(cfg)

	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return
	}

	if err := NewApp(gen, *out, *dbFile).Run(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
	}
}
